package typegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/routegen/pkg/route"
)

func TestEmitStaticAndDynamic(t *testing.T) {
	doc := string(Emit(route.ParseSet([]string{"/about", "/user/${string}"}), Options{}))

	want := "// This file is auto-generated. Do not edit manually.\n" +
		"type StaticPaths =\n" +
		"  | '/about';\n" +
		"\n" +
		"type DynamicPaths =\n" +
		"  | `/user/${string}`;\n" +
		"\n" +
		"type RoutePath = StaticPaths | DynamicPaths | `${StaticPaths}?${string}`;\n"

	assert.Equal(t, want, doc)
}

func TestEmitStaticOnlyOmitsDynamicBlock(t *testing.T) {
	doc := string(Emit(route.ParseSet([]string{"/", "/about", "/blog"}), Options{}))

	assert.Contains(t, doc, "type StaticPaths =\n  | '/'\n  | '/about'\n  | '/blog';\n")
	assert.NotContains(t, doc, "DynamicPaths")
	assert.Contains(t, doc, "type RoutePath = StaticPaths | `${StaticPaths}?${string}`;\n")
}

func TestEmitEmptyStaticUnion(t *testing.T) {
	doc := string(Emit(route.ParseSet([]string{"/user/${string}"}), Options{}))

	assert.Contains(t, doc, "type StaticPaths = never;\n")
	assert.Contains(t, doc, "type DynamicPaths =\n  | `/user/${string}`;\n")
}

func TestEmitEmptySet(t *testing.T) {
	doc := string(Emit(nil, Options{}))

	want := Header + "\n" +
		"type StaticPaths = never;\n\n" +
		"type RoutePath = StaticPaths | `${StaticPaths}?${string}`;\n"
	assert.Equal(t, want, doc)
}

func TestEmitPreservesOrderWithinPartitions(t *testing.T) {
	doc := string(Emit(route.ParseSet([]string{
		"/z",
		"/m/${string}",
		"/a",
		"/${string}",
		"/z",
	}), Options{}))

	assert.Contains(t, doc, "  | '/z'\n  | '/a'\n  | '/z';")
	assert.Contains(t, doc, "  | `/m/${string}`\n  | `/${string}`;")
}

func TestEmitOverride(t *testing.T) {
	routes := route.ParseSet([]string{"/about"})

	plain := string(Emit(routes, Options{}))
	withOverride := string(Emit(routes, Options{Override: true}))

	require.True(t, strings.HasPrefix(withOverride, plain), "override block must be appended")
	extra := strings.TrimPrefix(withOverride, plain)

	assert.Contains(t, extra, "declare module 'next/router'")
	assert.Contains(t, extra, "declare module 'next/navigation'")
	assert.Contains(t, extra, "push(href: RoutePath, options?: { scroll?: boolean }): void;")
	assert.Contains(t, extra, "export function usePathname(): RoutePath;")
	assert.NotContains(t, plain, "declare module")
}

func TestEmitOverrideIndependentOfRoutes(t *testing.T) {
	a := string(Emit(route.ParseSet([]string{"/a"}), Options{Override: true}))
	b := string(Emit(route.ParseSet([]string{"/b/${string}", "/c"}), Options{Override: true}))

	tailA := a[strings.Index(a, "\ndeclare module"):]
	tailB := b[strings.Index(b, "\ndeclare module"):]
	assert.Equal(t, tailA, tailB)
}

func TestEmitDeterministic(t *testing.T) {
	routes := route.ParseSet([]string{"/", "/docs/${string}", "/about"})
	assert.Equal(t, Emit(routes, Options{Override: true}), Emit(routes, Options{Override: true}))
}

func TestEmitEscaping(t *testing.T) {
	quoted := route.Root().Append(route.Segment{Name: "it's"})
	backtick := route.Root().
		Append(route.Segment{Name: "a`b"}).
		Append(route.Segment{Kind: route.Dynamic, Name: "[id]"})
	literalPlaceholder := route.Root().
		Append(route.Segment{Name: "${string}"}).
		Append(route.Segment{Kind: route.Dynamic, Name: "[id]"})

	doc := string(Emit(route.Set{quoted, backtick, literalPlaceholder}, Options{}))

	assert.Contains(t, doc, `| '/it\'s'`)
	assert.Contains(t, doc, "| `/a\\`b/${string}`")
	assert.Contains(t, doc, "| `/\\${string}/${string}`")
}

func TestEmitStructuralClassification(t *testing.T) {
	// The directory is literally named "${string}"; it is not a parameter.
	literal := route.Root().Append(route.Segment{Name: "${string}"})

	doc := string(Emit(route.Set{literal}, Options{}))

	assert.Contains(t, doc, "type StaticPaths =\n  | '/${string}';")
	assert.NotContains(t, doc, "DynamicPaths")
}

func TestTemplateLiteralRoot(t *testing.T) {
	assert.Equal(t, "`/`", templateLiteral(route.Root()))
}
