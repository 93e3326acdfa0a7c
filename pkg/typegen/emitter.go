package typegen

import (
	"strings"

	"github.com/vango-dev/routegen/pkg/route"
)

// Header is the first line of every generated document.
const Header = "// This file is auto-generated. Do not edit manually."

// Type names used in the document.
const (
	StaticPathsType  = "StaticPaths"
	DynamicPathsType = "DynamicPaths"
	RoutePathType    = "RoutePath"
)

// Options configures emission.
type Options struct {
	// Override appends declarations constraining the navigation APIs to
	// RoutePath.
	Override bool
}

// Emit renders the document for routes. The output depends only on the
// order and content of routes and on opts.
func Emit(routes route.Set, opts Options) []byte {
	static, dynamic := routes.Partition()

	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	writeUnion(&b, StaticPathsType, static, staticLiteral)
	if len(dynamic) > 0 {
		writeUnion(&b, DynamicPathsType, dynamic, templateLiteral)
	}

	b.WriteString("type " + RoutePathType + " = " + StaticPathsType)
	if len(dynamic) > 0 {
		b.WriteString(" | " + DynamicPathsType)
	}
	b.WriteString(" | `${" + StaticPathsType + "}?${string}`;\n")

	if opts.Override {
		b.WriteString(overrides)
	}

	return []byte(b.String())
}

// writeUnion writes "type name =\n  | a\n  | b;\n\n". An empty union is
// written as never so the document stays valid TypeScript.
func writeUnion(b *strings.Builder, name string, paths route.Set, literal func(route.Path) string) {
	b.WriteString("type " + name + " =")
	if len(paths) == 0 {
		b.WriteString(" never;\n\n")
		return
	}
	for _, p := range paths {
		b.WriteString("\n  | ")
		b.WriteString(literal(p))
	}
	b.WriteString(";\n\n")
}

var singleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

// staticLiteral renders a single quoted string literal type.
func staticLiteral(p route.Path) string {
	return "'" + singleQuoteEscaper.Replace(p.String()) + "'"
}

var templateEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

// templateLiteral renders a template literal type. Dynamic segments become
// ${string}; literal text is escaped so it cannot open a placeholder.
func templateLiteral(p route.Path) string {
	var b strings.Builder
	b.WriteByte('`')
	if len(p.Segments) == 0 {
		b.WriteByte('/')
	}
	for _, seg := range p.Segments {
		b.WriteByte('/')
		if seg.Kind == route.Dynamic {
			b.WriteString(route.Placeholder)
			continue
		}
		b.WriteString(templateEscaper.Replace(seg.Name))
	}
	b.WriteByte('`')
	return b.String()
}
