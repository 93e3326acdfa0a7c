package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
)

// execute runs the CLI with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, name := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestGenPositional(t *testing.T) {
	root := t.TempDir()
	pages := filepath.Join(root, "pages")
	writeTree(t, pages, "about.tsx", "user/[id].tsx")
	output := filepath.Join(root, "types", "routes.d.ts")

	out, err := execute(t, "gen", pages, output, "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated "+output)
	assert.Contains(t, out, "2 routes: 1 static, 1 dynamic (pages convention)")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  | '/about';")
	assert.Contains(t, string(data), "  | `/user/${string}`;")
	assert.NotContains(t, string(data), "declare module")

	out, err = execute(t, "gen", pages, output, "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes")
}

func TestGenOverrideAndCheck(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "app")
	writeTree(t, app, "page.tsx", "blog/[slug]/page.tsx")
	output := filepath.Join(root, "routes.d.ts")

	_, err := execute(t, "gen", app, output, "--override")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "declare module 'next/router'")

	out, err := execute(t, "gen", app, output, "--override", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	_, err = execute(t, "gen", app, output, "--check")
	assert.True(t, errors.HasCode(err, "E104"), "got %v", err)
}

func TestGenFromConfig(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "pages"), "index.tsx", "about.tsx", "api/users.tsx")
	cfgPath := filepath.Join(root, config.YAMLFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"dir: pages\noutput: out/routes.d.ts\nrouter: pages\nexclude:\n  - api/**\n"), 0644))

	_, err := execute(t, "gen", "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "out", "routes.d.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "'/about'")
	assert.NotContains(t, string(data), "/api/users")
}

func TestGenFromWorkingDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "app"), "dashboard/page.tsx")
	require.NoError(t, os.WriteFile(filepath.Join(root, config.JSONFileName), []byte(`{"dir": "app"}`), 0644))

	sub := filepath.Join(root, "app", "dashboard")
	chdir(t, sub)

	_, err := execute(t, "gen")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, config.DefaultOutput))
	require.NoError(t, err)
	assert.Contains(t, string(data), "'/dashboard'")
}

func TestGenErrors(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, "gen", filepath.Join(root, "missing"), filepath.Join(root, "routes.d.ts"), "pages")
	assert.True(t, errors.IsInvalidDirectory(err), "got %v", err)

	cfgPath := filepath.Join(root, config.JSONFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"output": "routes.d.ts"}`), 0644))
	_, err = execute(t, "gen", "--config", cfgPath)
	assert.True(t, errors.HasCode(err, "E140"), "got %v", err)

	_, err = execute(t, "gen", "--config", filepath.Join(root, "nope.json"))
	assert.True(t, errors.HasCode(err, "E121"), "got %v", err)

	_, err = execute(t, "gen", root, filepath.Join(root, "routes.d.ts"), "remix")
	assert.True(t, errors.HasCode(err, "E103"), "got %v", err)

	_, err = execute(t, "gen", "a", "b", "c", "d")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	root := t.TempDir()
	pages := filepath.Join(root, "pages")
	writeTree(t, pages, "index.tsx", "post/[pid].tsx", "post/index.tsx")

	out, err := execute(t, "list", pages)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"static   /",
		"dynamic  /post/${string}",
		"static   /post",
	}, lines)

	out, err = execute(t, "list", pages, "pages", "--json")
	require.NoError(t, err)
	var listed []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, map[string]string{"path": "/post/${string}", "kind": "dynamic"}, listed[1])
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "src", "pages"), "index.tsx")

	out, err := execute(t, "init", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.NewStore(nil).Load(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "src/pages", cfg.Dir)
	assert.Equal(t, "pages", cfg.Router)
	assert.Equal(t, config.DefaultOutput, cfg.Output)

	_, err = execute(t, "init", root)
	assert.True(t, errors.HasCode(err, "E141"), "got %v", err)
}

func TestInitYAMLWithoutRouteDir(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "init", root, "--format", "yaml", "--router", "App", "--override")
	require.NoError(t, err)
	assert.Contains(t, out, "No app/ or pages/ directory found")

	cfg, err := config.NewStore(nil).LoadFile(context.Background(), filepath.Join(root, config.YAMLFileName))
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Router)
	assert.True(t, cfg.Override)
	assert.Empty(t, cfg.Dir)
}

func TestInitErrors(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, "init", root, "--format", "toml")
	assert.True(t, errors.HasCode(err, "E122"), "got %v", err)

	_, err = execute(t, "init", root, "--router", "remix")
	assert.True(t, errors.HasCode(err, "E122"), "got %v", err)
	assert.False(t, config.NewStore(nil).Exists(context.Background(), root))

	_, err = execute(t, "init", filepath.Join(root, "missing"))
	assert.True(t, errors.HasCode(err, "E100"), "got %v", err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}

func TestGenDirOnlyWithoutConfig(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "pages"), "about.tsx")
	chdir(t, root)

	out, err := execute(t, "gen", "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated")

	data, err := os.ReadFile(filepath.Join(root, config.DefaultOutput))
	require.NoError(t, err)
	assert.Contains(t, string(data), "'/about'")
}

func TestGenDirOnlyUsesConfigOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "pages"), "about.tsx")
	require.NoError(t, os.WriteFile(filepath.Join(root, config.JSONFileName), []byte(`{"output": "types/nav.d.ts"}`), 0644))
	chdir(t, root)

	_, err := execute(t, "gen", "pages")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "types", "nav.d.ts"))
	assert.NoError(t, err)
}

func TestConventionUsage(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"gen", "list"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Contains(t, cmd.Use, "[pages|app|auto]")
	}
}

func TestErrorsCommand(t *testing.T) {
	out, err := execute(t, "errors")
	require.NoError(t, err)
	assert.Contains(t, out, "E100  directory  Invalid route directory\n")
	assert.Contains(t, out, "E142  cli        Invalid command line\n")

	out, err = execute(t, "errors", "e104")
	require.NoError(t, err)
	assert.Contains(t, out, "E104: Generated route types are out of date")
	assert.Contains(t, out, "Learn more: ")

	_, err = execute(t, "errors", "E999")
	assert.True(t, errors.HasCode(err, "E142"), "got %v", err)
}

// report runs the CLI the way main does and returns both streams.
func report(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	require.Error(t, err)
	reportError(cmd, err)
	return outBuf.String(), errBuf.String()
}

func TestReportErrorJSON(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "pages")

	stdout, stderr := report(t, "list", missing, "--json")
	assert.Empty(t, stderr)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "E100", decoded["code"])
	assert.Equal(t, missing, decoded["path"])
}

func TestReportErrorCompact(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "pages")

	stdout, stderr := report(t, "list", missing)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, missing+": E100: Invalid route directory"), stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"))

	_, stderr = report(t, "gen", "--fast")
	assert.True(t, strings.HasPrefix(stderr, "E142: Invalid command line: unknown flag: --fast"), stderr)
}
