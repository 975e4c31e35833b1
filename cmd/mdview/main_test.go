package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readme = "# Project\n\nSome *text*.\n\n## Install\n\n| a | b |\n|---|---|\n| 1<br>2 | 3 |\n\n### From source\n\n---\n\n## Usage\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout strings.Builder
	err := newCommand(&stdout).Run(context.Background(), append([]string{"mdview"}, args...))
	return stdout.String(), err
}

func writeReadme(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(readme), 0o644))
	return path
}

func TestCat(t *testing.T) {
	path := writeReadme(t)

	out, err := run(t, "--rule-width", "5", "cat", path)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"", "Project", "", "Some text.", "", "", "Install", ""}, lines[:8])
	assert.Contains(t, out, "│ 1<br>2")
	assert.Contains(t, out, "\n─────\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestCatOptions(t *testing.T) {
	path := writeReadme(t)

	out, err := run(t, "--break-mode", "line", "--column-width", "6", "cat", "--width", "7", "--color", "always", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "<br>")
	assert.Contains(t, out, "╭──────")
}

func TestCatConfigFile(t *testing.T) {
	path := writeReadme(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("rule_width = 3\ntheme = \"pulumi\"\n"), 0o644))

	out, err := run(t, "--config", configPath, "cat", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\n───\n")

	// Flags override the file.
	out, err = run(t, "--config", configPath, "--rule-width", "4", "cat", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\n────\n")
}

func TestHTML(t *testing.T) {
	path := writeReadme(t)

	out, err := run(t, "html", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<h1>Project</h1>\n<p>Some <em>text</em>.</p>\n"))
	assert.Contains(t, out, "<table>")
}

func TestTOC(t *testing.T) {
	path := writeReadme(t)

	out, err := run(t, "toc", path)
	require.NoError(t, err)
	assert.Equal(t, "- Project (#project)\n  - Install (#install)\n    - From source (#from-source)\n  - Usage (#usage)\n", out)
}

func TestErrors(t *testing.T) {
	path := writeReadme(t)

	_, err := run(t, "cat")
	assert.ErrorContains(t, err, "expected exactly one file argument")

	_, err = run(t, "cat", filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorContains(t, err, "reading")

	_, err = run(t, "--theme", "nope", "cat", path)
	assert.ErrorContains(t, err, `unknown theme "nope"`)

	_, err = run(t, "--break-mode", "wrap", "toc", path)
	assert.ErrorContains(t, err, "unknown break mode")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "toc", path)
	assert.ErrorContains(t, err, "opening config")
}
