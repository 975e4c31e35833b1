package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgavlin/mdview/renderer"
	"github.com/pgavlin/mdview/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	source := "# 見出し\n\n| a |\n|---|\n| x<br>y |\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	p, err := LoadMarkdown(path, renderer.WithColumnWidth(10))
	require.NoError(t, err)

	assert.Equal(t, path, p.Title)
	assert.Equal(t, len([]rune(source)), p.CharCount)
	assert.Equal(t, fmt.Sprintf("%v | %d chars | Press 'q' to close", path, p.CharCount), p.Footer())

	require.Len(t, p.Document.Headings, 1)
	assert.Equal(t, "見出し", p.Document.Headings[0].Text)
	assert.Contains(t, p.Document.PlainText(), "x<br>y")

	sections, ok := p.Index.Lookup("見出し")
	require.True(t, ok)
	assert.Equal(t, 1, sections[0].Start)
}

func TestLoadMarkdownErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMarkdown(filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	_, err = LoadMarkdown(filepath.Join(dir, "notes.txt"))
	assert.ErrorIs(t, err, ErrNotMarkdown)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.md"), 0o755))
	_, err = LoadMarkdown(filepath.Join(dir, "dir.md"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nHello **world**.\n"), 0o644))

	theme := styles.NewTheme(styles.Pulumi)
	p, err := LoadHTML(path, theme)
	require.NoError(t, err)

	html := "<h1>Title</h1>\n<p>Hello <strong>world</strong>.</p>\n"
	assert.Equal(t, "HTML Preview: "+path, p.Title)
	assert.Equal(t, len(html), p.CharCount)
	assert.Equal(t, html, p.Document.PlainText())
	assert.Equal(t, theme.Text, p.Document.Lines[0][0].Style)
	assert.True(t, strings.HasPrefix(p.Footer(), "HTML Preview: "))

	_, err = LoadHTML(filepath.Join(t.TempDir(), "missing.md"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("a.md"))
	assert.True(t, IsMarkdown("A.MD"))
	assert.True(t, IsMarkdown("a.markdown"))
	assert.False(t, IsMarkdown("a.txt"))
	assert.False(t, IsMarkdown("md"))
}
