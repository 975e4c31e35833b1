package viewer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/event"
	"github.com/pgavlin/mdview/indexer"
	"github.com/pgavlin/mdview/renderer"
	"github.com/pgavlin/mdview/styles"
)

// A Preview is a rendered file ready for display.
type Preview struct {
	// Title names the preview in its footer.
	Title string
	// Path is the file the preview was loaded from.
	Path string
	// CharCount is the number of characters in the preview's source text.
	CharCount int

	Document *document.Document
	Index    *indexer.DocumentIndex
}

// Footer returns the preview's status line.
func (p *Preview) Footer() string {
	return fmt.Sprintf("%v | %d chars | Press 'q' to close", p.Title, p.CharCount)
}

// IsMarkdown returns true if path names a Markdown file.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %v", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("reading %v: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %v is a directory", ErrNotFound, path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %v: %w", path, err)
	}
	return source, nil
}

// LoadMarkdown reads and renders a Markdown file.
func LoadMarkdown(path string, options ...renderer.RendererOption) (*Preview, error) {
	if !IsMarkdown(path) {
		return nil, fmt.Errorf("%w: %v", ErrNotMarkdown, filepath.Base(path))
	}
	source, err := readFile(path)
	if err != nil {
		return nil, err
	}

	doc := renderer.RenderMarkdown(source, options...)
	return &Preview{
		Title:     path,
		Path:      path,
		CharCount: utf8.RuneCount(source),
		Document:  doc,
		Index:     indexer.Index(doc),
	}, nil
}

// LoadHTML reads a Markdown file, converts it to HTML, and previews the HTML as plain text.
func LoadHTML(path string, theme *styles.Theme) (*Preview, error) {
	source, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := event.NewMarkdown().Convert(source, &html); err != nil {
		return nil, fmt.Errorf("converting %v: %w", path, err)
	}

	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	doc := document.FromText(html.String(), theme.Text)
	return &Preview{
		Title:     "HTML Preview: " + path,
		Path:      path,
		CharCount: utf8.RuneCount(html.Bytes()),
		Document:  doc,
		Index:     indexer.Index(doc),
	}, nil
}
