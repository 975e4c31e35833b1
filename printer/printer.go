// Package printer writes rendered documents to byte streams, optionally styled with ANSI escape sequences.
package printer

import (
	"bytes"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/styles"
)

// An Option configures a call to Fprint.
type Option func(p *printer)

// WithColor enables or disables ANSI styling. Styling is disabled by default.
func WithColor(color bool) Option {
	return func(p *printer) {
		p.color = color
	}
}

// WithWidth truncates each line to the given number of cells. Non-positive widths disable truncation.
func WithWidth(width int) Option {
	return func(p *printer) {
		p.width = width
	}
}

type printer struct {
	color bool
	width int

	cache map[styles.Style]lipgloss.Style
}

// lipglossStyle converts a document style into a lipgloss style.
func (p *printer) lipglossStyle(style styles.Style) lipgloss.Style {
	if s, ok := p.cache[style]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if style.Foreground.IsSet() {
		s = s.Foreground(lipgloss.Color(style.Foreground.String()))
	}
	if style.Background.IsSet() {
		s = s.Background(lipgloss.Color(style.Background.String()))
	}
	if style.Has(styles.Bold) {
		s = s.Bold(true)
	}
	if style.Has(styles.Italic) {
		s = s.Italic(true)
	}
	if style.Has(styles.Underline) {
		s = s.Underline(true)
	}
	if style.Has(styles.Strikethrough) {
		s = s.Strikethrough(true)
	}
	if style.Has(styles.Dim) {
		s = s.Faint(true)
	}

	p.cache[style] = s
	return s
}

func (p *printer) line(buf *bytes.Buffer, line document.Line) {
	start := buf.Len()
	for _, span := range line {
		if p.color {
			buf.WriteString(p.lipglossStyle(span.Style).Render(span.Text))
		} else {
			buf.WriteString(span.Text)
		}
	}
	if p.width > 0 {
		truncated := ansi.Truncate(buf.String()[start:], p.width, "")
		buf.Truncate(start)
		buf.WriteString(truncated)
	}
	buf.WriteByte('\n')
}

// Fprint writes the document to w, one line per row.
func Fprint(w io.Writer, doc *document.Document, options ...Option) error {
	p := printer{cache: map[styles.Style]lipgloss.Style{}}
	for _, o := range options {
		o(&p)
	}

	var buf bytes.Buffer
	if doc != nil {
		for _, line := range doc.Lines {
			p.line(&buf, line)
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Sprint returns the text that Fprint would write.
func Sprint(doc *document.Document, options ...Option) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, doc, options...)
	return buf.String()
}
