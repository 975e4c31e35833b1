// Package document defines the styled, line-oriented output of the Markdown renderer.
//
// A Document is an ordered list of Lines; a Line is an ordered list of Spans; a Span pairs an immutable run of text
// with a fully resolved style. Documents are produced once and never modified afterwards, so they may be shared
// freely between readers.
package document

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pgavlin/mdview/styles"
)

// A Span is a run of text with a single style.
type Span struct {
	Text  string
	Style styles.Style
}

// Width returns the number of terminal cells occupied by the span's text.
func (s Span) Width() int {
	return ansi.StringWidth(s.Text)
}

// A Line is one display row. Spans appear in left-to-right order. A blank line has no spans.
type Line []Span

// Width returns the number of terminal cells occupied by the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += s.Width()
	}
	return w
}

// String returns the unstyled text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// A Heading records the position of a heading in a rendered document.
type Heading struct {
	// The heading level, from 1 to 6.
	Level int
	// The heading's plain text.
	Text string
	// The index of the heading's line in Document.Lines.
	Line int
}

// Document is a rendered Markdown document.
type Document struct {
	Lines    []Line
	Headings []Heading
}

// Height returns the number of lines in the document.
func (d *Document) Height() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Width returns the width of the document's widest line.
func (d *Document) Width() int {
	if d == nil {
		return 0
	}
	longest := 0
	for _, l := range d.Lines {
		if w := l.Width(); w > longest {
			longest = w
		}
	}
	return longest
}

// PlainText returns the unstyled text of the document, one line per row.
func (d *Document) PlainText() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	for _, l := range d.Lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// FromText builds a document from plain text, one span per line, all in the given style.
func FromText(text string, style styles.Style) *Document {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &Document{}
	}

	var doc Document
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if l == "" {
			doc.Lines = append(doc.Lines, nil)
			continue
		}
		doc.Lines = append(doc.Lines, Line{{Text: l, Style: style}})
	}
	return &doc
}
