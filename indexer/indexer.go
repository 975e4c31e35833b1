// Package indexer builds a section tree over the headings of a rendered document.
package indexer

import (
	"regexp"
	"strings"

	"github.com/pgavlin/mdview/document"
)

var gfmPunctuationRegexp = regexp.MustCompile(`[^\p{L}\p{M}\p{Nd}\p{Pc}\- ]`)

// GitHubFlavoredMarkdown is an AnchorFunc that transforms heading text into GitHub Flavored
// Markdown anchors. Heading text is converted to a GFM anchor by first converting all text
// to lowercase, removing all non-word, non-hyphen, and non-space characters (where word characters are
// Unicode letters, marks, digits, and connector punctuation), and then
// replacing all spaces with hyphens.
//
// Ref: https://github.com/gjtorikian/html-pipeline/blob/main/lib/html/pipeline/toc_filter.rb
func GitHubFlavoredMarkdown(heading string) string {
	heading = strings.ToLower(heading)
	heading = gfmPunctuationRegexp.ReplaceAllString(heading, "")
	return strings.ReplaceAll(heading, " ", "-")
}

// An AnchorFunc is a function that converts raw header text into an anchor that is appropriate
// for use in a URL.
type AnchorFunc func(heading string) (anchor string)

// An IndexOption affects the behavior of the Index function.
type IndexOption func(i *indexer)

// WithAnchors configures the AnchorFunc used by the indexer to convert heading text into anchors.
func WithAnchors(anchors AnchorFunc) IndexOption {
	return func(i *indexer) {
		i.anchorFunc = anchors
	}
}

type indexer struct {
	anchorFunc AnchorFunc

	sectionStack []*Section
	anchors      map[string][]*Section
	sections     []*Section
}

func (i *indexer) heading(id int, heading document.Heading) {
	newSection := &Section{
		ID:     id,
		Level:  heading.Level,
		Title:  heading.Text,
		Anchor: i.anchorFunc(heading.Text),
		Start:  heading.Line,
	}
	i.anchors[newSection.Anchor] = append(i.anchors[newSection.Anchor], newSection)
	i.sections = append(i.sections, newSection)

	// Close every open section at the same or a deeper level. The heading's own line, and the blank line that
	// precedes it, belong to the new section.
	end := heading.Line
	if end > 0 {
		end--
	}
	currentSection := i.sectionStack[len(i.sectionStack)-1]
	for heading.Level <= currentSection.Level {
		currentSection.End = end

		i.sectionStack = i.sectionStack[:len(i.sectionStack)-1]
		currentSection = i.sectionStack[len(i.sectionStack)-1]
	}
	parent := currentSection

	parent.Subsections = append(parent.Subsections, newSection)
	i.sectionStack = append(i.sectionStack, newSection)
}

// Index converts the text of each of the document's headings to an anchor and returns a DocumentIndex that maps from
// anchors to lists of sections. Headings are converted to GitHub Flavored Markdown anchors by default. Each section
// spans the lines from its heading up to the next heading at the same or a shallower level, or the end of the
// document. The root section spans the whole document.
func Index(doc *document.Document, options ...IndexOption) *DocumentIndex {
	height := doc.Height()

	indexer := &indexer{
		anchorFunc:   GitHubFlavoredMarkdown,
		sectionStack: []*Section{{End: height}},
		anchors:      map[string][]*Section{},
	}
	for _, o := range options {
		o(indexer)
	}

	if doc != nil {
		for id, h := range doc.Headings {
			indexer.heading(id+1, h)
		}
	}
	for _, s := range indexer.sectionStack[1:] {
		s.End = height
	}

	return &DocumentIndex{
		toc:      indexer.sectionStack[0],
		anchors:  indexer.anchors,
		sections: indexer.sections,
	}
}

// A Section represents the lines under a Heading (or the start of the document).
type Section struct {
	// ID is the one-based position of the section's heading in the document. The root section has ID 0.
	ID     int
	Level  int
	Title  string
	Anchor string

	// Start and End delimit the section's lines as a half-open range.
	Start int
	End   int

	Subsections []*Section
}

// Lines returns the section's lines within doc.
func (s *Section) Lines(doc *document.Document) []document.Line {
	if doc == nil {
		return nil
	}
	start, end := s.Start, s.End
	if end > len(doc.Lines) {
		end = len(doc.Lines)
	}
	if start > end {
		start = end
	}
	return doc.Lines[start:end]
}

// Walk calls visit for the section and each of its subsections in document order. Walk stops at the first error.
func (s *Section) Walk(visit func(s *Section, depth int) error) error {
	return s.walk(visit, 0)
}

func (s *Section) walk(visit func(s *Section, depth int) error, depth int) error {
	if err := visit(s, depth); err != nil {
		return err
	}
	for _, sub := range s.Subsections {
		if err := sub.walk(visit, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// A DocumentIndex maps from anchors to Sections.
type DocumentIndex struct {
	toc      *Section
	anchors  map[string][]*Section
	sections []*Section
}

// TableOfContents returns the root of the document's section tree.
func (index *DocumentIndex) TableOfContents() *Section {
	return index.toc
}

// Sections returns every section but the root in document order.
func (index *DocumentIndex) Sections() []*Section {
	return index.sections
}

// Lookup returns the list of sections with the given anchor. Sections appear in the list in
// the same order in which they appear in the source document. A leading '#' is ignored.
func (index *DocumentIndex) Lookup(anchor string) ([]*Section, bool) {
	sections, ok := index.anchors[strings.TrimPrefix(anchor, "#")]
	return sections, ok
}

// Next returns the first section that starts after line, if any.
func (index *DocumentIndex) Next(line int) (*Section, bool) {
	for _, s := range index.sections {
		if s.Start > line {
			return s, true
		}
	}
	return nil, false
}

// Previous returns the last section that starts before line, if any.
func (index *DocumentIndex) Previous(line int) (*Section, bool) {
	for i := len(index.sections) - 1; i >= 0; i-- {
		if s := index.sections[i]; s.Start < line {
			return s, true
		}
	}
	return nil, false
}
