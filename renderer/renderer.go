// Package renderer converts Markdown into a styled, line-oriented document suitable for display on a terminal.
//
// The conversion is a single forward pass over a parse event stream (see package event). Block and inline scopes
// push and pop entries on a style stack; lists and tables keep side stacks of their own; completed spans accumulate
// in a pending line that is flushed into the document at block boundaries.
package renderer

import (
	"strings"

	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/event"
	"github.com/pgavlin/mdview/styles"
)

// DefaultPlaceholder is the token substituted for literal <br> and <BR> before parsing. It is built from Private Use
// Area code points, which do not occur in ordinary text and which the tokenizer treats as plain characters.
const DefaultPlaceholder = "\uE000BR\uE001"

const (
	// DefaultRuleWidth is the width of a rendered thematic break.
	DefaultRuleWidth = 80
	// DefaultColumnWidth is the width of each table column between border glyphs.
	DefaultColumnWidth = 12
)

// BreakMode selects how a protected <br> is restored.
type BreakMode int

const (
	// BreakMarker renders each break as a distinctly styled "<br>" span within the line.
	BreakMarker BreakMode = iota
	// BreakLine starts a new output line at each break.
	BreakLine
)

// ParseBreakMode converts "marker" or "line" into a BreakMode.
func ParseBreakMode(s string) (BreakMode, bool) {
	switch strings.ToLower(s) {
	case "", "marker":
		return BreakMarker, true
	case "line":
		return BreakLine, true
	default:
		return BreakMarker, false
	}
}

func (m BreakMode) String() string {
	if m == BreakLine {
		return "line"
	}
	return "marker"
}

// Renderer converts event streams into documents. A Renderer holds the state of a single conversion; use one
// Renderer per goroutine.
type Renderer struct {
	theme       *styles.Theme
	placeholder string
	breakMode   BreakMode
	ruleWidth   int
	columnWidth int

	lines    []document.Line
	headings []document.Heading
	pending  document.Line
	text     strings.Builder

	styles  styleStack
	lists   []listState
	table   *tableState
	inCode  bool
	heading *headingState
}

// A RendererOption represents a configuration option for a Renderer.
type RendererOption func(r *Renderer)

// WithTheme sets the theme used to style the document. A nil theme selects the default theme.
func WithTheme(theme *styles.Theme) RendererOption {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithPlaceholder sets the token that stands in for literal break markers. The same token must be used when
// substituting the source text. An empty placeholder disables the protocol: breaks reach the tokenizer unprotected
// and no text is scanned for the placeholder.
func WithPlaceholder(placeholder string) RendererOption {
	return func(r *Renderer) {
		r.placeholder = placeholder
	}
}

// WithBreakMode sets how protected break markers are restored. The default is BreakMarker.
func WithBreakMode(mode BreakMode) RendererOption {
	return func(r *Renderer) {
		r.breakMode = mode
	}
}

// WithRuleWidth sets the width of thematic breaks. Non-positive widths select the default.
func WithRuleWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.ruleWidth = width
	}
}

// WithColumnWidth sets the width of table columns. Widths below 3 select the default.
func WithColumnWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.columnWidth = width
	}
}

// New creates a new Renderer with the given options.
func New(options ...RendererOption) *Renderer {
	r := Renderer{placeholder: DefaultPlaceholder}
	for _, o := range options {
		o(&r)
	}
	if r.theme == nil {
		r.theme = styles.NewTheme(styles.GitHubDark)
	}
	if r.ruleWidth <= 0 {
		r.ruleWidth = DefaultRuleWidth
	}
	if r.columnWidth < 3 {
		r.columnWidth = DefaultColumnWidth
	}
	return &r
}

// Placeholder returns the break-marker placeholder used by the renderer.
func (r *Renderer) Placeholder() string {
	return r.placeholder
}

func (r *Renderer) reset() {
	r.lines, r.headings, r.pending = nil, nil, nil
	r.text.Reset()
	r.styles = newStyleStack(r.theme.Text)
	r.lists, r.table, r.inCode, r.heading = nil, nil, false, nil
}

// Render converts an event stream into a document. Render never fails: events that close a scope other than the
// innermost open one are ignored, and unclosed scopes are simply abandoned when the stream ends.
func (r *Renderer) Render(events []event.Event) *document.Document {
	r.reset()
	for _, e := range events {
		r.handle(e)
	}
	r.flushText()
	r.flushLine()

	doc := &document.Document{Lines: r.lines, Headings: r.headings}
	r.lines, r.headings = nil, nil
	return doc
}

// Balanced returns true if every scope opened during the last call to Render was closed: the style stack holds only
// the document default, and no list, table, or code block remains open.
func (r *Renderer) Balanced() bool {
	return r.styles.depth() == 0 && len(r.lists) == 0 && r.table == nil && !r.inCode && r.heading == nil
}

func (r *Renderer) handle(e event.Event) {
	if e.Kind == event.TextEvent {
		r.literal(e.Text)
		return
	}

	r.flushText()
	switch e.Kind {
	case event.StartEvent:
		if e.Tag != nil {
			r.open(e.Tag)
		}
	case event.EndEvent:
		if e.Tag != nil {
			r.close(e.Tag)
		}
	case event.CodeEvent:
		r.inlineCode(e.Text)
	case event.HTMLEvent:
		r.html(e.Text)
	case event.SoftBreakEvent:
		if r.heading != nil {
			r.heading.text.WriteString(" ")
		}
		r.appendSpan(" ", r.styles.current())
	case event.HardBreakEvent:
		r.flushLine()
	case event.RuleEvent:
		r.rule()
	case event.TaskMarkerEvent:
		r.taskMarker(e.Checked)
	}
}

func (r *Renderer) open(tag event.Tag) {
	// Block-level effects that precede the scope's style.
	switch tag := tag.(type) {
	case event.Heading:
		r.openHeading(tag)
	case event.BlockQuote:
		r.flushLine()
		r.appendSpan("▎ ", r.accent(r.theme.QuoteBorder))
	case event.CodeBlock:
		r.openCodeBlock(tag)
	case event.HTMLBlock:
		r.flushLine()
	case event.List:
		r.openList(tag)
	case event.Item:
		r.openItem()
	case event.Table:
		r.openTable(tag)
	case event.TableHead:
		r.openTableHead()
	case event.TableRow:
		r.openTableRow()
	case event.TableCell:
		r.openTableCell()
	}

	r.styles.push(tag.Kind(), r.scopeStyle(tag))
}

func (r *Renderer) close(tag event.Tag) {
	if !r.styles.pop(tag.Kind()) {
		return
	}

	switch tag.Kind() {
	case event.KindParagraph, event.KindHTMLBlock:
		r.flushLine()
		r.blankLine()
	case event.KindHeading:
		r.closeHeading()
	case event.KindBlockQuote:
		r.flushLine()
	case event.KindCodeBlock:
		r.closeCodeBlock()
	case event.KindList:
		r.closeList()
	case event.KindItem:
		r.flushLine()
	case event.KindTable:
		r.closeTable()
	case event.KindTableHead:
		r.closeTableHead()
	case event.KindTableRow:
		r.flushLine()
	case event.KindTableCell:
		r.closeTableCell()
	}
}

// appendSpan adds a span to the pending line. Empty text is dropped.
func (r *Renderer) appendSpan(text string, style styles.Style) {
	if text == "" {
		return
	}
	r.pending = append(r.pending, document.Span{Text: text, Style: style})
}

// flushLine moves the pending line, if any, into the document.
func (r *Renderer) flushLine() {
	if len(r.pending) == 0 {
		return
	}
	r.lines = append(r.lines, r.pending)
	r.pending = nil
}

// appendLine adds a complete line to the document. The pending line must be empty.
func (r *Renderer) appendLine(spans ...document.Span) {
	r.lines = append(r.lines, document.Line(spans))
}

// accent resolves a theme accent against the document default.
func (r *Renderer) accent(style styles.Style) styles.Style {
	return r.styles.base().Merge(style)
}

func (r *Renderer) blankLine() {
	r.lines = append(r.lines, nil)
}

type headingState struct {
	level int
	line  int
	text  strings.Builder
}

func (r *Renderer) openHeading(tag event.Heading) {
	r.flushLine()
	r.blankLine()
	r.heading = &headingState{level: tag.Level, line: len(r.lines)}
}

func (r *Renderer) closeHeading() {
	r.flushLine()
	if h := r.heading; h != nil {
		r.headings = append(r.headings, document.Heading{
			Level: h.level,
			Text:  strings.TrimSpace(h.text.String()),
			Line:  h.line,
		})
		r.heading = nil
	}
	r.blankLine()
}

func (r *Renderer) rule() {
	r.flushLine()
	r.appendLine(document.Span{Text: strings.Repeat("─", r.ruleWidth), Style: r.accent(r.theme.Rule)})
	r.blankLine()
}
