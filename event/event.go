// Package event defines the stream of parse events consumed by the renderer, and converts goldmark ASTs into that
// stream.
//
// A stream is a flat, document-ordered sequence: every container node contributes a Start event when it is entered
// and an End event when it is left, and leaf content (text, code, raw HTML, breaks, rules) contributes a single
// event.
package event

import "fmt"

// TagKind identifies the kind of a Tag.
type TagKind int

const (
	KindNone TagKind = iota
	KindParagraph
	KindHeading
	KindBlockQuote
	KindCodeBlock
	KindHTMLBlock
	KindList
	KindItem
	KindTable
	KindTableHead
	KindTableRow
	KindTableCell
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindLink
	KindImage
)

var kindNames = [...]string{
	KindNone:          "None",
	KindParagraph:     "Paragraph",
	KindHeading:       "Heading",
	KindBlockQuote:    "BlockQuote",
	KindCodeBlock:     "CodeBlock",
	KindHTMLBlock:     "HTMLBlock",
	KindList:          "List",
	KindItem:          "Item",
	KindTable:         "Table",
	KindTableHead:     "TableHead",
	KindTableRow:      "TableRow",
	KindTableCell:     "TableCell",
	KindEmphasis:      "Emphasis",
	KindStrong:        "Strong",
	KindStrikethrough: "Strikethrough",
	KindLink:          "Link",
	KindImage:         "Image",
}

func (k TagKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TagKind(%d)", int(k))
	}
	return kindNames[k]
}

// A Tag describes a block or inline scope. The set of tags is closed: only the types in this package implement Tag.
type Tag interface {
	Kind() TagKind

	tag()
}

// Alignment is the alignment of a table column.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

type (
	Paragraph  struct{}
	BlockQuote struct{}
	HTMLBlock  struct{}
	Item       struct{}
	TableHead  struct{}
	TableRow   struct{}
	TableCell  struct{}

	Emphasis      struct{}
	Strong        struct{}
	Strikethrough struct{}

	Heading struct {
		Level int
	}

	CodeBlock struct {
		// The fence's info string language, or the empty string for indented code and unlabeled fences.
		Language string
		Fenced   bool
	}

	List struct {
		Ordered bool
		// The first ordinal of an ordered list.
		Start int
	}

	Table struct {
		Alignments []Alignment
	}

	Link struct {
		Destination string
		Title       string
	}

	Image struct {
		Destination string
		Title       string
	}
)

func (Paragraph) Kind() TagKind     { return KindParagraph }
func (Heading) Kind() TagKind       { return KindHeading }
func (BlockQuote) Kind() TagKind    { return KindBlockQuote }
func (CodeBlock) Kind() TagKind     { return KindCodeBlock }
func (HTMLBlock) Kind() TagKind     { return KindHTMLBlock }
func (List) Kind() TagKind          { return KindList }
func (Item) Kind() TagKind          { return KindItem }
func (Table) Kind() TagKind         { return KindTable }
func (TableHead) Kind() TagKind     { return KindTableHead }
func (TableRow) Kind() TagKind      { return KindTableRow }
func (TableCell) Kind() TagKind     { return KindTableCell }
func (Emphasis) Kind() TagKind      { return KindEmphasis }
func (Strong) Kind() TagKind        { return KindStrong }
func (Strikethrough) Kind() TagKind { return KindStrikethrough }
func (Link) Kind() TagKind          { return KindLink }
func (Image) Kind() TagKind         { return KindImage }

func (Paragraph) tag()     {}
func (Heading) tag()       {}
func (BlockQuote) tag()    {}
func (CodeBlock) tag()     {}
func (HTMLBlock) tag()     {}
func (List) tag()          {}
func (Item) tag()          {}
func (Table) tag()         {}
func (TableHead) tag()     {}
func (TableRow) tag()      {}
func (TableCell) tag()     {}
func (Emphasis) tag()      {}
func (Strong) tag()        {}
func (Strikethrough) tag() {}
func (Link) tag()          {}
func (Image) tag()         {}

// Kind identifies the kind of an Event.
type Kind int

const (
	// StartEvent opens the scope described by Event.Tag.
	StartEvent Kind = iota
	// EndEvent closes the scope described by Event.Tag.
	EndEvent
	// TextEvent carries literal text in Event.Text.
	TextEvent
	// CodeEvent carries the contents of an inline code span in Event.Text.
	CodeEvent
	// HTMLEvent carries raw HTML in Event.Text.
	HTMLEvent
	SoftBreakEvent
	HardBreakEvent
	// RuleEvent is a thematic break.
	RuleEvent
	// TaskMarkerEvent is a task list checkbox; Event.Checked reports its state.
	TaskMarkerEvent
)

// An Event is a single element of a parse event stream.
type Event struct {
	Kind    Kind
	Tag     Tag
	Text    string
	Checked bool
}

func (e Event) String() string {
	switch e.Kind {
	case StartEvent:
		return fmt.Sprintf("Start(%v)", e.Tag.Kind())
	case EndEvent:
		return fmt.Sprintf("End(%v)", e.Tag.Kind())
	case TextEvent:
		return fmt.Sprintf("Text(%q)", e.Text)
	case CodeEvent:
		return fmt.Sprintf("Code(%q)", e.Text)
	case HTMLEvent:
		return fmt.Sprintf("HTML(%q)", e.Text)
	case SoftBreakEvent:
		return "SoftBreak"
	case HardBreakEvent:
		return "HardBreak"
	case RuleEvent:
		return "Rule"
	case TaskMarkerEvent:
		return fmt.Sprintf("TaskMarker(%v)", e.Checked)
	default:
		return fmt.Sprintf("Event(%d)", int(e.Kind))
	}
}

func Start(t Tag) Event {
	return Event{Kind: StartEvent, Tag: t}
}

func End(t Tag) Event {
	return Event{Kind: EndEvent, Tag: t}
}

func Text(s string) Event {
	return Event{Kind: TextEvent, Text: s}
}

func Code(s string) Event {
	return Event{Kind: CodeEvent, Text: s}
}

func HTML(s string) Event {
	return Event{Kind: HTMLEvent, Text: s}
}

func SoftBreak() Event {
	return Event{Kind: SoftBreakEvent}
}

func HardBreak() Event {
	return Event{Kind: HardBreakEvent}
}

func Rule() Event {
	return Event{Kind: RuleEvent}
}

func TaskMarker(checked bool) Event {
	return Event{Kind: TaskMarkerEvent, Checked: checked}
}
