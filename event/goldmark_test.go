package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []Event
	}{
		{
			name:  "heading and paragraph",
			input: "# Title\n\nHello **world**.",
			expected: []Event{
				Start(Heading{Level: 1}), Text("Title"), End(Heading{Level: 1}),
				Start(Paragraph{}), Text("Hello "), Start(Strong{}), Text("world"), End(Strong{}), Text("."), End(Paragraph{}),
			},
		},
		{
			name:  "fenced code",
			input: "```go\nx := **y**\n```\n",
			expected: []Event{
				Start(CodeBlock{Language: "go", Fenced: true}), Text("x := **y**\n"), End(CodeBlock{Language: "go", Fenced: true}),
			},
		},
		{
			name:  "inline code and strikethrough",
			input: "`a` ~~b~~",
			expected: []Event{
				Start(Paragraph{}), Code("a"), Text(" "), Start(Strikethrough{}), Text("b"), End(Strikethrough{}), End(Paragraph{}),
			},
		},
		{
			name:  "ordered list",
			input: "3. a\n4. b\n",
			expected: []Event{
				Start(List{Ordered: true, Start: 3}),
				Start(Item{}), Text("a"), End(Item{}),
				Start(Item{}), Text("b"), End(Item{}),
				End(List{Ordered: true, Start: 3}),
			},
		},
		{
			name:  "thematic break",
			input: "---\n",
			expected: []Event{
				Rule(),
			},
		},
		{
			name:  "table",
			input: "| A | B |\n|:--|--:|\n| 1 | 2 |",
			expected: []Event{
				Start(Table{Alignments: []Alignment{AlignLeft, AlignRight}}),
				Start(TableHead{}), Start(TableRow{}),
				Start(TableCell{}), Text("A"), End(TableCell{}),
				Start(TableCell{}), Text("B"), End(TableCell{}),
				End(TableRow{}), End(TableHead{}),
				Start(TableRow{}),
				Start(TableCell{}), Text("1"), End(TableCell{}),
				Start(TableCell{}), Text("2"), End(TableCell{}),
				End(TableRow{}),
				End(Table{Alignments: []Alignment{AlignLeft, AlignRight}}),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Parse([]byte(c.input)))
		})
	}
}

func TestParseBreaks(t *testing.T) {
	events := Parse([]byte("one\ntwo\\\nthree"))

	var kinds []Kind
	for _, e := range events {
		if e.Kind == SoftBreakEvent || e.Kind == HardBreakEvent {
			kinds = append(kinds, e.Kind)
		}
	}
	assert.Equal(t, []Kind{SoftBreakEvent, HardBreakEvent}, kinds)
}

func TestParseLink(t *testing.T) {
	events := Parse([]byte("[text](http://example.com \"title\")"))

	link := Link{Destination: "http://example.com", Title: "title"}
	assert.Equal(t, []Event{
		Start(Paragraph{}), Start(link), Text("text"), End(link), End(Paragraph{}),
	}, events)
}

func TestParseRawHTML(t *testing.T) {
	events := Parse([]byte("a <kbd>b</kbd>"))

	var html []string
	for _, e := range events {
		if e.Kind == HTMLEvent {
			html = append(html, e.Text)
		}
	}
	assert.Equal(t, []string{"<kbd>", "</kbd>"}, html)
}

func TestParseTaskList(t *testing.T) {
	events := Parse([]byte("- [x] done\n- [ ] todo\n"))

	var markers []bool
	for _, e := range events {
		if e.Kind == TaskMarkerEvent {
			markers = append(markers, e.Checked)
		}
	}
	assert.Equal(t, []bool{true, false}, markers)
}

func TestParseBalanced(t *testing.T) {
	events := Parse([]byte("> # q\n>\n> - a\n>   1. b\n\n| x |\n|---|\n| *y* |\n"))

	var stack []TagKind
	for _, e := range events {
		switch e.Kind {
		case StartEvent:
			stack = append(stack, e.Tag.Kind())
		case EndEvent:
			if assert.NotEmpty(t, stack) {
				assert.Equal(t, stack[len(stack)-1], e.Tag.Kind(), "mismatched %v", e)
				stack = stack[:len(stack)-1]
			}
		}
	}
	assert.Empty(t, stack)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "Start(Heading)", Start(Heading{Level: 2}).String())
	assert.Equal(t, `Text("x")`, Text("x").String())
	assert.Equal(t, "TaskMarker(true)", TaskMarker(true).String())
	assert.Equal(t, "TagKind(99)", TagKind(99).String())
}
