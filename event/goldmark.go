package event

import (
	"strings"

	"github.com/pgavlin/goldmark"
	"github.com/pgavlin/goldmark/ast"
	"github.com/pgavlin/goldmark/extension"
	xast "github.com/pgavlin/goldmark/extension/ast"
	"github.com/pgavlin/goldmark/text"
)

// NewMarkdown returns a goldmark Markdown configured with the extensions whose output FromAST understands: tables,
// strikethrough, task lists, and linkified URLs.
func NewMarkdown(options ...goldmark.Option) goldmark.Markdown {
	return goldmark.New(append([]goldmark.Option{goldmark.WithExtensions(extension.GFM)}, options...)...)
}

// Parse parses Markdown source and returns its event stream.
func Parse(source []byte) []Event {
	document := NewMarkdown().Parser().Parse(text.NewReader(source))
	return FromAST(document, source)
}

type converter struct {
	source []byte
	events []Event
}

// FromAST flattens a goldmark AST into an event stream. Nodes that have no counterpart in the event model (the
// document itself, tight-list text blocks, link reference definitions) contribute their children only.
func FromAST(node ast.Node, source []byte) []Event {
	c := converter{source: source}
	if err := ast.Walk(node, c.walk); err != nil {
		// walk never fails.
		panic(err)
	}
	return c.events
}

func (c *converter) emit(e ...Event) {
	c.events = append(c.events, e...)
}

func (c *converter) scope(t Tag, enter bool) {
	if enter {
		c.emit(Start(t))
	} else {
		c.emit(End(t))
	}
}

func (c *converter) lines(segments *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segments.Len(); i++ {
		line := segments.At(i)
		b.Write(line.Value(c.source))
	}
	return b.String()
}

func (c *converter) codeBlock(t CodeBlock, node ast.Node) {
	c.emit(Start(t))
	if code := c.lines(node.Lines()); code != "" {
		c.emit(Text(code))
	}
	c.emit(End(t))
}

func (c *converter) inlineText(node ast.Node) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			b.Write(child.Segment.Value(c.source))
		case *ast.String:
			b.Write(child.Value)
		}
	}
	return b.String()
}

func alignments(aligns []xast.Alignment) []Alignment {
	result := make([]Alignment, len(aligns))
	for i, a := range aligns {
		switch a {
		case xast.AlignLeft:
			result[i] = AlignLeft
		case xast.AlignCenter:
			result[i] = AlignCenter
		case xast.AlignRight:
			result[i] = AlignRight
		default:
			result[i] = AlignNone
		}
	}
	return result
}

func (c *converter) walk(node ast.Node, enter bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	// blocks
	case *ast.Paragraph:
		c.scope(Paragraph{}, enter)
	case *ast.Heading:
		c.scope(Heading{Level: node.Level}, enter)
	case *ast.Blockquote:
		c.scope(BlockQuote{}, enter)
	case *ast.FencedCodeBlock:
		if enter {
			c.codeBlock(CodeBlock{Language: string(node.Language(c.source)), Fenced: true}, node)
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		if enter {
			c.codeBlock(CodeBlock{}, node)
		}
		return ast.WalkSkipChildren, nil
	case *ast.HTMLBlock:
		if enter {
			c.emit(Start(HTMLBlock{}))
			if html := c.lines(node.Lines()); html != "" {
				c.emit(HTML(html))
			}
			if node.HasClosure() {
				c.emit(HTML(string(node.ClosureLine.Value(c.source))))
			}
			c.emit(End(HTMLBlock{}))
		}
		return ast.WalkSkipChildren, nil
	case *ast.List:
		c.scope(List{Ordered: node.IsOrdered(), Start: node.Start}, enter)
	case *ast.ListItem:
		c.scope(Item{}, enter)
	case *ast.ThematicBreak:
		if enter {
			c.emit(Rule())
		}

	// extension blocks
	case *xast.Table:
		c.scope(Table{Alignments: alignments(node.Alignments)}, enter)
	case *xast.TableHeader:
		// The header's cells are direct children of the header; give them a row of their own.
		if enter {
			c.emit(Start(TableHead{}), Start(TableRow{}))
		} else {
			c.emit(End(TableRow{}), End(TableHead{}))
		}
	case *xast.TableRow:
		c.scope(TableRow{}, enter)
	case *xast.TableCell:
		c.scope(TableCell{}, enter)

	// inlines
	case *ast.Emphasis:
		if node.Level >= 2 {
			c.scope(Strong{}, enter)
		} else {
			c.scope(Emphasis{}, enter)
		}
	case *ast.Link:
		c.scope(Link{Destination: string(node.Destination), Title: string(node.Title)}, enter)
	case *ast.Image:
		c.scope(Image{Destination: string(node.Destination), Title: string(node.Title)}, enter)
	case *ast.AutoLink:
		if enter {
			link := Link{Destination: string(node.URL(c.source))}
			c.emit(Start(link), Text(string(node.Label(c.source))), End(link))
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		if enter {
			c.emit(Code(c.inlineText(node)))
		}
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		if enter {
			c.emit(HTML(c.lines(node.Segments)))
		}
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if !enter {
			break
		}
		if value := node.Segment.Value(c.source); len(value) != 0 {
			c.emit(Text(string(value)))
		}
		switch {
		case node.HardLineBreak():
			c.emit(HardBreak())
		case node.SoftLineBreak():
			c.emit(SoftBreak())
		}
	case *ast.String:
		if enter && len(node.Value) != 0 {
			c.emit(Text(string(node.Value)))
		}

	// extension inlines
	case *xast.Strikethrough:
		c.scope(Strikethrough{}, enter)
	case *xast.TaskCheckBox:
		if enter {
			c.emit(TaskMarker(node.IsChecked))
		}
	}

	return ast.WalkContinue, nil
}
