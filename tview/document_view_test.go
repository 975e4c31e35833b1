package tview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/renderer"
	"github.com/pgavlin/mdview/styles"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var theme = styles.NewTheme(styles.GitHubDark)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func draw(screen tcell.SimulationScreen, p tview.Primitive) []string {
	width, height := screen.Size()
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
	screen.Show()

	cells, _, _ := screen.GetContents()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if runes := cells[y*width+x].Runes; len(runes) > 0 {
				b.WriteString(string(runes))
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return rows
}

func press(v *DocumentView, key tcell.Key, r rune) {
	v.InputHandler()(tcell.NewEventKey(key, r, tcell.ModNone), func(tview.Primitive) {})
}

func numbered(n int) *document.Document {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return document.FromText(b.String(), theme.Text)
}

func TestDocumentViewDraw(t *testing.T) {
	screen := newScreen(t, 20, 4)

	doc := renderer.RenderMarkdown([]byte("# Title\n\nHello **world**."), renderer.WithTheme(theme))
	v := NewDocumentView(theme).SetDocument(doc, nil).SetFooter("doc.md")

	rows := draw(screen, v)
	assert.Equal(t, []string{"", "Title", "", strings.Repeat(" ", 14) + "doc.md"}, rows)

	cells, width, _ := screen.GetContents()

	fg, bg, attrs := cells[width].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x58, 0xa6, 0xff), fg)
	assert.Equal(t, tcell.NewRGBColor(0x0d, 0x11, 0x17), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	fg, _, _ = cells[3*width+19].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x8b, 0x94, 0x9e), fg)

	// Blank cells take the document background.
	_, bg, _ = cells[10].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x0d, 0x11, 0x17), bg)
}

func TestDocumentViewStyledSpans(t *testing.T) {
	screen := newScreen(t, 20, 2)

	doc := renderer.RenderMarkdown([]byte("a **b** *c* ~~d~~"), renderer.WithTheme(theme))
	rows := draw(screen, NewDocumentView(theme).SetDocument(doc, nil))
	assert.Equal(t, "a b c d", rows[0])

	cells, _, _ := screen.GetContents()
	attrs := func(x int) tcell.AttrMask {
		_, _, a := cells[x].Style.Decompose()
		return a
	}
	assert.Zero(t, attrs(0)&tcell.AttrBold)
	assert.NotZero(t, attrs(2)&tcell.AttrBold)
	assert.NotZero(t, attrs(4)&tcell.AttrItalic)
	assert.NotZero(t, attrs(6)&tcell.AttrStrikeThrough)
}

func TestDocumentViewScroll(t *testing.T) {
	screen := newScreen(t, 10, 6)

	v := NewDocumentView(theme).SetDocument(numbered(30), nil).SetFooter("x")
	rows := draw(screen, v)
	assert.Equal(t, "line 0", rows[0])

	press(v, tcell.KeyRune, 'j')
	press(v, tcell.KeyDown, 0)
	assert.Equal(t, 2, v.Offset())

	press(v, tcell.KeyRune, 'k')
	assert.Equal(t, 1, v.Offset())

	press(v, tcell.KeyRune, 'G')
	assert.Equal(t, 25, v.Offset())
	press(v, tcell.KeyRune, 'j')
	assert.Equal(t, 25, v.Offset())
	rows = draw(screen, v)
	assert.Equal(t, "line 25", rows[0])
	assert.Equal(t, "line 29", rows[4])

	press(v, tcell.KeyRune, 'g')
	assert.Equal(t, 0, v.Offset())
	press(v, tcell.KeyRune, 'k')
	assert.Equal(t, 0, v.Offset())

	press(v, tcell.KeyPgDn, 0)
	assert.Equal(t, 5, v.Offset())
	press(v, tcell.KeyPgUp, 0)
	assert.Equal(t, 0, v.Offset())

	v.ScrollTo(100)
	assert.Equal(t, 25, v.Offset())
}

func TestDocumentViewShortDocument(t *testing.T) {
	screen := newScreen(t, 10, 6)

	v := NewDocumentView(theme).SetDocument(numbered(2), nil)
	draw(screen, v)

	press(v, tcell.KeyRune, 'j')
	press(v, tcell.KeyRune, 'G')
	assert.Equal(t, 0, v.Offset())
}

func TestDocumentViewHeadings(t *testing.T) {
	screen := newScreen(t, 20, 5)

	var b strings.Builder
	for _, h := range []string{"one", "two", "three"} {
		fmt.Fprintf(&b, "# %s\n\n", h)
		for i := 0; i < 10; i++ {
			fmt.Fprintf(&b, "%s %d\n\n", h, i)
		}
	}
	doc := renderer.RenderMarkdown([]byte(b.String()), renderer.WithTheme(theme))
	require.Len(t, doc.Headings, 3)

	v := NewDocumentView(theme).SetDocument(doc, nil)
	draw(screen, v)

	press(v, tcell.KeyRune, '}')
	assert.Equal(t, doc.Headings[0].Line, v.Offset())
	press(v, tcell.KeyRune, '}')
	assert.Equal(t, doc.Headings[1].Line, v.Offset())
	assert.Equal(t, "two", draw(screen, v)[0])

	press(v, tcell.KeyRune, '{')
	assert.Equal(t, doc.Headings[0].Line, v.Offset())
}

func TestDocumentViewHorizontalScroll(t *testing.T) {
	screen := newScreen(t, 5, 2)

	v := NewDocumentView(theme).SetDocument(document.FromText("abcdefgh", theme.Text), nil)
	assert.Equal(t, "abcde", draw(screen, v)[0])

	press(v, tcell.KeyRune, 'l')
	press(v, tcell.KeyRight, 0)
	assert.Equal(t, "cdefg", draw(screen, v)[0])

	for i := 0; i < 10; i++ {
		press(v, tcell.KeyRune, 'l')
	}
	assert.Equal(t, "defgh", draw(screen, v)[0])

	press(v, tcell.KeyHome, 0)
	assert.Equal(t, "abcde", draw(screen, v)[0])
}

func TestDocumentViewHorizontalScrollWide(t *testing.T) {
	screen := newScreen(t, 5, 2)

	v := NewDocumentView(theme).SetDocument(document.FromText("日本語テキスト", theme.Text), nil)
	row := draw(screen, v)[0]
	assert.Contains(t, row, "日")
	assert.NotContains(t, row, "ト")

	for i := 0; i < 20; i++ {
		press(v, tcell.KeyRune, 'l')
	}
	row = draw(screen, v)[0]
	assert.Equal(t, 14-5, v.columnOffset)
	assert.Contains(t, row, "ト")
	assert.NotContains(t, row, "日")
}

func TestDocumentViewLongFooter(t *testing.T) {
	screen := newScreen(t, 10, 2)

	v := NewDocumentView(theme).SetDocument(numbered(1), nil).SetFooter("abcdefghijklmnop")
	assert.Equal(t, []string{"line 0", "...jklmnop"}, draw(screen, v))
}

func TestCellStyle(t *testing.T) {
	style := cellStyle(tcell.StyleDefault, styles.Style{}.Add(styles.Underline|styles.Dim))
	fg, bg, attrs := style.Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.ColorDefault, bg)
	assert.NotZero(t, attrs&tcell.AttrUnderline)
	assert.NotZero(t, attrs&tcell.AttrDim)
	assert.Zero(t, attrs&tcell.AttrBold)

	style = cellStyle(tcell.StyleDefault, theme.BreakMarker)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xf0, 0x88, 0x3e), fg)
}
