package tview

import (
	"sync"

	"github.com/alecthomas/chroma"
	"github.com/gdamore/tcell/v2"
	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/indexer"
	"github.com/pgavlin/mdview/styles"
	"github.com/pgavlin/mdview/viewer"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

func cellColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

// cellStyle converts a document style into a tcell style. Unset colors keep the colors of default_.
func cellStyle(default_ tcell.Style, s styles.Style) tcell.Style {
	style := default_
	if s.Foreground.IsSet() {
		style = style.Foreground(cellColor(s.Foreground))
	}
	if s.Background.IsSet() {
		style = style.Background(cellColor(s.Background))
	}
	return style.
		Bold(s.Has(styles.Bold)).
		Italic(s.Has(styles.Italic)).
		Underline(s.Has(styles.Underline)).
		StrikeThrough(s.Has(styles.Strikethrough)).
		Dim(s.Has(styles.Dim))
}

type grapheme struct {
	runes []rune
	width int
	style tcell.Style
}

func stringGraphemes(s string, style tcell.Style) []grapheme {
	var graphemes []grapheme

	it := uniseg.NewGraphemes(s)
	for it.Next() {
		graphemes = append(graphemes, grapheme{
			runes: it.Runes(),
			width: it.Width(),
			style: style,
		})
	}
	return graphemes
}

// lineGraphemes splits a document line into styled graphemes.
func lineGraphemes(default_ tcell.Style, l document.Line) []grapheme {
	var graphemes []grapheme
	for _, span := range l {
		graphemes = append(graphemes, stringGraphemes(span.Text, cellStyle(default_, span.Style))...)
	}
	return graphemes
}

// DocumentView is a scrolling view of a rendered document with an optional footer.
type DocumentView struct {
	sync.Mutex
	*tview.Box

	// The colorscheme.
	theme *styles.Theme

	// The document and its section index.
	document *document.Document
	index    *indexer.DocumentIndex

	// The document's lines, split into graphemes. This is nil if the document has changed and needs to be
	// re-indexed.
	lines [][]grapheme

	// The width in cells of the longest line.
	longestLine int

	// The text shown in the bottommost line, if any.
	footer string

	// The index of the first line shown in the view.
	scroll viewer.Scroll

	// The number of cells to be skipped on each line.
	columnOffset int

	// The height of the content the last time the view was drawn.
	pageSize int
}

// NewDocumentView creates an empty view. A nil theme selects the default theme.
func NewDocumentView(theme *styles.Theme) *DocumentView {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	box := tview.NewBox()
	if theme.Text.Background.IsSet() {
		box.SetBackgroundColor(cellColor(theme.Text.Background))
	}
	return &DocumentView{Box: box, theme: theme}
}

// SetDocument replaces the view's document and scrolls to the top. The index may be nil, in which case one is built.
func (v *DocumentView) SetDocument(doc *document.Document, index *indexer.DocumentIndex) *DocumentView {
	v.Lock()
	defer v.Unlock()

	if index == nil {
		index = indexer.Index(doc)
	}
	v.document, v.index, v.lines = doc, index, nil
	v.scroll.Top()
	v.columnOffset = 0
	return v
}

// Document returns the view's document.
func (v *DocumentView) Document() *document.Document {
	return v.document
}

// SetFooter sets the text shown, right-aligned, in the view's bottommost line. An empty footer gives the line back to
// the document.
func (v *DocumentView) SetFooter(footer string) *DocumentView {
	v.Lock()
	defer v.Unlock()

	v.footer = footer
	return v
}

// Footer returns the view's footer.
func (v *DocumentView) Footer() string {
	return v.footer
}

// Offset returns the index of the first visible line.
func (v *DocumentView) Offset() int {
	return v.scroll.Offset
}

// ScrollTo scrolls so that line is the first visible line, as far as the document allows.
func (v *DocumentView) ScrollTo(line int) {
	v.scroll.To(line, v.document.Height(), v.pageSize)
}

func (v *DocumentView) defaultStyle() tcell.Style {
	return cellStyle(tcell.StyleDefault, v.theme.Text)
}

func (v *DocumentView) reindex() {
	if v.lines != nil || v.document == nil {
		return
	}

	defaultStyle := v.defaultStyle()
	v.lines, v.longestLine = make([][]grapheme, len(v.document.Lines)), 0
	for i, l := range v.document.Lines {
		v.lines[i] = lineGraphemes(defaultStyle, l)

		width := 0
		for _, g := range v.lines[i] {
			width += g.width
		}
		if width > v.longestLine {
			v.longestLine = width
		}
	}
}

// Draw draws this primitive onto the screen.
func (v *DocumentView) Draw(screen tcell.Screen) {
	v.Lock()
	defer v.Unlock()
	v.Box.DrawForSubclass(screen, v)

	// Get the available size.
	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	textHeight := height
	if v.footer != "" {
		textHeight = height - 1
	}
	v.pageSize = textHeight

	v.reindex()

	// Adjust offsets.
	v.scroll.Clamp(len(v.lines), textHeight)
	if v.columnOffset+width > v.longestLine {
		v.columnOffset = v.longestLine - width
	}
	if v.columnOffset < 0 {
		v.columnOffset = 0
	}

	defaultStyle := v.defaultStyle()
	for row := 0; row < textHeight; row++ {
		var graphemes []grapheme
		if i := v.scroll.Offset + row; i < len(v.lines) {
			graphemes = v.lines[i]
		}
		for skipped := 0; skipped < v.columnOffset && len(graphemes) > 0; graphemes = graphemes[1:] {
			skipped += graphemes[0].width
		}

		col := 0
		for _, g := range graphemes {
			if col+g.width > width {
				break
			}
			screen.SetContent(x+col, y+row, g.runes[0], g.runes[1:], g.style)
			col += g.width
		}
		for ; col < width; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, defaultStyle)
		}
	}

	// Draw the footer if necessary.
	if v.footer != "" {
		style := cellStyle(defaultStyle, v.theme.Muted)

		footer := stringGraphemes(v.footer, style)
		footerWidth := 0
		for _, g := range footer {
			footerWidth += g.width
		}
		if footerWidth > width {
			// Drop leading graphemes so that the end of the footer remains visible.
			for footerWidth > width-3 && len(footer) > 0 {
				footerWidth -= footer[0].width
				footer = footer[1:]
			}
			footer = append(stringGraphemes("...", style), footer...)
			footerWidth += 3
		}

		col, cy := 0, y+height-1
		for ; col < width-footerWidth; col++ {
			screen.SetContent(x+col, cy, ' ', nil, style)
		}
		for _, g := range footer {
			if col+g.width > width {
				break
			}
			screen.SetContent(x+col, cy, g.runes[0], g.runes[1:], style)
			col += g.width
		}
	}
}

func (v *DocumentView) nextHeading() {
	if v.index == nil {
		return
	}
	if s, ok := v.index.Next(v.scroll.Offset); ok {
		v.ScrollTo(s.Start)
	}
}

func (v *DocumentView) previousHeading() {
	if v.index == nil {
		return
	}
	if s, ok := v.index.Previous(v.scroll.Offset); ok {
		v.ScrollTo(s.Start)
	}
}

// InputHandler returns the handler for this primitive.
func (v *DocumentView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		height := v.document.Height()

		switch event.Key() {
		case tcell.KeyRune:
			switch event.Rune() {
			case 'g': // Home.
				v.scroll.Top()
				v.columnOffset = 0
			case 'G': // End.
				v.scroll.Bottom(height, v.pageSize)
				v.columnOffset = 0
			case 'j': // Down.
				v.scroll.Down(1, height, v.pageSize)
			case 'k': // Up.
				v.scroll.Up(1)
			case 'h': // Left.
				v.columnOffset--
			case 'l': // Right.
				v.columnOffset++
			case ' ': // Page down.
				v.scroll.Down(v.pageSize, height, v.pageSize)
			case '{': // Previous heading.
				v.previousHeading()
			case '}': // Next heading.
				v.nextHeading()
			}
		case tcell.KeyHome:
			v.scroll.Top()
			v.columnOffset = 0
		case tcell.KeyEnd:
			v.scroll.Bottom(height, v.pageSize)
			v.columnOffset = 0
		case tcell.KeyUp:
			v.scroll.Up(1)
		case tcell.KeyDown:
			v.scroll.Down(1, height, v.pageSize)
		case tcell.KeyLeft:
			v.columnOffset--
		case tcell.KeyRight:
			v.columnOffset++
		case tcell.KeyPgDn, tcell.KeyCtrlF:
			v.scroll.Down(v.pageSize, height, v.pageSize)
		case tcell.KeyPgUp, tcell.KeyCtrlB:
			v.scroll.Up(v.pageSize)
		}
		if v.columnOffset < 0 {
			v.columnOffset = 0
		}
	})
}

// Focus is called when this primitive receives focus.
func (v *DocumentView) Focus(delegate func(p tview.Primitive)) {
	// Implemented here with locking because this is used by layout primitives.
	v.Lock()
	defer v.Unlock()

	v.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive has focus.
func (v *DocumentView) HasFocus() bool {
	// Implemented here with locking because this may be used in the "changed"
	// callback.
	v.Lock()
	defer v.Unlock()

	return v.Box.HasFocus()
}
