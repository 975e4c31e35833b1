package renderer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/event"
)

type tableBorders []rune

func (b tableBorders) topLeft() rune {
	return b[0]
}

func (b tableBorders) topJoin() rune {
	return b[1]
}

func (b tableBorders) topRight() rune {
	return b[2]
}

func (b tableBorders) middleLeft() rune {
	return b[3]
}

func (b tableBorders) middleJoin() rune {
	return b[4]
}

func (b tableBorders) middleRight() rune {
	return b[5]
}

func (b tableBorders) bottomLeft() rune {
	return b[6]
}

func (b tableBorders) bottomJoin() rune {
	return b[7]
}

func (b tableBorders) bottomRight() rune {
	return b[8]
}

func (b tableBorders) vertical() string {
	return string(b[9:10])
}

func (b tableBorders) horizontal() string {
	return string(b[10:11])
}

var borders = tableBorders("╭┬╮├┼┤╰┴╯│─")

type tableState struct {
	alignments []event.Alignment
	inHeader   bool

	// The index in the pending line of the current cell's first span.
	cellStart int
	// The index of the current cell within its row.
	column int
}

// separator returns the header separator segment for a column of the given alignment.
func (r *Renderer) separator(align event.Alignment) string {
	h, w := borders.horizontal(), r.columnWidth
	switch align {
	case event.AlignLeft:
		return ":" + strings.Repeat(h, w-1)
	case event.AlignCenter:
		return ":" + strings.Repeat(h, w-2) + ":"
	case event.AlignRight:
		return strings.Repeat(h, w-1) + ":"
	default:
		return strings.Repeat(h, w)
	}
}

func (r *Renderer) renderTableBorder(left, join, right rune, segment func(col int) string) {
	var b strings.Builder
	b.WriteRune(left)
	for i := range r.table.alignments {
		if i > 0 {
			b.WriteRune(join)
		}
		b.WriteString(segment(i))
	}
	b.WriteRune(right)

	r.appendLine(document.Span{Text: b.String(), Style: r.accent(r.theme.TableBorder)})
}

func (r *Renderer) plainSegment(int) string {
	return strings.Repeat(borders.horizontal(), r.columnWidth)
}

func (r *Renderer) openTable(tag event.Table) {
	r.flushLine()

	// A table is structured like so:
	// Table/
	//   TableHead/
	//     TableRow/
	//       TableCell
	//       ...
	//   TableRow/
	//     TableCell
	//     ...
	//   ...
	r.table = &tableState{alignments: append([]event.Alignment(nil), tag.Alignments...)}
	r.renderTableBorder(borders.topLeft(), borders.topJoin(), borders.topRight(), r.plainSegment)
}

func (r *Renderer) closeTable() {
	r.flushLine()
	if r.table != nil {
		r.renderTableBorder(borders.bottomLeft(), borders.bottomJoin(), borders.bottomRight(), r.plainSegment)
		r.table = nil
	}
	r.blankLine()
}

func (r *Renderer) openTableHead() {
	if r.table != nil {
		r.table.inHeader = true
	}
}

func (r *Renderer) closeTableHead() {
	r.flushLine()
	if r.table == nil {
		return
	}
	r.table.inHeader = false

	alignments := r.table.alignments
	r.renderTableBorder(borders.middleLeft(), borders.middleJoin(), borders.middleRight(), func(col int) string {
		return r.separator(alignments[col])
	})
}

func (r *Renderer) openTableRow() {
	r.flushLine()
	if r.table != nil {
		r.table.column = 0
	}
	r.appendSpan(borders.vertical()+" ", r.accent(r.theme.TableBorder))
}

// continueTableRow starts a continuation line for the current row after a line break inside a cell. The cells to the
// left of the current cell are left blank.
func (r *Renderer) continueTableRow() {
	if r.table == nil {
		return
	}
	border := r.accent(r.theme.TableBorder)
	r.appendSpan(borders.vertical()+" ", border)
	for i := 0; i < r.table.column; i++ {
		r.appendSpan(strings.Repeat(" ", r.columnWidth-2), r.styles.base())
		r.appendSpan(" "+borders.vertical()+" ", border)
	}
	r.table.cellStart = len(r.pending)
}

func (r *Renderer) openTableCell() {
	if r.table != nil {
		r.table.cellStart = len(r.pending)
	}
}

func (r *Renderer) closeTableCell() {
	if r.table != nil {
		start := r.table.cellStart
		if start > len(r.pending) {
			start = len(r.pending)
		}
		limit := r.columnWidth - 2
		if cell := r.pending[start:]; cell.Width() > limit {
			r.pending = append(r.pending[:start], truncateSpans(cell, limit)...)
		}
		if pad := limit - r.pending[start:].Width(); pad > 0 {
			r.appendSpan(strings.Repeat(" ", pad), r.styles.current())
		}
		r.table.column++
	}
	r.appendSpan(" "+borders.vertical()+" ", r.accent(r.theme.TableBorder))
}

// truncateSpans clips a run of spans to at most width cells.
func truncateSpans(spans document.Line, width int) document.Line {
	var result document.Line
	for _, s := range spans {
		w := s.Width()
		if w > width {
			if text := ansi.Truncate(s.Text, width, ""); text != "" {
				result = append(result, document.Span{Text: text, Style: s.Style})
			}
			break
		}
		result = append(result, s)
		width -= w
	}
	return result
}
