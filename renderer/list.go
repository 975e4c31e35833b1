package renderer

import (
	"strconv"
	"strings"

	"github.com/pgavlin/mdview/event"
)

const bullet = "• "

type listState struct {
	ordered bool
	// The number of the next item marker of an ordered list.
	index int
}

func (r *Renderer) openList(tag event.List) {
	r.flushLine()
	r.lists = append(r.lists, listState{ordered: tag.Ordered, index: tag.Start})
}

func (r *Renderer) closeList() {
	r.flushLine()
	if len(r.lists) != 0 {
		r.lists = r.lists[:len(r.lists)-1]
	}
	r.blankLine()
}

func (r *Renderer) openItem() {
	r.flushLine()

	depth := len(r.lists)
	if depth > 1 {
		r.appendSpan(strings.Repeat("  ", depth-1), r.styles.base())
	}

	marker := bullet
	if depth != 0 {
		if state := &r.lists[depth-1]; state.ordered {
			marker = strconv.Itoa(state.index) + ". "
			state.index++
		}
	}
	r.appendSpan(marker, r.accent(r.theme.ListMarker))
}

func (r *Renderer) taskMarker(checked bool) {
	marker := "[ ] "
	if checked {
		marker = "[x] "
	}
	r.appendSpan(marker, r.accent(r.theme.ListMarker))
}
