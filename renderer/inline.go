package renderer

import (
	"bytes"
	"strings"

	"github.com/pgavlin/mdview/event"
	"github.com/pgavlin/mdview/styles"
)

// breakTag is the literal break marker protected by the placeholder protocol.
const breakTag = "<br>"

// Substitute replaces every literal "<br>" and "<BR>" in source with placeholder. Other spellings (mixed case,
// self-closing forms) are left alone. An empty placeholder leaves the source unchanged.
func Substitute(source []byte, placeholder string) []byte {
	if placeholder == "" {
		return source
	}
	p := []byte(placeholder)
	source = bytes.ReplaceAll(source, []byte("<br>"), p)
	return bytes.ReplaceAll(source, []byte("<BR>"), p)
}

// restore turns placeholders back into literal break markers. It is used for verbatim content such as code, where a
// break marker is ordinary text.
func (r *Renderer) restore(text string) string {
	if r.placeholder == "" {
		return text
	}
	return strings.ReplaceAll(text, r.placeholder, breakTag)
}

// literal handles a text event. Code block contents are emitted immediately; all other text is buffered so that runs
// split across several events are scanned for placeholders as a whole.
func (r *Renderer) literal(text string) {
	if r.inCode {
		r.codeText(text)
		return
	}
	r.text.WriteString(text)
}

// flushText segments the buffered text run around placeholders and appends the pieces to the pending line.
func (r *Renderer) flushText() {
	if r.text.Len() == 0 {
		return
	}
	text := r.text.String()
	r.text.Reset()

	style := r.styles.current()
	if r.table != nil && r.table.inHeader {
		style = style.Add(styles.Bold)
	}

	if r.heading != nil {
		if r.placeholder != "" {
			r.heading.text.WriteString(strings.ReplaceAll(text, r.placeholder, r.breakText()))
		} else {
			r.heading.text.WriteString(text)
		}
	}

	if r.placeholder == "" {
		r.appendSpan(text, style)
		return
	}
	for {
		i := strings.Index(text, r.placeholder)
		if i == -1 {
			break
		}
		r.appendSpan(text[:i], style)
		r.lineBreak()
		text = text[i+len(r.placeholder):]
	}
	r.appendSpan(text, style)
}

// breakText returns the text a break marker contributes to a heading's title.
func (r *Renderer) breakText() string {
	if r.breakMode == BreakLine {
		return " "
	}
	return breakTag
}

// lineBreak restores a protected break marker according to the break mode.
func (r *Renderer) lineBreak() {
	switch r.breakMode {
	case BreakLine:
		r.flushLine()
		r.continueTableRow()
	default:
		r.appendSpan(breakTag, r.accent(r.theme.BreakMarker))
	}
}

func (r *Renderer) inlineCode(code string) {
	code = r.restore(code)
	if r.heading != nil {
		r.heading.text.WriteString(code)
	}
	r.appendSpan(" "+code+" ", r.accent(r.theme.InlineCode))
}

// html appends raw HTML verbatim. Inline HTML becomes a single span, with embedded newlines shown as spaces. Inside an
// HTML block, each embedded newline ends the current line.
func (r *Renderer) html(text string) {
	text = r.restore(text)
	style := r.accent(r.theme.RawHTML)

	if r.styles.innermost() != event.KindHTMLBlock {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		r.appendSpan(strings.ReplaceAll(text, "\n", " "), style)
		return
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if i > 0 {
			r.flushLine()
		}
		r.appendSpan(strings.TrimSuffix(l, "\r"), style)
	}
}
