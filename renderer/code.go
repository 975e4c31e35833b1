package renderer

import (
	"strings"

	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/event"
)

const (
	codeHeader = "┌─── "
	codeBorder = "│ "
)

var codeFooter = "└" + strings.Repeat("─", 18)

func (r *Renderer) openCodeBlock(tag event.CodeBlock) {
	r.flushLine()
	r.blankLine()

	border := r.accent(r.theme.CodeBorder)
	header := document.Line{{Text: codeHeader, Style: border}}
	if tag.Language != "" {
		header = append(header, document.Span{Text: tag.Language, Style: r.accent(r.theme.CodeLanguage)})
	}
	r.appendLine(header...)

	r.inCode = true
}

func (r *Renderer) closeCodeBlock() {
	r.inCode = false
	r.appendLine(document.Span{Text: codeFooter, Style: r.accent(r.theme.CodeBorder)})
	r.blankLine()
}

// splitLines splits text into lines. A trailing newline does not produce an empty final line, and carriage returns
// preceding a newline are dropped.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// codeText emits each line of a code block's contents as a complete, bordered line. The text is reproduced verbatim.
func (r *Renderer) codeText(text string) {
	r.flushLine()

	border, style := r.accent(r.theme.CodeBorder), r.styles.current()
	for _, line := range splitLines(r.restore(text)) {
		spans := []document.Span{{Text: codeBorder, Style: border}}
		if line != "" {
			spans = append(spans, document.Span{Text: line, Style: style})
		}
		r.appendLine(spans...)
	}
}
