package renderer

import (
	"github.com/pgavlin/mdview/document"
	"github.com/pgavlin/mdview/event"
)

// RenderMarkdown renders Markdown source into a document. Literal break markers are protected from the tokenizer by
// substituting the renderer's placeholder before parsing. Each call uses a fresh Renderer, so RenderMarkdown is safe
// for concurrent use.
func RenderMarkdown(source []byte, options ...RendererOption) *document.Document {
	r := New(options...)
	events := event.Parse(Substitute(source, r.Placeholder()))
	return r.Render(events)
}
