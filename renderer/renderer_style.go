package renderer

import (
	"github.com/pgavlin/mdview/event"
	"github.com/pgavlin/mdview/styles"
)

type styleScope struct {
	kind  event.TagKind
	style styles.Style
}

// styleStack tracks the active text style as scopes open and close. The first entry is the document default and is
// never removed.
type styleStack struct {
	scopes []styleScope
}

func newStyleStack(base styles.Style) styleStack {
	return styleStack{scopes: []styleScope{{kind: event.KindNone, style: base}}}
}

// base returns the document default style.
func (s *styleStack) base() styles.Style {
	if len(s.scopes) == 0 {
		return styles.Style{}
	}
	return s.scopes[0].style
}

// current returns the style for text in the innermost open scope.
func (s *styleStack) current() styles.Style {
	if len(s.scopes) == 0 {
		return styles.Style{}
	}
	return s.scopes[len(s.scopes)-1].style
}

func (s *styleStack) push(kind event.TagKind, style styles.Style) {
	s.scopes = append(s.scopes, styleScope{kind: kind, style: style})
}

// pop closes the innermost scope if it is of the given kind. It returns false, leaving the stack untouched, if only
// the baseline remains or the innermost scope is of a different kind.
func (s *styleStack) pop(kind event.TagKind) bool {
	if len(s.scopes) <= 1 || s.scopes[len(s.scopes)-1].kind != kind {
		return false
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return true
}

// innermost returns the kind of the innermost open scope, or KindNone at the baseline.
func (s *styleStack) innermost() event.TagKind {
	if len(s.scopes) == 0 {
		return event.KindNone
	}
	return s.scopes[len(s.scopes)-1].kind
}

// depth returns the number of open scopes, not counting the baseline.
func (s *styleStack) depth() int {
	if len(s.scopes) == 0 {
		return 0
	}
	return len(s.scopes) - 1
}

// scopeStyle computes the style for a newly opened scope. Headings, quotes, code blocks, links and images start over
// from the document default; everything else refines the current style.
func (r *Renderer) scopeStyle(tag event.Tag) styles.Style {
	base, current := r.styles.base(), r.styles.current()

	switch tag := tag.(type) {
	case event.Heading:
		level := tag.Level
		switch {
		case level < 1:
			level = 1
		case level > len(r.theme.Headings):
			level = len(r.theme.Headings)
		}
		style := base.Merge(r.theme.Headings[level-1]).Add(styles.Bold)
		if tag.Level >= 3 {
			style = style.Add(styles.Dim)
		}
		return style
	case event.BlockQuote:
		return base.Merge(r.theme.Quote).Add(styles.Italic)
	case event.CodeBlock:
		if !r.theme.CodeBlock.Background.IsSet() {
			return base
		}
		return base.WithBackground(r.theme.CodeBlock.Background)
	case event.Link, event.Image:
		return base.Merge(r.theme.Link).Add(styles.Underline)
	case event.Emphasis:
		return current.Add(styles.Italic)
	case event.Strong:
		return current.Add(styles.Bold)
	case event.Strikethrough:
		return current.Add(styles.Strikethrough)
	default:
		return current
	}
}
