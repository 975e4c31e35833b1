package styles

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

// Token types for document elements that have no natural counterpart among chroma's standard types. Each type sits
// in its own category so that chroma's category fallback never bleeds attributes from one element into another.
const (
	HeadingMinor chroma.TokenType = 11000 + iota*1000
	Quote
	QuoteBorder
	Link
	InlineCode
	CodeBlock
	CodeBorder
	CodeLanguage
	ListMarker
	Rule
	TableBorder
	RawHTML
	BreakMarker
)

// A Theme holds the resolved styles used when rendering a document.
type Theme struct {
	Name string

	// Text is the document default: every wholly-new scope starts from here.
	Text Style
	// Headings holds the styles for level 1, level 2, and level 3+ headings.
	Headings [3]Style

	Quote        Style
	QuoteBorder  Style
	Link         Style
	InlineCode   Style
	CodeBlock    Style
	CodeBorder   Style
	CodeLanguage Style
	ListMarker   Style
	Rule         Style
	TableBorder  Style
	RawHTML      Style
	BreakMarker  Style
	// Muted is used by surfaces for secondary text such as footers.
	Muted Style
	// Error is used by surfaces for error messages.
	Error Style
}

// accent returns only the foreground and modifiers of the given token's style. chroma resolves every entry against
// the Background and Text entries, so the inherited colors are dropped here to keep accents composable.
func accent(style *chroma.Style, token chroma.TokenType) Style {
	s := FromEntry(style.Get(token))
	s.Background = 0
	return s
}

// NewTheme resolves a chroma style into a Theme.
func NewTheme(style *chroma.Style) *Theme {
	if style == nil {
		style = GitHubDark
	}

	text := style.Get(chroma.Text)
	background := style.Get(chroma.Background)

	return &Theme{
		Name: style.Name,
		Text: Style{Foreground: text.Colour, Background: background.Background},
		Headings: [3]Style{
			accent(style, chroma.GenericHeading),
			accent(style, chroma.GenericSubheading),
			accent(style, HeadingMinor),
		},
		Quote:        accent(style, Quote),
		QuoteBorder:  accent(style, QuoteBorder),
		Link:         accent(style, Link),
		InlineCode:   FromEntry(style.Get(InlineCode)),
		CodeBlock:    Style{Background: style.Get(CodeBlock).Background},
		CodeBorder:   accent(style, CodeBorder),
		CodeLanguage: accent(style, CodeLanguage),
		ListMarker:   accent(style, ListMarker),
		Rule:         accent(style, Rule),
		TableBorder:  accent(style, TableBorder),
		RawHTML:      accent(style, RawHTML),
		BreakMarker:  accent(style, BreakMarker),
		Muted:        accent(style, chroma.Comment),
		Error:        accent(style, chroma.Error),
	}
}

// Lookup returns the registered theme with the given name. The second result is false if no such theme is
// registered.
func Lookup(name string) (*Theme, bool) {
	style, ok := styles.Registry[name]
	if !ok {
		return nil, false
	}
	return NewTheme(style), true
}

// Names returns the names of the themes that define document styles.
func Names() []string {
	return []string{GitHubDark.Name, Pulumi.Name}
}
