package styles

import "github.com/alecthomas/chroma"

// Modifier is a set of text attributes applied on top of a style's colors.
type Modifier uint8

const (
	Bold Modifier = 1 << iota
	Italic
	Underline
	Strikethrough
	Dim
)

// A Style is the fully resolved appearance of a run of text: a foreground color, a background color, and a set of
// modifiers. Unset colors mean "use the surface's default". Styles are values; every operation returns a new Style.
type Style struct {
	Foreground chroma.Colour
	Background chroma.Colour
	Modifiers  Modifier
}

// Add returns a copy of the style with the given modifiers added.
func (s Style) Add(m Modifier) Style {
	s.Modifiers |= m
	return s
}

// Has returns true if all of the given modifiers are present.
func (s Style) Has(m Modifier) bool {
	return s.Modifiers&m == m
}

// Merge returns a copy of the style overridden by o. Colors that are set in o replace those in s; modifiers are
// combined.
func (s Style) Merge(o Style) Style {
	if o.Foreground.IsSet() {
		s.Foreground = o.Foreground
	}
	if o.Background.IsSet() {
		s.Background = o.Background
	}
	s.Modifiers |= o.Modifiers
	return s
}

// WithForeground returns a copy of the style with its foreground replaced.
func (s Style) WithForeground(c chroma.Colour) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy of the style with its background replaced.
func (s Style) WithBackground(c chroma.Colour) Style {
	s.Background = c
	return s
}

// FromEntry converts a chroma style entry to a Style. Only attributes that are explicitly enabled become modifiers.
func FromEntry(entry chroma.StyleEntry) Style {
	s := Style{Foreground: entry.Colour, Background: entry.Background}
	if entry.Bold == chroma.Yes {
		s.Modifiers |= Bold
	}
	if entry.Italic == chroma.Yes {
		s.Modifiers |= Italic
	}
	if entry.Underline == chroma.Yes {
		s.Modifiers |= Underline
	}
	return s
}
