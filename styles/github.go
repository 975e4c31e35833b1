package styles

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

var GitHubDark = styles.Register(chroma.MustNewStyle("github-dark", chroma.StyleEntries{
	chroma.Background:        "bg:#0d1117",
	chroma.Text:              "#c9d1d9",
	chroma.Comment:           "#8b949e",
	chroma.Error:             "#f85149",
	chroma.GenericHeading:    "#58a6ff bold",
	chroma.GenericSubheading: "#79c0ff bold",
	HeadingMinor:             "#d2a8ff",
	Quote:                    "#8b949e italic",
	QuoteBorder:              "#30363d",
	Link:                     "#58a6ff underline",
	InlineCode:               "#c9d1d9 bg:#282d35",
	CodeBlock:                "bg:#161b22",
	CodeBorder:               "#8b949e",
	CodeLanguage:             "#e3b341",
	ListMarker:               "#8b949e",
	Rule:                     "#21262d",
	TableBorder:              "#8b949e",
	RawHTML:                  "#8b949e",
	BreakMarker:              "#f0883e",
}))
