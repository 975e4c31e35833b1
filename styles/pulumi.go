package styles

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

var Pulumi = styles.Register(chroma.MustNewStyle("pulumi", chroma.StyleEntries{
	chroma.Background:        "bg:#121212",
	chroma.Text:              "#d7d7d7",
	chroma.Comment:           "#afafaf",
	chroma.Error:             "#d75f5f",
	chroma.GenericHeading:    "#d787af bold",
	chroma.GenericSubheading: "#d7afff bold",
	HeadingMinor:             "#af87af",
	Quote:                    "#afafaf italic",
	QuoteBorder:              "#5f5f87",
	Link:                     "#5fafd7 underline",
	InlineCode:               "#ffaf5f bg:#262626",
	CodeBlock:                "bg:#1c1c1c",
	CodeBorder:               "#5f5f87",
	CodeLanguage:             "#87ffaf",
	ListMarker:               "#5fafd7",
	Rule:                     "#444444",
	TableBorder:              "#5f5f87",
	RawHTML:                  "#00d7af",
	BreakMarker:              "#d75f5f",
}))
