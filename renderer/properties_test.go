package renderer

import (
	"sync"
	"testing"

	"github.com/pgavlin/mdview/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"",
	"plain text",
	"# Title\n\nHello **world**.",
	"Setext\n======\n\ntext\n",
	"> quote\n>\n> > nested *quote*\n",
	"1. one\n2. two\n   - three\n     1. four\n",
	"- [ ] todo\n- [x] done\n",
	"| A | B |\n|:-|-:|\n| 1 | 2<br>3 |\n| 4 |\n",
	"```\nraw <br> **text**\n```\n",
	"    indented\n",
	"<details>\n<summary>x</summary>\n</details>\n",
	"a  \nb\\\nc\n",
	"***\n\n[link](http://example.com \"title\") ![img](a.png) <http://example.com>",
	"~~gone~~ `code <br>` <span>x</span>",
	"* a\n\n  b\n\n* c\n",
	"Multi\nline\n=====\n",
	"# a<br>b\n",
	"text <span\nclass=\"x\">y</span>\n",
	"| 日本語テキスト長い | b |\n|---|---|\n| c | d |\n",
}

func TestBalanced(t *testing.T) {
	for _, input := range corpus {
		r := New()
		r.Render(event.Parse(Substitute([]byte(input), r.Placeholder())))
		assert.True(t, r.Balanced(), "unbalanced after %q", input)
	}
}

func TestIdempotent(t *testing.T) {
	for _, input := range corpus {
		first := RenderMarkdown([]byte(input))
		second := RenderMarkdown([]byte(input))
		assert.Equal(t, first, second, "rendering %q", input)
	}
}

func TestRendererReuse(t *testing.T) {
	r := New()
	events := event.Parse(Substitute([]byte(corpus[2]), r.Placeholder()))

	first := r.Render(events)
	r.Render(event.Parse([]byte(corpus[4])))
	second := r.Render(events)
	assert.Equal(t, first, second)
}

func TestConcurrentRender(t *testing.T) {
	expected := make([]interface{}, len(corpus))
	for i, input := range corpus {
		expected[i] = RenderMarkdown([]byte(input))
	}

	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range corpus {
				assert.Equal(t, expected[i], RenderMarkdown([]byte(input)))
			}
		}()
	}
	wg.Wait()
}

func TestNoEmptySpans(t *testing.T) {
	for _, input := range corpus {
		doc := RenderMarkdown([]byte(input))
		for _, line := range doc.Lines {
			for _, span := range line {
				assert.NotEmpty(t, span.Text, "empty span rendering %q", input)
			}
		}
	}
}

func TestHeadingLines(t *testing.T) {
	for _, input := range corpus {
		doc := RenderMarkdown([]byte(input))
		for _, h := range doc.Headings {
			require.Less(t, h.Line, len(doc.Lines))
			assert.Equal(t, h.Text, doc.Lines[h.Line].String())
		}
	}
}

func TestDefaults(t *testing.T) {
	r := New(WithRuleWidth(-1), WithColumnWidth(2), WithTheme(nil))
	assert.Equal(t, DefaultPlaceholder, r.Placeholder())
	assert.Equal(t, DefaultRuleWidth, r.ruleWidth)
	assert.Equal(t, DefaultColumnWidth, r.columnWidth)
	assert.Equal(t, BreakMarker, r.breakMode)
	require.NotNil(t, r.theme)
	assert.Equal(t, "github-dark", r.theme.Name)
}

func TestParseBreakMode(t *testing.T) {
	cases := []struct {
		in   string
		mode BreakMode
		ok   bool
	}{
		{"", BreakMarker, true},
		{"marker", BreakMarker, true},
		{"LINE", BreakLine, true},
		{"newline", BreakMarker, false},
	}
	for _, c := range cases {
		mode, ok := ParseBreakMode(c.in)
		assert.Equal(t, c.mode, mode, c.in)
		assert.Equal(t, c.ok, ok, c.in)
	}
	assert.Equal(t, "line", BreakLine.String())
	assert.Equal(t, "marker", BreakMarker.String())
}
