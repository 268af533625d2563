package markdown

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Block
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []Block{},
		},
		{
			name:     "whitespace only",
			content:  "  \n\t\n   ",
			expected: []Block{},
		},
		{
			name:     "heading1",
			content:  "# Title",
			expected: []Block{Heading1("Title")},
		},
		{
			name:     "heading2",
			content:  "## Subtitle",
			expected: []Block{Heading2("Subtitle")},
		},
		{
			name:     "heading keeps bold markers literally",
			content:  "# **Executive** Brief",
			expected: []Block{Heading1("**Executive** Brief")},
		},
		{
			name:     "heading line is trimmed before classification",
			content:  "   # Indented  ",
			expected: []Block{Heading1("Indented")},
		},
		{
			name:     "hash without space is a paragraph",
			content:  "#Title",
			expected: []Block{Paragraph(Plain("#Title"))},
		},
		{
			name:     "third level heading is a paragraph",
			content:  "### Deep",
			expected: []Block{Paragraph(Plain("### Deep"))},
		},
		{
			name:    "consecutive list items form one list",
			content: "* a\n* b",
			expected: []Block{
				BulletList([]Span{Plain("a")}, []Span{Plain("b")}),
			},
		},
		{
			name:    "dash and star markers mix",
			content: "- a\n* b\n-   c",
			expected: []Block{
				BulletList([]Span{Plain("a")}, []Span{Plain("b")}, []Span{Plain("c")}),
			},
		},
		{
			name:    "list item bold parsing",
			content: "* **Fund:** Rs 10bn",
			expected: []Block{
				BulletList([]Span{Plain(""), Bold("Fund:"), Plain(" Rs 10bn")}),
			},
		},
		{
			name:    "paragraph bold parsing",
			content: "plain **bold** text",
			expected: []Block{
				Paragraph(Plain("plain "), Bold("bold"), Plain(" text")),
			},
		},
		{
			name:    "blank line inside list does not flush",
			content: "* a\n\n\n* b",
			expected: []Block{
				BulletList([]Span{Plain("a")}, []Span{Plain("b")}),
			},
		},
		{
			name:    "paragraph after blank line flushes list",
			content: "* item\n\nnext para",
			expected: []Block{
				BulletList([]Span{Plain("item")}),
				Paragraph(Plain("next para")),
			},
		},
		{
			name:    "heading flushes list",
			content: "* a\n# Next",
			expected: []Block{
				BulletList([]Span{Plain("a")}),
				Heading1("Next"),
			},
		},
		{
			name:    "heading2 flushes list",
			content: "- a\n## Next",
			expected: []Block{
				BulletList([]Span{Plain("a")}),
				Heading2("Next"),
			},
		},
		{
			name:    "list at end of input is flushed",
			content: "intro\n* a\n* b\n",
			expected: []Block{
				Paragraph(Plain("intro")),
				BulletList([]Span{Plain("a")}, []Span{Plain("b")}),
			},
		},
		{
			name:    "windows line endings",
			content: "# Title\r\nbody\r\n",
			expected: []Block{
				Heading1("Title"),
				Paragraph(Plain("body")),
			},
		},
		{
			name:     "bare marker is a paragraph",
			content:  "*   ",
			expected: []Block{Paragraph(Plain("*"))},
		},
		{
			name:    "ordered list is not recognized",
			content: "1. first",
			expected: []Block{
				Paragraph(Plain("1. first")),
			},
		},
		{
			name:    "links stay literal",
			content: "see [site](https://example.gov.pk)",
			expected: []Block{
				Paragraph(Plain("see [site](https://example.gov.pk)")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.content)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRender_EmptyIsNonNil(t *testing.T) {
	got := Render("")

	require.NotNil(t, got)
	assert.Empty(t, got)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRender_ReportTemplate(t *testing.T) {
	report := strings.Join([]string{
		"# 🚨 Executive Brief",
		"The federal cabinet approved the **National AI Policy**.",
		"",
		"# 🏛️ Key Government Initiatives",
		"* **Digital Pakistan:** broadband expansion",
		"* Skills programme for 1m youth",
		"",
		"## Provincial",
		"- Punjab IT parks",
	}, "\n")

	got := Render(report)

	require.Len(t, got, 6)
	assert.Equal(t, Heading1("🚨 Executive Brief"), got[0])
	assert.Equal(t, Paragraph(Plain("The federal cabinet approved the "), Bold("National AI Policy"), Plain(".")), got[1])
	assert.Equal(t, Heading1("🏛️ Key Government Initiatives"), got[2])
	assert.Equal(t, KindBulletList, got[3].Kind)
	assert.Len(t, got[3].Items, 2)
	assert.Equal(t, Heading2("Provincial"), got[4])
	assert.Equal(t, BulletList([]Span{Plain("Punjab IT parks")}), got[5])
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Span
	}{
		{
			name:     "no markers",
			text:     "plain",
			expected: []Span{Plain("plain")},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []Span{Plain("")},
		},
		{
			name:     "whole text bold keeps empty neighbours",
			text:     "**all**",
			expected: []Span{Plain(""), Bold("all"), Plain("")},
		},
		{
			name:     "two bold runs",
			text:     "**a** and **b**",
			expected: []Span{Plain(""), Bold("a"), Plain(" and "), Bold("b"), Plain("")},
		},
		{
			name:     "odd marker count leaves trailing asterisks",
			text:     "a **b** c **d",
			expected: []Span{Plain("a "), Bold("b"), Plain(" c **d")},
		},
		{
			name:     "single unmatched marker",
			text:     "rate **rising",
			expected: []Span{Plain("rate **rising")},
		},
		{
			name:     "lone delimiter is not bold",
			text:     "**",
			expected: []Span{Plain("**")},
		},
		{
			name:     "empty bold run",
			text:     "x****y",
			expected: []Span{Plain("x"), Bold(""), Plain("y")},
		},
		{
			name:     "shortest match wins",
			text:     "**a**b**",
			expected: []Span{Plain(""), Bold("a"), Plain("b**")},
		},
		{
			name:     "single asterisks are literal",
			text:     "*em* text",
			expected: []Span{Plain("*em* text")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInline(tt.text))
		})
	}
}

func TestBlockJSON(t *testing.T) {
	blocks := []Block{
		Heading1("Title"),
		Paragraph(Plain("a "), Bold("b")),
		BulletList([]Span{Plain("x")}),
	}

	data, err := json.Marshal(blocks)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"type":"heading1","text":"Title"},
		{"type":"paragraph","spans":[{"text":"a ","bold":false},{"text":"b","bold":true}]},
		{"type":"bullet_list","items":[[{"text":"x","bold":false}]]}
	]`, string(data))
}
