// ABOUTME: Line-oriented renderer for the small markdown subset used in reports
// ABOUTME: Converts report text into headings, paragraphs, bullet lists and bold spans

// Package markdown turns model-generated report text into render blocks.
//
// Only four constructs are recognized, one line at a time:
//
//	# Heading       -> Heading1 (text kept verbatim)
//	## Heading      -> Heading2 (text kept verbatim)
//	* item / - item -> item of the pending BulletList
//	anything else   -> Paragraph
//
// Paragraphs and list items are split into plain and bold spans on
// **double-asterisk** runs. Links, code, tables, ordered or nested lists,
// quotes and emphasis spanning lines are rendered as plain text.
package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	heading1Marker = "# "
	heading2Marker = "## "
	boldDelimiter  = "**"
)

// boldPattern matches the shortest **...** run that stays on one line.
var boldPattern = regexp.MustCompile(`\*\*[^\n\r\x{2028}\x{2029}]*?\*\*`)

// Render converts content into blocks. It never fails; empty content yields
// an empty, non-nil slice.
func Render(content string) []Block {
	blocks := make([]Block, 0)
	if content == "" {
		return blocks
	}

	var list [][]Span
	flush := func() {
		if len(list) > 0 {
			blocks = append(blocks, BulletList(list...))
			list = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimFunc(line, isSpace)

		switch {
		case strings.HasPrefix(trimmed, heading1Marker):
			flush()
			blocks = append(blocks, Heading1(trimmed[len(heading1Marker):]))
		case strings.HasPrefix(trimmed, heading2Marker):
			flush()
			blocks = append(blocks, Heading2(trimmed[len(heading2Marker):]))
		case isListItem(trimmed):
			list = append(list, ParseInline(stripListMarker(trimmed)))
		case trimmed != "":
			flush()
			blocks = append(blocks, Paragraph(ParseInline(trimmed)...))
		default:
			// Blank lines never end a pending list on their own.
		}
	}
	flush()

	return blocks
}

// ParseInline splits text into plain and bold spans. Every fragment between
// bold runs is kept, including empty ones, so the output alternates
// plain/bold/plain whenever a bold run is present. An unmatched trailing
// "**" stays in the plain text.
func ParseInline(text string) []Span {
	matches := boldPattern.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		spans = append(spans, classify(text[last:m[0]]), classify(text[m[0]:m[1]]))
		last = m[1]
	}
	return append(spans, classify(text[last:]))
}

func classify(fragment string) Span {
	if len(fragment) >= 2*len(boldDelimiter) &&
		strings.HasPrefix(fragment, boldDelimiter) &&
		strings.HasSuffix(fragment, boldDelimiter) {
		return Bold(fragment[len(boldDelimiter) : len(fragment)-len(boldDelimiter)])
	}
	return Plain(fragment)
}

func isListItem(trimmed string) bool {
	return strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ")
}

// stripListMarker drops the bullet and all whitespace after it.
func stripListMarker(trimmed string) string {
	return strings.TrimLeftFunc(trimmed[1:], isSpace)
}

// isSpace also treats the byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
