// ABOUTME: Render block and inline span types produced by the markdown renderer
// ABOUTME: Blocks are the structural units handed to the dashboard and JSON API

package markdown

// BlockKind identifies the structure of a Block
type BlockKind string

// Supported block kinds. Nothing else is recognized.
const (
	KindHeading1   BlockKind = "heading1"
	KindHeading2   BlockKind = "heading2"
	KindParagraph  BlockKind = "paragraph"
	KindBulletList BlockKind = "bullet_list"
)

// Span is a run of text inside a paragraph or list item
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// Block is one structural unit of rendered output.
//
// Headings carry Text only; bold markers in a heading are kept literally.
// Paragraphs carry Spans. Bullet lists carry one span sequence per item.
type Block struct {
	Kind  BlockKind `json:"type"`
	Text  string    `json:"text,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
	Items [][]Span  `json:"items,omitempty"`
}

// Heading1 builds a top-level heading block
func Heading1(text string) Block {
	return Block{Kind: KindHeading1, Text: text}
}

// Heading2 builds a second-level heading block
func Heading2(text string) Block {
	return Block{Kind: KindHeading2, Text: text}
}

// Paragraph builds a paragraph block
func Paragraph(spans ...Span) Block {
	return Block{Kind: KindParagraph, Spans: spans}
}

// BulletList builds a list block with one entry per item
func BulletList(items ...[]Span) Block {
	return Block{Kind: KindBulletList, Items: items}
}

// Plain builds an unemphasized span
func Plain(text string) Span {
	return Span{Text: text}
}

// Bold builds an emphasized span
func Bold(text string) Span {
	return Span{Text: text, Bold: true}
}
