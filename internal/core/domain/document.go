package domain

import "strings"

// BlockKind identifies the variant of a Block node.
type BlockKind string

// Block kinds. A document is an ordered sequence of blocks; the tree is
// immutable once produced by the parser.
const (
	// KindParagraph is a run of inline text.
	KindParagraph BlockKind = "paragraph"

	// KindHeading is an ATX-style heading with a level of 1 to 4.
	KindHeading BlockKind = "heading"

	// KindCodeBlock is a fenced code block. Its text is preserved
	// verbatim, including internal newlines and indentation.
	KindCodeBlock BlockKind = "codeBlock"

	// KindBulletList is an unordered list of items.
	KindBulletList BlockKind = "bulletList"

	// KindOrderedList is a numbered list of items.
	KindOrderedList BlockKind = "orderedList"

	// KindImageFigure is a self-closing image embed with a caption.
	KindImageFigure BlockKind = "imageFigure"

	// KindVideoEmbed is a self-closing video embed.
	KindVideoEmbed BlockKind = "videoEmbed"
)

// Mark is a formatting annotation attached to a text run.
type Mark string

// Inline marks. In the markup format a token is wrapped by exactly one
// delimiter style, so a parsed Inline carries at most one mark.
const (
	MarkBold   Mark = "bold"
	MarkItalic Mark = "italic"
	MarkCode   Mark = "code"
)

// Inline is a run of text within a block.
type Inline struct {
	// Text is the literal text content.
	Text string `json:"text"`

	// Marks are the formatting annotations on this run.
	Marks []Mark `json:"marks,omitempty"`
}

// Mark returns the first mark on the run, or "" for plain text.
func (i Inline) Mark() Mark {
	if len(i.Marks) > 0 {
		return i.Marks[0]
	}
	return ""
}

// Block is one node of the document tree. Kind selects the variant;
// only the fields belonging to that variant are populated.
type Block struct {
	// Kind selects the block variant.
	Kind BlockKind `json:"kind"`

	// Inline is the text content of paragraphs and headings.
	Inline []Inline `json:"inline,omitempty"`

	// Level is the heading level (1..4). Heading only.
	Level int `json:"level,omitempty"`

	// Language is the declared fence language, "" when absent. Code block only.
	Language string `json:"language,omitempty"`

	// Text is the verbatim fence content. Code block only.
	Text string `json:"text,omitempty"`

	// Items are the list entries. Bullet and ordered lists only.
	Items []ListItem `json:"items,omitempty"`

	// Image holds the validated attributes of an image figure.
	Image *ImageFigure `json:"image,omitempty"`

	// Video holds the validated attributes of a video embed.
	Video *VideoEmbed `json:"video,omitempty"`
}

// ListItem is a single entry of a list. Blocks always holds at least one
// child after parsing: the item's lead paragraph (an empty placeholder
// paragraph when the item has no text of its own) followed by any nested
// blocks attached under the item.
type ListItem struct {
	Blocks []Block `json:"blocks"`
}

// ImageFigure holds the validated attributes of an image embed.
// Src has already passed URL sanitisation; Width, when present, has been
// clamped into the configured range.
type ImageFigure struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Width   *int   `json:"width,omitempty"`
}

// VideoEmbed holds the validated attributes of a video embed.
type VideoEmbed struct {
	Src         string   `json:"src"`
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	AspectRatio *float64 `json:"aspectRatio,omitempty"`
}

// PlainText flattens a document tree into its visible text, block
// contents separated by newlines. Used to feed text-only consumers such
// as the tag suggestion service.
func PlainText(blocks []Block) string {
	var b strings.Builder
	appendPlainText(&b, blocks)
	return strings.TrimSpace(b.String())
}

func appendPlainText(b *strings.Builder, blocks []Block) {
	for _, block := range blocks {
		switch block.Kind {
		case KindParagraph, KindHeading:
			for _, run := range block.Inline {
				b.WriteString(run.Text)
			}
			b.WriteString("\n")
		case KindCodeBlock:
			b.WriteString(block.Text)
			b.WriteString("\n")
		case KindBulletList, KindOrderedList:
			for _, item := range block.Items {
				appendPlainText(b, item.Blocks)
			}
		case KindImageFigure:
			if block.Image != nil && block.Image.Caption != "" {
				b.WriteString(block.Image.Caption)
				b.WriteString("\n")
			}
		case KindVideoEmbed:
			if block.Video != nil && block.Video.Title != "" {
				b.WriteString(block.Video.Title)
				b.WriteString("\n")
			}
		}
	}
}

// FirstHeading returns the inline text of the first heading in the tree,
// or "" when the document has none.
func FirstHeading(blocks []Block) string {
	for _, block := range blocks {
		if block.Kind != KindHeading {
			continue
		}
		var b strings.Builder
		for _, run := range block.Inline {
			b.WriteString(run.Text)
		}
		return strings.TrimSpace(b.String())
	}
	return ""
}
