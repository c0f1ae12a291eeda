package mdx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// Serialize renders a document tree back into markup. For any tree
// produced by Parse from unambiguous input, Parse(Serialize(tree))
// reproduces the tree.
func Serialize(blocks []domain.Block) string {
	if len(blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		parts = append(parts, serializeBlock(block))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func serializeBlock(block domain.Block) string {
	switch block.Kind {
	case domain.KindHeading:
		level := clampInt(block.Level, 1, 4)
		return strings.Repeat("#", level) + " " + SerializeInline(block.Inline)
	case domain.KindCodeBlock:
		return "```" + block.Language + "\n" + block.Text + "\n```"
	case domain.KindBulletList, domain.KindOrderedList:
		return strings.Join(serializeList(block, 0), "\n")
	case domain.KindImageFigure:
		return serializeImageFigure(block.Image)
	case domain.KindVideoEmbed:
		return serializeVideoEmbed(block.Video)
	default:
		return SerializeInline(block.Inline)
	}
}

// serializeList renders a list block as one line per item, nested lists
// indented two spaces below their parent item.
func serializeList(block domain.Block, indent int) []string {
	ordered := block.Kind == domain.KindOrderedList
	prefix := strings.Repeat(" ", indent)

	var lines []string
	for i, item := range block.Items {
		marker := "- "
		if ordered {
			marker = strconv.Itoa(i+1) + ". "
		}

		rest := item.Blocks
		lead := ""
		if len(rest) > 0 && rest[0].Kind == domain.KindParagraph {
			lead = SerializeInline(rest[0].Inline)
			rest = rest[1:]
		}
		lines = append(lines, prefix+marker+lead)

		for _, child := range rest {
			switch child.Kind {
			case domain.KindBulletList, domain.KindOrderedList:
				lines = append(lines, serializeList(child, indent+2)...)
			}
		}
	}
	return lines
}

// SerializeInline renders a flat inline sequence, wrapping each run in
// the delimiter of its mark.
func SerializeInline(nodes []domain.Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Mark() {
		case domain.MarkBold:
			b.WriteString("**" + n.Text + "**")
		case domain.MarkItalic:
			b.WriteString("*" + n.Text + "*")
		case domain.MarkCode:
			b.WriteString("`" + n.Text + "`")
		default:
			b.WriteString(n.Text)
		}
	}
	return b.String()
}

func serializeImageFigure(fig *domain.ImageFigure) string {
	if fig == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ImageFigure")
	writeStringAttr(&b, "src", fig.Src)
	writeStringAttr(&b, "alt", fig.Alt)
	writeStringAttr(&b, "caption", fig.Caption)
	if fig.Width != nil {
		fmt.Fprintf(&b, " width={%d}", *fig.Width)
	}
	b.WriteString(" />")
	return b.String()
}

func serializeVideoEmbed(video *domain.VideoEmbed) string {
	if video == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("<VideoEmbed")
	writeStringAttr(&b, "src", video.Src)
	writeStringAttr(&b, "title", video.Title)
	writeStringAttr(&b, "provider", video.Provider)
	if video.AspectRatio != nil {
		b.WriteString(" aspectRatio={" + strconv.FormatFloat(*video.AspectRatio, 'g', -1, 64) + "}")
	}
	b.WriteString(" />")
	return b.String()
}

func writeStringAttr(b *strings.Builder, key, value string) {
	b.WriteString(" " + key + `="` + escapeQuoted(value) + `"`)
}

// escapeQuoted is the inverse of unescapeQuoted for double-quoted values.
func escapeQuoted(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
