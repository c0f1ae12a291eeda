package cli

import (
	"fmt"
	"strings"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// summaryWidth caps the text snippet shown per block.
const summaryWidth = 60

// blockSummary renders a one-line description of a block for terminal
// output.
func blockSummary(block domain.Block) string {
	switch block.Kind {
	case domain.KindHeading:
		return fmt.Sprintf("heading(%d) %s", block.Level, snippet(inlineText(block.Inline)))
	case domain.KindCodeBlock:
		lang := block.Language
		if lang == "" {
			lang = "plain"
		}
		return fmt.Sprintf("code(%s) %d lines", lang, strings.Count(block.Text, "\n")+1)
	case domain.KindBulletList:
		return fmt.Sprintf("bulletList %d items", len(block.Items))
	case domain.KindOrderedList:
		return fmt.Sprintf("orderedList %d items", len(block.Items))
	case domain.KindImageFigure:
		return "imageFigure " + block.Image.Src
	case domain.KindVideoEmbed:
		return fmt.Sprintf("videoEmbed %s (%s)", block.Video.Src, block.Video.Provider)
	default:
		return "paragraph " + snippet(inlineText(block.Inline))
	}
}

// inlineText joins the raw text of an inline sequence.
func inlineText(nodes []domain.Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Text)
	}
	return b.String()
}

// snippet shortens text to a single display line.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > summaryWidth {
		return text[:summaryWidth-3] + "..."
	}
	return text
}
