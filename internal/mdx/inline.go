package mdx

import (
	"regexp"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// inlineMarkRe matches the three delimiter forms in textual order. Runs
// are the shortest span of non-delimiter characters, so marks never nest
// and never overlap. Alternation order matters: ** must win over *.
var inlineMarkRe = regexp.MustCompile("\\*\\*([^*]+)\\*\\*|\\*([^*]+)\\*|`([^`]+)`")

// ParseInline tokenizes a text block into a flat sequence of inline
// runs. The result is never empty: zero-length input yields one empty
// plain-text run.
func ParseInline(text string) []domain.Inline {
	if text == "" {
		return []domain.Inline{{Text: ""}}
	}

	var nodes []domain.Inline
	last := 0
	for _, m := range inlineMarkRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			nodes = append(nodes, domain.Inline{Text: text[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			nodes = append(nodes, domain.Inline{Text: text[m[2]:m[3]], Marks: []domain.Mark{domain.MarkBold}})
		case m[4] >= 0:
			nodes = append(nodes, domain.Inline{Text: text[m[4]:m[5]], Marks: []domain.Mark{domain.MarkItalic}})
		default:
			nodes = append(nodes, domain.Inline{Text: text[m[6]:m[7]], Marks: []domain.Mark{domain.MarkCode}})
		}
		last = m[1]
	}
	if last < len(text) {
		nodes = append(nodes, domain.Inline{Text: text[last:]})
	}

	return nodes
}
