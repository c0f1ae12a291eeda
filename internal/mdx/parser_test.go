package mdx

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

func paragraph(text string) domain.Block {
	return domain.Block{Kind: domain.KindParagraph, Inline: ParseInline(text)}
}

func TestParse_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "only spaces", input: "   "},
		{name: "only blank lines", input: "\n\n\n"},
		{name: "spaces and blank lines", input: "  \n\t\n   \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Parse(tc.input))
		})
	}
}

func TestParse_HeadingLevels(t *testing.T) {
	for level := 1; level <= 4; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			input := strings.Repeat("#", level) + " Some *title*"
			blocks := Parse(input)

			require.Len(t, blocks, 1)
			assert.Equal(t, domain.KindHeading, blocks[0].Kind)
			assert.Equal(t, level, blocks[0].Level)
			assert.Equal(t, ParseInline("Some *title*"), blocks[0].Inline)
		})
	}
}

func TestParse_FiveHashesIsParagraph(t *testing.T) {
	blocks := Parse("##### too deep")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
	assert.Equal(t, ParseInline("##### too deep"), blocks[0].Inline)
}

func TestParse_HeadingWithoutTextIsParagraph(t *testing.T) {
	blocks := Parse("#")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
}

func TestParse_ParagraphJoining(t *testing.T) {
	t.Run("adjacent lines join with a space", func(t *testing.T) {
		blocks := Parse("line one\nline two")

		require.Len(t, blocks, 1)
		assert.Equal(t, paragraph("line one line two"), blocks[0])
	})

	t.Run("blank line separates paragraphs", func(t *testing.T) {
		blocks := Parse("line one\n\nline two")

		require.Len(t, blocks, 2)
		assert.Equal(t, paragraph("line one"), blocks[0])
		assert.Equal(t, paragraph("line two"), blocks[1])
	})

	t.Run("indented continuation is trimmed", func(t *testing.T) {
		blocks := Parse("line one\n   line two   ")

		require.Len(t, blocks, 1)
		assert.Equal(t, paragraph("line one line two"), blocks[0])
	})
}

func TestParse_CRLFNormalised(t *testing.T) {
	blocks := Parse("one\r\ntwo\r\n\r\nthree")

	require.Len(t, blocks, 2)
	assert.Equal(t, paragraph("one two"), blocks[0])
	assert.Equal(t, paragraph("three"), blocks[1])
}

func TestParse_CodeFenceFidelity(t *testing.T) {
	input := "```go\nfunc main() {\n\n\tfmt.Println(\"hi\")\n}\n```"
	blocks := Parse(input)

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindCodeBlock, blocks[0].Kind)
	assert.Equal(t, "go", blocks[0].Language)
	assert.Equal(t, "func main() {\n\n\tfmt.Println(\"hi\")\n}", blocks[0].Text)
	assert.Nil(t, blocks[0].Inline, "no inline parsing inside code")
}

func TestParse_CodeFenceWithoutLanguage(t *testing.T) {
	blocks := Parse("```\nplain\n```")

	require.Len(t, blocks, 1)
	assert.Equal(t, "", blocks[0].Language)
	assert.Equal(t, "plain", blocks[0].Text)
}

func TestParse_CodeFenceIgnoresMarkupInside(t *testing.T) {
	blocks := Parse("```\n# not a heading\n- not a list\n```")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindCodeBlock, blocks[0].Kind)
	assert.Equal(t, "# not a heading\n- not a list", blocks[0].Text)
}

func TestParse_UnterminatedFenceTolerated(t *testing.T) {
	blocks := Parse("before\n```js\nconsole.log(1)")

	require.Len(t, blocks, 2)
	assert.Equal(t, paragraph("before"), blocks[0])
	assert.Equal(t, domain.KindCodeBlock, blocks[1].Kind)
	assert.Equal(t, "js", blocks[1].Language)
	assert.Equal(t, "console.log(1)", blocks[1].Text)
}

func TestParse_FenceClosesParagraphAndLists(t *testing.T) {
	blocks := Parse("- item\n```\ncode\n```")

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindBulletList, blocks[0].Kind)
	assert.Equal(t, domain.KindCodeBlock, blocks[1].Kind)
}

func TestParse_ListNesting(t *testing.T) {
	blocks := Parse("- Item 1\n  - Nested 1\n  - Nested 2\n- Item 2")

	require.Len(t, blocks, 1)
	list := blocks[0]
	assert.Equal(t, domain.KindBulletList, list.Kind)
	require.Len(t, list.Items, 2)

	item1 := list.Items[0]
	require.Len(t, item1.Blocks, 2)
	assert.Equal(t, paragraph("Item 1"), item1.Blocks[0])

	nested := item1.Blocks[1]
	assert.Equal(t, domain.KindBulletList, nested.Kind)
	require.Len(t, nested.Items, 2)
	assert.Equal(t, paragraph("Nested 1"), nested.Items[0].Blocks[0])
	assert.Equal(t, paragraph("Nested 2"), nested.Items[1].Blocks[0])

	item2 := list.Items[1]
	require.Len(t, item2.Blocks, 1)
	assert.Equal(t, paragraph("Item 2"), item2.Blocks[0])
}

func TestParse_OrderedList(t *testing.T) {
	blocks := Parse("1. First\n2. Second\n10. Tenth")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindOrderedList, blocks[0].Kind)
	require.Len(t, blocks[0].Items, 3)
	assert.Equal(t, paragraph("Tenth"), blocks[0].Items[2].Blocks[0])
}

func TestParse_MixedStyleBoundary(t *testing.T) {
	// Switching bullet/ordered style at the same indent starts a new
	// sibling list, not a continuation.
	blocks := Parse("- bullet one\n- bullet two\n1. ordered one\n2. ordered two")

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindBulletList, blocks[0].Kind)
	assert.Len(t, blocks[0].Items, 2)
	assert.Equal(t, domain.KindOrderedList, blocks[1].Kind)
	assert.Len(t, blocks[1].Items, 2)
}

func TestParse_MixedStyleNested(t *testing.T) {
	blocks := Parse("- outer\n  1. inner one\n  2. inner two\n- outer two")

	require.Len(t, blocks, 1)
	list := blocks[0]
	require.Len(t, list.Items, 2)

	inner := list.Items[0].Blocks[1]
	assert.Equal(t, domain.KindOrderedList, inner.Kind)
	assert.Len(t, inner.Items, 2)
}

func TestParse_ListIndentZigzag(t *testing.T) {
	// Indentation sequence 0,2,0,2: both nested runs survive, attached
	// to their respective parent items, nothing dropped or merged.
	blocks := Parse("- A\n  - B\n- C\n  - D")

	require.Len(t, blocks, 1)
	list := blocks[0]
	require.Len(t, list.Items, 2)

	itemA := list.Items[0]
	require.Len(t, itemA.Blocks, 2)
	assert.Equal(t, paragraph("A"), itemA.Blocks[0])
	require.Len(t, itemA.Blocks[1].Items, 1)
	assert.Equal(t, paragraph("B"), itemA.Blocks[1].Items[0].Blocks[0])

	itemC := list.Items[1]
	require.Len(t, itemC.Blocks, 2)
	assert.Equal(t, paragraph("C"), itemC.Blocks[0])
	require.Len(t, itemC.Blocks[1].Items, 1)
	assert.Equal(t, paragraph("D"), itemC.Blocks[1].Items[0].Blocks[0])
}

func TestParse_DecreasingToUnseenIndent(t *testing.T) {
	// Indents 0,4,2: the 4-indent list closes onto item "a"; the
	// 2-indent item then opens a second nested list under "a".
	blocks := Parse("- a\n    - b\n  - c")

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Items, 1)
	itemA := blocks[0].Items[0]
	require.Len(t, itemA.Blocks, 3)
	assert.Equal(t, paragraph("a"), itemA.Blocks[0])
	assert.Equal(t, paragraph("b"), itemA.Blocks[1].Items[0].Blocks[0])
	assert.Equal(t, paragraph("c"), itemA.Blocks[2].Items[0].Blocks[0])
}

func TestParse_StyleSwitchWithoutEnclosingList(t *testing.T) {
	// A style switch at the same indent with no enclosing context
	// closes the first list to the top level.
	blocks := Parse("  - deep bullet\n  1. deep ordered")

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindBulletList, blocks[0].Kind)
	assert.Equal(t, domain.KindOrderedList, blocks[1].Kind)
}

func TestParse_ListTerminatedByPlainText(t *testing.T) {
	blocks := Parse("- item\ntrailing prose")

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindBulletList, blocks[0].Kind)
	assert.Equal(t, paragraph("trailing prose"), blocks[1])
}

func TestParse_BlankLineTerminatesList(t *testing.T) {
	blocks := Parse("- one\n\n- two")

	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindBulletList, blocks[0].Kind)
	assert.Len(t, blocks[0].Items, 1)
	assert.Equal(t, domain.KindBulletList, blocks[1].Kind)
	assert.Len(t, blocks[1].Items, 1)
}

func TestParse_EmptyListItemGetsPlaceholder(t *testing.T) {
	blocks := Parse("- ")

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Items, 1)
	item := blocks[0].Items[0]
	require.Len(t, item.Blocks, 1)
	assert.Equal(t, domain.Block{Kind: domain.KindParagraph}, item.Blocks[0])
}

func TestParse_ImageFigure(t *testing.T) {
	blocks := Parse(`<ImageFigure src="/images/cat.png" alt="A cat" caption="Cat photo" width={800} />`)

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindImageFigure, blocks[0].Kind)
	fig := blocks[0].Image
	require.NotNil(t, fig)
	assert.Equal(t, "/images/cat.png", fig.Src)
	assert.Equal(t, "A cat", fig.Alt)
	assert.Equal(t, "Cat photo", fig.Caption)
	require.NotNil(t, fig.Width)
	assert.Equal(t, 800, *fig.Width)
}

func TestParse_ImageFigureDefaults(t *testing.T) {
	blocks := Parse(`<ImageFigure src="https://example.com/a.png" />`)

	require.Len(t, blocks, 1)
	fig := blocks[0].Image
	require.NotNil(t, fig)
	assert.Equal(t, "", fig.Alt)
	assert.Equal(t, "", fig.Caption)
	assert.Nil(t, fig.Width)
}

func TestParse_ImageFigureWidthClamped(t *testing.T) {
	tests := []struct {
		name     string
		width    string
		expected int
	}{
		{name: "above maximum", width: "{99999}", expected: DefaultMaxImageWidth},
		{name: "below minimum", width: "{-50}", expected: DefaultMinImageWidth},
		{name: "in range", width: "{640}", expected: 640},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := Parse(`<ImageFigure src="/a.png" width=` + tc.width + ` />`)

			require.Len(t, blocks, 1)
			require.NotNil(t, blocks[0].Image)
			require.NotNil(t, blocks[0].Image.Width)
			assert.Equal(t, tc.expected, *blocks[0].Image.Width)
		})
	}
}

func TestParse_ImageFigureCustomClamp(t *testing.T) {
	opts := Options{MinImageWidth: 100, MaxImageWidth: 1200}
	blocks := ParseWithOptions(`<ImageFigure src="/a.png" width={20} />`, opts)

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0].Image.Width)
	assert.Equal(t, 100, *blocks[0].Image.Width)
}

func TestParse_ImageFigureUnsafeSrcDegrades(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "javascript scheme", input: `<ImageFigure src="javascript:alert(1)" />`},
		{name: "mixed-case scheme", input: `<ImageFigure src="JaVaScRiPt:alert(1)" />`},
		{name: "data scheme", input: `<ImageFigure src="data:text/html,<script>x</script>" alt="x" />`},
		{name: "protocol-relative", input: `<ImageFigure src="//evil.example/x.png" />`},
		{name: "missing src", input: `<ImageFigure alt="no src" />`},
		{name: "empty src", input: `<ImageFigure src="" />`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := Parse(tc.input)

			require.Len(t, blocks, 1)
			assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
			assert.Equal(t, ParseInline(tc.input), blocks[0].Inline)
		})
	}
}

func TestParse_VideoEmbed(t *testing.T) {
	blocks := Parse(`<VideoEmbed src="https://www.youtube.com/watch?v=abc" title="Demo" aspectRatio={1.7778} />`)

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindVideoEmbed, blocks[0].Kind)
	video := blocks[0].Video
	require.NotNil(t, video)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", video.Src)
	assert.Equal(t, "Demo", video.Title)
	assert.Equal(t, "youtube", video.Provider)
	require.NotNil(t, video.AspectRatio)
	assert.InDelta(t, 1.7778, *video.AspectRatio, 1e-9)
}

func TestParse_VideoEmbedProviderDerivation(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{src: "https://youtu.be/abc", expected: "youtube"},
		{src: "https://vimeo.com/123", expected: "vimeo"},
		{src: "https://player.vimeo.com/video/123", expected: "vimeo"},
		{src: "https://media.example.com/clip.mp4", expected: "generic"},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			blocks := Parse(`<VideoEmbed src="` + tc.src + `" title="t" />`)

			require.Len(t, blocks, 1)
			require.NotNil(t, blocks[0].Video)
			assert.Equal(t, tc.expected, blocks[0].Video.Provider)
		})
	}
}

func TestParse_VideoEmbedInvalidAspectRatioDropped(t *testing.T) {
	tests := []struct {
		name  string
		ratio string
	}{
		{name: "zero", ratio: "{0}"},
		{name: "negative", ratio: "{-1.5}"},
		{name: "not a number", ratio: `"wide"`},
		{name: "corrupt json", ratio: "{1.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := Parse(`<VideoEmbed src="https://vimeo.com/1" title="t" aspectRatio=` + tc.ratio + ` />`)

			require.Len(t, blocks, 1)
			require.Equal(t, domain.KindVideoEmbed, blocks[0].Kind)
			assert.Nil(t, blocks[0].Video.AspectRatio)
		})
	}
}

func TestParse_VideoEmbedInvalidSrcDegrades(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "relative src", input: `<VideoEmbed src="/local/clip.mp4" title="t" />`},
		{name: "javascript scheme", input: `<VideoEmbed src="javascript:alert(1)" title="t" />`},
		{name: "missing src", input: `<VideoEmbed title="t" />`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := Parse(tc.input)

			require.Len(t, blocks, 1)
			assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
		})
	}
}

func TestParse_EmbedFlushesParagraphAndLists(t *testing.T) {
	blocks := Parse("intro text\n<ImageFigure src=\"/a.png\" />\n- item\n<VideoEmbed src=\"https://vimeo.com/1\" title=\"t\" />")

	require.Len(t, blocks, 4)
	assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
	assert.Equal(t, domain.KindImageFigure, blocks[1].Kind)
	assert.Equal(t, domain.KindBulletList, blocks[2].Kind)
	assert.Equal(t, domain.KindVideoEmbed, blocks[3].Kind)
}

func TestParse_FailedEmbedJoinsFollowingParagraph(t *testing.T) {
	blocks := Parse("<ImageFigure src=\"javascript:x\" />\nmore text")

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
	assert.Equal(t, ParseInline(`<ImageFigure src="javascript:x" /> more text`), blocks[0].Inline)
}

func TestParse_UnknownTagIsParagraph(t *testing.T) {
	blocks := Parse(`<Tweet id="123" />`)

	require.Len(t, blocks, 1)
	assert.Equal(t, domain.KindParagraph, blocks[0].Kind)
}

func TestParse_Document(t *testing.T) {
	input := `# Title

Intro paragraph with **bold** text
spread over two lines.

## Section

- one
  - one a
- two

` + "```python\nprint(1)\n```" + `

<ImageFigure src="/img.png" alt="img" caption="cap" width={500} />

Closing words.`

	blocks := Parse(input)

	require.Len(t, blocks, 7)
	assert.Equal(t, domain.KindHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, domain.KindParagraph, blocks[1].Kind)
	assert.Equal(t, domain.KindHeading, blocks[2].Kind)
	assert.Equal(t, 2, blocks[2].Level)
	assert.Equal(t, domain.KindBulletList, blocks[3].Kind)
	assert.Equal(t, domain.KindCodeBlock, blocks[4].Kind)
	assert.Equal(t, domain.KindImageFigure, blocks[5].Kind)
	assert.Equal(t, domain.KindParagraph, blocks[6].Kind)
}

func BenchmarkParse(b *testing.B) {
	input := strings.Repeat(`# Heading

Paragraph with **bold**, *italic* and `+"`code`"+`.

- one
  - two
    - three

`+"```go\nfmt.Println(\"x\")\n```"+`

<ImageFigure src="/a.png" alt="a" width={640} />

`, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(input)
	}
}
