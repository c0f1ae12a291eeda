// Package preview provides a terminal preview of parsed documents.
// It renders the document tree with basic styling in a scrollable
// viewport, so authors can check how their markup is structured.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// Model is the bubbletea model for the preview view.
type Model struct {
	title    string
	blocks   []domain.Block
	styles   *Styles
	viewport viewport.Model
	ready    bool
}

// NewModel creates a preview model for a parsed document.
func NewModel(title string, blocks []domain.Block) *Model {
	return &Model{
		title:  title,
		blocks: blocks,
		styles: NewStyles(DefaultTheme()),
	}
}

// Init initialises the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve one line each for the title and the footer.
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.renderBlocks(msg.Width))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
			m.viewport.SetContent(m.renderBlocks(msg.Width))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.styles.Heading.Render(m.title)
	footer := m.styles.Footer.Render(fmt.Sprintf("%d blocks · ↑/↓ scroll · q quit", len(m.blocks)))
	return header + "\n" + m.viewport.View() + "\n" + footer
}

// renderBlocks renders the document tree as styled terminal text.
func (m *Model) renderBlocks(width int) string {
	var parts []string
	for _, block := range m.blocks {
		parts = append(parts, m.renderBlock(block, width, 0))
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) renderBlock(block domain.Block, width, indent int) string {
	prefix := strings.Repeat("  ", indent)

	switch block.Kind {
	case domain.KindHeading:
		marker := strings.Repeat("#", block.Level)
		return prefix + m.styles.Heading.Render(marker+" "+plainInline(block.Inline))
	case domain.KindCodeBlock:
		label := block.Language
		if label == "" {
			label = "code"
		}
		body := block.Text
		if body == "" {
			body = "(empty)"
		}
		return prefix + m.styles.Embed.Render("["+label+"]") + "\n" +
			m.styles.Code.Render(body)
	case domain.KindBulletList, domain.KindOrderedList:
		return m.renderList(block, width, indent)
	case domain.KindImageFigure:
		caption := block.Image.Caption
		if caption == "" {
			caption = block.Image.Alt
		}
		return prefix + m.styles.Embed.Render(fmt.Sprintf("[image: %s] %s", block.Image.Src, caption))
	case domain.KindVideoEmbed:
		return prefix + m.styles.Embed.Render(fmt.Sprintf("[video: %s] %s", block.Video.Provider, block.Video.Title))
	default:
		return prefix + m.styles.Paragraph.Width(width-len(prefix)).Render(plainInline(block.Inline))
	}
}

func (m *Model) renderList(block domain.Block, width, indent int) string {
	ordered := block.Kind == domain.KindOrderedList
	prefix := strings.Repeat("  ", indent)

	var lines []string
	for i, item := range block.Items {
		marker := "•"
		if ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		for j, child := range item.Blocks {
			switch {
			case j == 0 && child.Kind == domain.KindParagraph:
				lines = append(lines, prefix+marker+" "+m.styles.Paragraph.Render(plainInline(child.Inline)))
			default:
				lines = append(lines, m.renderBlock(child, width, indent+1))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// plainInline joins the raw text of an inline sequence.
func plainInline(nodes []domain.Inline) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Text)
	}
	return b.String()
}
