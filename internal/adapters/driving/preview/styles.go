package preview

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the preview.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Code is the colour for code blocks.
	Code lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Code:       lipgloss.Color("#A6E3A1"), // Green
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles for rendering blocks.
type Styles struct {
	Heading   lipgloss.Style
	Paragraph lipgloss.Style
	Code      lipgloss.Style
	Embed     lipgloss.Style
	Footer    lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Paragraph: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Code: lipgloss.NewStyle().
			Foreground(theme.Code).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(theme.Border).
			PaddingLeft(1),
		Embed: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}
