package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driving/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview a markup file in the terminal",
	Long: `Parse a markup file and show the resulting document with basic
styling in a scrollable terminal view.

Controls:
  ↑/k, ↓/j - Scroll
  q, Esc   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	model := preview.NewModel(filepath.Base(args[0]), documentService.Parse(string(data)))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview error: %w", err)
	}
	return nil
}
