package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/logger"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document tree back into markup",
	Long: `Render a JSON document tree, as produced by parse, back into markup.
With no file argument the tree is read from stdin:

  inkforge parse post.md | inkforge render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	data, err := readTree(args)
	if err != nil {
		return err
	}

	var blocks []domain.Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return fmt.Errorf("decoding tree: %w", err)
	}
	logger.Debug("rendering %d top-level blocks", len(blocks))

	fmt.Fprint(cmd.OutOrStdout(), documentService.Serialize(blocks))
	return nil
}

// readTree returns the JSON bytes of the file argument, or stdin when no
// argument was given and stdin is not a terminal.
func readTree(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("no input: pass a file argument or pipe a JSON tree to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
