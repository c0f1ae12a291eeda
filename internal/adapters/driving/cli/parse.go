package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkforge-labs/inkforge-cli/internal/logger"
)

var parseCompact bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse markup into a document tree",
	Long: `Parse a markup file into a structured document tree and print it
as JSON. With no file argument the source is read from stdin, so the
command composes with pipes:

  cat post.md | inkforge parse
  inkforge parse post.md > post.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "Print JSON without indentation")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	source, err := readSource(args)
	if err != nil {
		return err
	}

	blocks := documentService.Parse(source)
	logger.Debug("parsed %d top-level blocks", len(blocks))

	encoder := json.NewEncoder(cmd.OutOrStdout())
	if !parseCompact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(blocks); err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	return nil
}

// readSource returns the content of the file argument, or stdin when no
// argument was given and stdin is not a terminal.
func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no input: pass a file argument or pipe markup to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
