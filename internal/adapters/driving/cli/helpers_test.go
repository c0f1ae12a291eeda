package cli

import (
	"bytes"

	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driven/storage/memory"
	"github.com/inkforge-labs/inkforge-cli/internal/core/services"
	"github.com/inkforge-labs/inkforge-cli/internal/mdx"
)

// setupTestServices wires in-memory services and returns a cleanup func
// restoring the previous wiring.
func setupTestServices() func() {
	oldDocument := documentService
	oldDraft := draftService

	documentService = services.NewDocumentService(mdx.DefaultOptions())
	draftService = services.NewDraftService(memory.NewDraftStore(), nil, documentService)

	return func() {
		documentService = oldDocument
		draftService = oldDraft
	}
}

// execute runs the root command with args and returns its combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
