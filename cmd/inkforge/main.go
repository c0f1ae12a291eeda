// Command inkforge converts markup documents to structured trees and
// back, keeps local drafts, and serves the conversion tools over MCP.
package main

import (
	"fmt"
	"os"

	"github.com/inkforge-labs/inkforge-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
