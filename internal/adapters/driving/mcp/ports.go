package mcp

import (
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document converts between markup and document trees.
	Document driving.DocumentService

	// Draft manages stored drafts. Optional.
	Draft driving.DraftService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	// Draft is optional; draft tools degrade when it is nil
	return nil
}
