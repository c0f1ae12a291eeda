package driving

import (
	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// DocumentService converts between markup and document trees.
// Both directions are total: parsing never fails, and serialising any
// parsed tree reproduces the tree when parsed again.
type DocumentService interface {
	// Parse converts markup source into a document tree.
	Parse(source string) []domain.Block

	// Serialize renders a document tree back into markup.
	Serialize(blocks []domain.Block) string
}
