package services

import (
	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driving"
	"github.com/inkforge-labs/inkforge-cli/internal/mdx"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService converts between markup and document trees.
type DocumentService struct {
	opts mdx.Options
}

// NewDocumentService creates a new document service.
func NewDocumentService(opts mdx.Options) *DocumentService {
	return &DocumentService{opts: opts}
}

// Parse converts markup source into a document tree.
func (s *DocumentService) Parse(source string) []domain.Block {
	return mdx.ParseWithOptions(source, s.opts)
}

// Serialize renders a document tree back into markup.
func (s *DocumentService) Serialize(blocks []domain.Block) string {
	return mdx.Serialize(blocks)
}
