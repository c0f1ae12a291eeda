package driven

import (
	"context"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// TagSuggester proposes tags for document text.
// This is an optional service - when nil, tag suggestion is disabled.
//
// Implementations may include:
//   - HTTP tag services exposing a suggest endpoint
//   - Local keyword extractors
type TagSuggester interface {
	// Suggest returns up to limit tag suggestions for the given text,
	// ordered by descending score.
	Suggest(ctx context.Context, text string, limit int) ([]domain.TagSuggestion, error)

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error
}
