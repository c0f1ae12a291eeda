package driving

import (
	"context"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// DraftService manages stored drafts and their tag suggestions.
type DraftService interface {
	// Create stores a new draft from markup source. The title is taken
	// from the first heading, falling back to "Untitled".
	Create(ctx context.Context, source string) (*domain.Draft, error)

	// Get retrieves a draft by ID.
	Get(ctx context.Context, id string) (*domain.Draft, error)

	// List returns all drafts ordered by most recently updated.
	List(ctx context.Context) ([]domain.Draft, error)

	// Update replaces a draft's body and re-derives its title.
	Update(ctx context.Context, id, source string) (*domain.Draft, error)

	// Delete removes a draft.
	Delete(ctx context.Context, id string) error

	// SuggestTags proposes tags for a draft's content.
	// Returns domain.ErrTagServiceUnavailable when no suggester is configured.
	SuggestTags(ctx context.Context, id string, limit int) ([]domain.TagSuggestion, error)
}
