package driven

import (
	"context"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// DraftStore persists drafts.
// Backed by SQLite for on-disk storage.
type DraftStore interface {
	// SaveDraft stores or updates a draft.
	SaveDraft(ctx context.Context, draft *domain.Draft) error

	// GetDraft retrieves a draft by ID.
	// Returns domain.ErrNotFound when no draft has the ID.
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)

	// ListDrafts returns all drafts ordered by most recently updated.
	ListDrafts(ctx context.Context) ([]domain.Draft, error)

	// DeleteDraft removes a draft.
	// Returns domain.ErrNotFound when no draft has the ID.
	DeleteDraft(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
