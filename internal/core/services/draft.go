package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driving"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// DefaultSuggestionLimit caps tag suggestions when the caller passes no limit.
const DefaultSuggestionLimit = 5

// untitledDraft is the title for drafts whose body has no heading.
const untitledDraft = "Untitled"

// DraftService manages stored drafts and their tag suggestions.
type DraftService struct {
	store     driven.DraftStore
	suggester driven.TagSuggester
	documents driving.DocumentService
	now       func() time.Time
}

// NewDraftService creates a new draft service. The suggester may be nil,
// in which case tag suggestion reports domain.ErrTagServiceUnavailable.
func NewDraftService(store driven.DraftStore, suggester driven.TagSuggester, documents driving.DocumentService) *DraftService {
	return &DraftService{
		store:     store,
		suggester: suggester,
		documents: documents,
		now:       time.Now,
	}
}

// Create stores a new draft from markup source.
func (s *DraftService) Create(ctx context.Context, source string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	now := s.now().UTC()
	draft := &domain.Draft{
		ID:        uuid.New().String(),
		Title:     s.deriveTitle(source),
		Body:      source,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil
}

// Get retrieves a draft by ID.
func (s *DraftService) Get(ctx context.Context, id string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: draft ID is required", domain.ErrInvalidInput)
	}
	return s.store.GetDraft(ctx, id)
}

// List returns all drafts ordered by most recently updated.
func (s *DraftService) List(ctx context.Context) ([]domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.ListDrafts(ctx)
}

// Update replaces a draft's body and re-derives its title.
func (s *DraftService) Update(ctx context.Context, id, source string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	draft, err := s.store.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.Title = s.deriveTitle(source)
	draft.Body = source
	draft.UpdatedAt = s.now().UTC()

	if err := s.store.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil
}

// Delete removes a draft.
func (s *DraftService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: draft ID is required", domain.ErrInvalidInput)
	}
	return s.store.DeleteDraft(ctx, id)
}

// SuggestTags proposes tags for a draft's content. The draft body is
// reduced to plain text before it is sent to the suggester.
func (s *DraftService) SuggestTags(ctx context.Context, id string, limit int) ([]domain.TagSuggestion, error) {
	if s.suggester == nil {
		return nil, domain.ErrTagServiceUnavailable
	}

	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	text := domain.PlainText(s.documents.Parse(draft.Body))
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	suggestions, err := s.suggester.Suggest(ctx, text, limit)
	if err != nil {
		return nil, fmt.Errorf("suggesting tags: %w", err)
	}
	return suggestions, nil
}

// deriveTitle takes the first heading of the parsed body, falling back
// to a fixed placeholder.
func (s *DraftService) deriveTitle(source string) string {
	if title := domain.FirstHeading(s.documents.Parse(source)); title != "" {
		return title
	}
	return untitledDraft
}
