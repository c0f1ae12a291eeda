// Package memory provides in-memory implementations of the storage ports,
// used in tests and as a fallback when on-disk storage is disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driven"
)

// Ensure DraftStore implements the interface.
var _ driven.DraftStore = (*DraftStore)(nil)

// DraftStore is an in-memory implementation of driven.DraftStore.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

// NewDraftStore creates a new in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]domain.Draft),
	}
}

// SaveDraft stores or updates a draft.
func (s *DraftStore) SaveDraft(_ context.Context, draft *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = *draft
	return nil
}

// GetDraft retrieves a draft by ID.
func (s *DraftStore) GetDraft(_ context.Context, id string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &draft, nil
}

// ListDrafts returns all drafts ordered by most recently updated.
func (s *DraftStore) ListDrafts(_ context.Context) ([]domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drafts := make([]domain.Draft, 0, len(s.drafts))
	for _, draft := range s.drafts {
		drafts = append(drafts, draft)
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})
	return drafts, nil
}

// DeleteDraft removes a draft.
func (s *DraftStore) DeleteDraft(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.drafts, id)
	return nil
}

// Close releases resources. It is a no-op for the in-memory store.
func (s *DraftStore) Close() error {
	return nil
}
