package mcp

import (
	"context"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driving"
	"github.com/inkforge-labs/inkforge-cli/internal/core/services"
	"github.com/inkforge-labs/inkforge-cli/internal/mdx"
)

// newDocumentService returns a real document service; parsing is pure and
// needs no mocking.
func newDocumentService() driving.DocumentService {
	return services.NewDocumentService(mdx.DefaultOptions())
}

// mockDraftService implements driving.DraftService for tests.
type mockDraftService struct {
	drafts      []domain.Draft
	suggestions []domain.TagSuggestion
	err         error
}

var _ driving.DraftService = (*mockDraftService)(nil)

func (m *mockDraftService) Create(_ context.Context, _ string) (*domain.Draft, error) {
	return nil, m.err
}

func (m *mockDraftService) Get(_ context.Context, id string) (*domain.Draft, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.drafts {
		if m.drafts[i].ID == id {
			return &m.drafts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDraftService) List(_ context.Context) ([]domain.Draft, error) {
	return m.drafts, m.err
}

func (m *mockDraftService) Update(_ context.Context, _, _ string) (*domain.Draft, error) {
	return nil, m.err
}

func (m *mockDraftService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDraftService) SuggestTags(_ context.Context, _ string, _ int) ([]domain.TagSuggestion, error) {
	return m.suggestions, m.err
}
