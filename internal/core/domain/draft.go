package domain

import "time"

// Draft is a stored document draft. Body holds the markup source; the
// document tree is derived from it on demand and never persisted.
type Draft struct {
	// ID is the unique identifier for the draft.
	ID string

	// Title is the human-readable title, derived from the first heading
	// when not set explicitly.
	Title string

	// Body is the markup source text.
	Body string

	// Tags are the labels attached to the draft.
	Tags []string

	// CreatedAt is when the draft was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the draft was last saved.
	UpdatedAt time.Time
}

// TagSuggestion is a ranked tag returned by the suggestion service.
type TagSuggestion struct {
	// Name is the suggested tag.
	Name string `json:"name"`

	// Score is the relevance score, higher is better.
	Score float64 `json:"score"`
}
