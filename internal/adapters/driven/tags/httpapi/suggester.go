// Package httpapi provides a tag suggestion adapter backed by an HTTP service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
	"github.com/inkforge-labs/inkforge-cli/internal/core/ports/driven"
)

// Ensure Suggester implements the interface.
var _ driven.TagSuggester = (*Suggester)(nil)

// Default configuration values.
const (
	DefaultTimeout           = 10 * time.Second
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 4
)

// Config holds configuration for the tag suggestion service.
type Config struct {
	// BaseURL is the suggestion service base URL. Required.
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing requests (default: 2).
	RequestsPerSecond float64

	// Burst is the token bucket burst size (default: 4).
	Burst int
}

// Suggester proposes tags via a remote HTTP service. Requests are
// throttled with a token bucket so bulk operations stay under the
// service's quota.
type Suggester struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// suggestRequest is the suggestion API request format.
type suggestRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

// suggestResponse is the suggestion API response format.
type suggestResponse struct {
	Tags []domain.TagSuggestion `json:"tags"`
}

// NewSuggester creates a new HTTP tag suggester.
func NewSuggester(cfg Config) *Suggester {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}

	return &Suggester{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// Suggest returns up to limit tag suggestions for the given text.
func (s *Suggester) Suggest(ctx context.Context, text string, limit int) ([]domain.TagSuggestion, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := suggestRequest{
		Text:  text,
		Limit: limit,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/suggest",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("tag service error (status %d): failed to read response", resp.StatusCode)
		}
		return nil, fmt.Errorf("tag service error (status %d): %s", resp.StatusCode, string(body))
	}

	var suggestResp suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&suggestResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tags := suggestResp.Tags
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

// Ping validates the service is reachable.
func (s *Suggester) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tag service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tag service unhealthy (status %d)", resp.StatusCode)
	}
	return nil
}
