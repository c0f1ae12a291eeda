package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Inkforge resources.
const uriScheme = "inkforge://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing all drafts.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "drafts",
		Name:        "drafts",
		Description: "List of all stored drafts",
		MIMEType:    "application/json",
	}, s.handleDraftsResource)

	// Template for draft bodies.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "drafts/{draftId}",
		Name:        "draft-body",
		Description: "Markup source of a specific draft",
		MIMEType:    "text/markdown",
	}, s.handleDraftBodyResource)
}

// handleDraftsResource returns a list of all stored drafts.
func (s *Server) handleDraftsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Draft == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	drafts, err := s.ports.Draft.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}

	type draftInfo struct {
		ID        string   `json:"id"`
		Title     string   `json:"title"`
		Tags      []string `json:"tags,omitempty"`
		UpdatedAt string   `json:"updated_at"`
	}

	infos := make([]draftInfo, len(drafts))
	for i, d := range drafts {
		infos[i] = draftInfo{
			ID:        d.ID,
			Title:     d.Title,
			Tags:      d.Tags,
			UpdatedAt: d.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling drafts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDraftBodyResource returns the markup source of one draft.
func (s *Server) handleDraftBodyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Draft == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	draftID := extractDraftID(req.Params.URI)
	if draftID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	draft, err := s.ports.Draft.Get(ctx, draftID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     draft.Body,
		}},
	}, nil
}

// extractDraftID pulls the draft ID out of an inkforge://drafts/{draftId} URI.
func extractDraftID(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"drafts/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
