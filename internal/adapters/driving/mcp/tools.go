package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// ParseInput is the input schema for the parse_document tool.
type ParseInput struct {
	Source string `json:"source" jsonschema:"the markup source to parse"`
}

// ParseOutput is the output schema for the parse_document tool.
type ParseOutput struct {
	Blocks []domain.Block `json:"blocks"`
	Count  int            `json:"count"`
}

// SerializeInput is the input schema for the serialize_document tool.
type SerializeInput struct {
	Blocks []domain.Block `json:"blocks" jsonschema:"the document tree to render as markup"`
}

// SerializeOutput is the output schema for the serialize_document tool.
type SerializeOutput struct {
	Source string `json:"source"`
}

// SuggestTagsInput is the input schema for the suggest_tags tool.
type SuggestTagsInput struct {
	DraftID string `json:"draft_id" jsonschema:"the ID of the stored draft to suggest tags for"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of suggestions to return (default 5)"`
}

// SuggestTagsOutput is the output schema for the suggest_tags tool.
type SuggestTagsOutput struct {
	Tags  []domain.TagSuggestion `json:"tags"`
	Count int                    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_document",
		Description: "Parse markup source into a structured document tree",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "serialize_document",
		Description: "Render a document tree back into markup source",
	}, s.handleSerialize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_tags",
		Description: "Suggest tags for a stored draft",
	}, s.handleSuggestTags)
}

// handleParse handles the parse_document tool invocation.
func (s *Server) handleParse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	blocks := s.ports.Document.Parse(input.Source)
	return nil, ParseOutput{Blocks: blocks, Count: len(blocks)}, nil
}

// handleSerialize handles the serialize_document tool invocation.
func (s *Server) handleSerialize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SerializeInput,
) (*mcp.CallToolResult, SerializeOutput, error) {
	return nil, SerializeOutput{Source: s.ports.Document.Serialize(input.Blocks)}, nil
}

// handleSuggestTags handles the suggest_tags tool invocation.
func (s *Server) handleSuggestTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestTagsInput,
) (*mcp.CallToolResult, SuggestTagsOutput, error) {
	if s.ports.Draft == nil {
		return nil, SuggestTagsOutput{}, errors.New("draft storage is not configured")
	}

	tags, err := s.ports.Draft.SuggestTags(ctx, input.DraftID, input.Limit)
	if err != nil {
		return nil, SuggestTagsOutput{}, err
	}
	return nil, SuggestTagsOutput{Tags: tags, Count: len(tags)}, nil
}
