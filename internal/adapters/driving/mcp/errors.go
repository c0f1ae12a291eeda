// Package mcp provides an MCP (Model Context Protocol) server adapter for Inkforge.
// It lets AI assistants parse markup, render document trees and suggest tags
// for stored drafts.
package mcp

import "errors"

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
