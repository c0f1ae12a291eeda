// Package domain defines the core business entities for inkforge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block: A structural unit of a document tree (paragraph, heading,
//     list, code block, embed)
//   - Inline: A run of text within a block, optionally marked
//   - Draft: A stored document with its markup body and tags
//   - TagSuggestion: A ranked tag returned by the suggestion service
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
