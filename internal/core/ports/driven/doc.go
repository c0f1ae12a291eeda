// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DraftStore: Draft persistence. Backed by SQLite on disk, or the
//     in-memory store in tests.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TagSuggester: Remote tag suggestion. Without it, the tags command
//     and the suggest_tags tool report the service as unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
