// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SourceFactory / DocumentSource: Opens a directory and lists, reads
//     and writes back its HTML documents
//   - TextMatcher: Finds the longest known surface form in a text span
//   - AliasCatalog: Lists the alias index and its collisions
//   - Pass: One context-specific rewrite transformation
//   - RewritePipeline: Runs the passes over a document in order
//   - ConfigStore: Application configuration
//   - VocabularySource: Supplies the canonical and legacy tables
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - JournalStore: Records originals of rewritten files. Without it,
//     history and undo are disabled.
//   - ChangeWatcher: Streams filesystem changes for watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or rewrite package
package driven
