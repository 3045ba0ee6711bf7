// Package domain defines the core business entities for philcanon.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: A canonical philosophy with its display name and code
//   - LegacyAlias: A retired or informal name pointing at a canonical name
//   - Target: The (name, code) pair every surface form resolves to
//   - Match: One Context Matcher hit inside a text span
//   - Document: A mutable HTML buffer moving through the rewrite passes
//   - Run / Revision: Journal records used for history and undo
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
