// Package vocabulary holds the closed vocabulary of canonical philosophies
// and the structures derived from it.
//
// Data flows one way:
//
//	Registry -> Index -> Matcher
//
// The Registry is the validated canonical table. The Index folds every known
// surface form (display name, short name, code, legacy alias) onto its
// canonical (name, code) pair. The Matcher finds the longest known surface
// form inside a text span and is the single primitive every rewrite pass uses.
//
// All three are built once before any document is processed and are
// read-only afterwards, so they can be shared between goroutines.
package vocabulary
