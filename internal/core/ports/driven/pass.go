package driven

import "github.com/custodia-labs/philcanon/internal/core/domain"

// Pass is one independent rewrite transformation targeting one syntactic
// context of a document (parentheses, metric-name spans, pills).
type Pass interface {
	// Name returns the pass name for logging and configuration.
	Name() string

	// Apply rewrites text and returns the result together with the number
	// of substitutions made. Text outside rewritten spans is preserved
	// byte for byte.
	Apply(text string) (string, int)
}

// RewritePipeline runs every configured pass over a document.
type RewritePipeline interface {
	// Rewrite applies the passes in order, updating doc.Content,
	// doc.Substitutions and doc.Changed.
	Rewrite(doc *domain.Document) error

	// Passes returns the pass names in execution order.
	Passes() []string
}

// TextMatcher is the Context Matcher as seen by the rewrite passes.
type TextMatcher interface {
	// Find returns the longest known surface form in haystack.
	Find(haystack string) (domain.Match, bool)

	// MentionsCode reports whether text already carries a canonical code.
	MentionsCode(text string) bool
}
