package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// DefaultMinAliasLength is the length a surface form must exceed before it
// may match as a substring. Shorter forms only match a span they equal.
const DefaultMinAliasLength = 3

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMinAliasLength overrides the substring length guard.
// Negative values are treated as zero.
func WithMinAliasLength(n int) MatcherOption {
	return func(m *Matcher) {
		if n < 0 {
			n = 0
		}
		m.minLen = n
	}
}

// Matcher finds the longest known surface form inside a text span.
type Matcher struct {
	index  *Index
	minLen int
	runes  []int // rune length per index key
}

// NewMatcher creates a matcher over idx.
func NewMatcher(idx *Index, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		index:  idx,
		minLen: DefaultMinAliasLength,
	}
	for _, opt := range opts {
		opt(m)
	}

	keys := idx.Keys()
	m.runes = make([]int, len(keys))
	for i, key := range keys {
		m.runes[i] = utf8.RuneCountInString(key)
	}
	return m
}

// Index returns the alias index the matcher searches.
func (m *Matcher) Index() *Index {
	return m.index
}

// MinAliasLength returns the substring length guard.
func (m *Matcher) MinAliasLength() int {
	return m.minLen
}

// Find returns the longest surface form that either equals haystack or,
// when longer than the length guard, occurs inside it. Comparison ignores
// case. Offsets in the returned match refer to the lower-cased haystack.
func (m *Matcher) Find(haystack string) (domain.Match, bool) {
	lower := strings.ToLower(haystack)
	if lower == "" {
		return domain.Match{}, false
	}

	for i, key := range m.index.Keys() {
		if key == lower {
			return m.match(key, 0), true
		}
		if m.runes[i] <= m.minLen {
			continue
		}
		if at := strings.Index(lower, key); at >= 0 {
			return m.match(key, at), true
		}
	}
	return domain.Match{}, false
}

// MentionsCode reports whether text already carries a canonical code.
func (m *Matcher) MentionsCode(text string) bool {
	return m.index.Registry().MentionsCode(text)
}

func (m *Matcher) match(key string, at int) domain.Match {
	entry := m.index.entries[key]
	return domain.Match{
		Surface: key,
		Target:  entry.Target,
		Start:   at,
		End:     at + len(key),
	}
}
