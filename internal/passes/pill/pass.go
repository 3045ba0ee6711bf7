// Package pill rewrites scored pill badges to "Name (Code) score".
package pill

import (
	"regexp"

	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/passes/container"
)

// Name is the registry name of the pass.
const Name = "pill"

// DefaultLabel is the class attribute of pill containers.
const DefaultLabel = "pill"

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

var (
	outOfTen = regexp.MustCompile(`\d+(?:\.\d+)?/10`)
	decimal  = regexp.MustCompile(`\d+\.\d+`)
)

// Score extracts the score shown in a pill: a "<digits>[.digits]/10"
// rating if present, else a bare "<digits>.<digits>" number, else "".
func Score(inner string) string {
	if s := outOfTen.FindString(inner); s != "" {
		return s
	}
	return decimal.FindString(inner)
}

// Pass rewrites the text of labeled pill spans, keeping their score.
type Pass struct {
	matcher driven.TextMatcher
	label   string
}

// Option configures the pass.
type Option func(*Pass)

// WithLabel overrides the container class.
func WithLabel(label string) Option {
	return func(p *Pass) {
		if label != "" {
			p.label = label
		}
	}
}

// New creates a pill pass.
func New(m driven.TextMatcher, opts ...Option) *Pass {
	p := &Pass{matcher: m, label: DefaultLabel}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return Name
}

// Label returns the container class the pass targets.
func (p *Pass) Label() string {
	return p.label
}

// Apply rewrites every recognised pill in text.
func (p *Pass) Apply(text string) (string, int) {
	return container.Rewrite(text, p.label, func(inner string) (string, bool) {
		if p.matcher.MentionsCode(inner) {
			return "", false
		}
		m, ok := p.matcher.Find(inner)
		if !ok {
			return "", false
		}
		out := m.Target.Labeled()
		if score := Score(inner); score != "" {
			out += " " + score
		}
		return out, true
	})
}
