// Package metricname rewrites metric-name spans to "Name (Code)".
package metricname

import (
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/passes/container"
)

// Name is the registry name of the pass.
const Name = "metric-name"

// DefaultLabel is the class attribute of metric-name containers.
const DefaultLabel = "metric-name"

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// Pass rewrites the text of labeled metric-name spans.
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

// New creates a metric-name pass.
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

// Apply rewrites every recognised metric-name span in text.
func (p *Pass) Apply(text string) (string, int) {
	return container.Rewrite(text, p.label, func(inner string) (string, bool) {
		if p.matcher.MentionsCode(inner) {
			return "", false
		}
		m, ok := p.matcher.Find(inner)
		if !ok {
			return "", false
		}
		return m.Target.Labeled(), true
	})
}
