// Package parenthetical rewrites parenthesised mentions to bare codes.
package parenthetical

import (
	"strings"

	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// Name is the registry name of the pass.
const Name = "parenthetical"

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// Pass replaces the text strictly between "(" and the next ")" with the
// canonical code of the longest alias it contains. The delimiters are kept.
type Pass struct {
	matcher driven.TextMatcher
}

// New creates a parenthetical pass.
func New(m driven.TextMatcher) *Pass {
	return &Pass{matcher: m}
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return Name
}

// Apply rewrites every recognised parenthetical in text.
func (p *Pass) Apply(text string) (string, int) {
	var b strings.Builder
	last, n := 0, 0

	for i := 0; i < len(text); {
		open := strings.IndexByte(text[i:], '(')
		if open < 0 {
			break
		}
		open += i

		end := strings.IndexByte(text[open+1:], ')')
		if end < 0 {
			break
		}
		end += open + 1

		if end == open+1 {
			// "()" has no inner text; the next candidate starts after "(".
			i = open + 1
			continue
		}
		i = end + 1

		inner := text[open+1 : end]
		if p.matcher.MentionsCode(inner) {
			continue
		}
		m, ok := p.matcher.Find(inner)
		if !ok {
			continue
		}

		if n == 0 {
			b.Grow(len(text))
		}
		b.WriteString(text[last : open+1])
		b.WriteString(m.Target.Code)
		last = end
		n++
	}

	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}
