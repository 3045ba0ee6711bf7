package vocabulary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// DefaultPrefix is the code prefix of the built-in vocabulary.
const DefaultPrefix = "Philosophy"

// Registry is the validated, ordered canonical table.
type Registry struct {
	prefix   string
	codeExpr *regexp.Regexp
	entities []domain.Entity
	byName   map[string]int
	byCode   map[string]int
}

// NewRegistry validates entries and returns a Registry that preserves
// their declaration order. Every problem found is reported in a single
// *domain.ConfigError.
func NewRegistry(prefix string, entries []domain.Entity) (*Registry, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	r := &Registry{
		prefix:   prefix,
		codeExpr: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_(\d+)_(\S+)$`),
		entities: make([]domain.Entity, 0, len(entries)),
		byName:   make(map[string]int, len(entries)),
		byCode:   make(map[string]int, len(entries)),
	}

	var problems []string
	seqs := make(map[int]string, len(entries))

	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.Code = strings.TrimSpace(e.Code)

		if e.Name == "" || e.Code == "" {
			problems = append(problems, fmt.Sprintf("entry %d: name and code are required", i+1))
			continue
		}

		m := r.codeExpr.FindStringSubmatch(e.Code)
		if m == nil {
			problems = append(problems, fmt.Sprintf("code %q does not follow %s_<NN>_<Slug>", e.Code, prefix))
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			problems = append(problems, fmt.Sprintf("code %q: bad sequence number", e.Code))
			continue
		}
		e.Seq = seq

		nameKey := strings.ToLower(e.Name)
		if _, dup := r.byName[nameKey]; dup {
			problems = append(problems, fmt.Sprintf("duplicate canonical name %q", e.Name))
			continue
		}
		if _, dup := r.byCode[e.Code]; dup {
			problems = append(problems, fmt.Sprintf("duplicate canonical code %q", e.Code))
			continue
		}
		if other, dup := seqs[seq]; dup {
			problems = append(problems, fmt.Sprintf("code %q reuses sequence number %d of %q", e.Code, seq, other))
			continue
		}

		seqs[seq] = e.Code
		r.byName[nameKey] = len(r.entities)
		r.byCode[e.Code] = len(r.entities)
		r.entities = append(r.entities, e)
	}

	if len(problems) > 0 {
		return nil, &domain.ConfigError{Problems: problems}
	}
	return r, nil
}

// Prefix returns the code prefix, e.g. "Philosophy".
func (r *Registry) Prefix() string {
	return r.prefix
}

// Len returns the number of canonical entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Entities returns a copy of the canonical table in declaration order.
func (r *Registry) Entities() []domain.Entity {
	out := make([]domain.Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// ByName looks up an entity by display name, ignoring case.
func (r *Registry) ByName(name string) (domain.Entity, bool) {
	i, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.Entity{}, false
	}
	return r.entities[i], true
}

// ByCode looks up an entity by its exact code.
func (r *Registry) ByCode(code string) (domain.Entity, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return domain.Entity{}, false
	}
	return r.entities[i], true
}

// MentionsCode reports whether text already carries a canonical code.
// Rewrite passes skip such spans so a second run changes nothing.
func (r *Registry) MentionsCode(text string) bool {
	return strings.Contains(text, r.prefix+"_")
}
