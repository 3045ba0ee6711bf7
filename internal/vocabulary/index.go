package vocabulary

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.AliasCatalog = (*Index)(nil)

// Index maps every lower-cased surface form to its canonical target.
// It is immutable once NewIndex returns.
type Index struct {
	registry   *Registry
	entries    map[string]domain.AliasEntry
	order      []string // first-insertion order
	keys       []string // longest first, ties in insertion order
	collisions []domain.Collision
}

// NewIndex derives the alias index from the registry and the legacy table.
//
// Every entity registers its display name, short name and code. Legacy
// aliases are then resolved against those canonical surface forms only, so
// the order of the legacy table never changes the result. A later
// registration of an existing key replaces its target but keeps its
// position in the tie-break order.
//
// All unresolvable legacy targets are returned together as a
// *domain.ConfigError.
func NewIndex(reg *Registry, legacy []domain.LegacyAlias) (*Index, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: registry is nil", domain.ErrInvalidInput)
	}

	idx := &Index{
		registry: reg,
		entries:  make(map[string]domain.AliasEntry, reg.Len()*3+len(legacy)),
	}

	for _, e := range reg.entities {
		target := e.Target()
		idx.register(e.Name, target, domain.AliasFromName)
		idx.register(e.ShortName(), target, domain.AliasFromShort)
		idx.register(e.Code, target, domain.AliasFromCode)
	}

	canonical := make(map[string]domain.Target, len(idx.entries))
	for key, entry := range idx.entries {
		canonical[key] = entry.Target
	}

	var problems []string
	for _, alias := range legacy {
		from := strings.TrimSpace(alias.From)
		if from == "" {
			problems = append(problems, fmt.Sprintf("legacy alias for %q has an empty name", alias.To))
			continue
		}
		target, ok := canonical[strings.ToLower(strings.TrimSpace(alias.To))]
		if !ok {
			problems = append(problems, fmt.Sprintf("legacy alias %q targets unknown name %q", alias.From, alias.To))
			continue
		}
		idx.register(from, target, domain.AliasFromLegacy)
	}

	if len(problems) > 0 {
		return nil, &domain.ConfigError{Problems: problems}
	}

	idx.keys = make([]string, len(idx.order))
	copy(idx.keys, idx.order)
	sort.SliceStable(idx.keys, func(i, j int) bool {
		return utf8.RuneCountInString(idx.keys[i]) > utf8.RuneCountInString(idx.keys[j])
	})

	logger.Debug("alias index: %d surface forms for %d entities, %d collisions",
		len(idx.keys), reg.Len(), len(idx.collisions))

	return idx, nil
}

func (idx *Index) register(surface string, target domain.Target, source domain.AliasSource) {
	key := strings.ToLower(surface)
	if key == "" {
		return
	}

	prev, exists := idx.entries[key]
	if !exists {
		idx.order = append(idx.order, key)
	} else if prev.Target != target {
		idx.collisions = append(idx.collisions, domain.Collision{
			Surface:  key,
			Previous: prev.Target,
			Current:  target,
			Source:   source,
		})
		logger.Warn("surface form %q re-registered from %s to %s", key, prev.Target.Code, target.Code)
	}

	idx.entries[key] = domain.AliasEntry{Surface: key, Target: target, Source: source}
}

// Registry returns the canonical table the index was built from.
func (idx *Index) Registry() *Registry {
	return idx.registry
}

// Lookup resolves an exact surface form, ignoring case.
func (idx *Index) Lookup(surface string) (domain.Target, bool) {
	entry, ok := idx.entries[strings.ToLower(strings.TrimSpace(surface))]
	if !ok {
		return domain.Target{}, false
	}
	return entry.Target, true
}

// Keys returns the surface forms longest first.
// The returned slice must not be modified.
func (idx *Index) Keys() []string {
	return idx.keys
}

// Len returns the number of distinct surface forms.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Entries returns every alias entry in matching order.
func (idx *Index) Entries() []domain.AliasEntry {
	out := make([]domain.AliasEntry, 0, len(idx.keys))
	for _, key := range idx.keys {
		out = append(out, idx.entries[key])
	}
	return out
}

// Collisions returns every registration that replaced an existing target.
func (idx *Index) Collisions() []domain.Collision {
	out := make([]domain.Collision, len(idx.collisions))
	copy(out, idx.collisions)
	return out
}
