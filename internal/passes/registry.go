package passes

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// BuilderFunc creates a Pass from the shared matcher and generic config.
// Config is a map of pass-specific settings parsed from user config.
type BuilderFunc func(m driven.TextMatcher, cfg map[string]any) (driven.Pass, error)

// Registry maps pass names to their builders.
// It allows the pipeline to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new pass registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a pass builder to the registry.
// Name should be unique and match the pass's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a pass by name with the given config.
func (r *Registry) Build(name string, m driven.TextMatcher, cfg map[string]any) (driven.Pass, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown pass %q", domain.ErrUnsupportedType, name)
	}
	return builder(m, cfg)
}

// BuildPipeline creates a pipeline running the named passes in order.
// cfgs holds optional per-pass config keyed by pass name.
func (r *Registry) BuildPipeline(names []string, m driven.TextMatcher, cfgs map[string]map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: pass %q listed twice", domain.ErrInvalidInput, name)
		}
		seen[name] = true

		pass, err := r.Build(name, m, cfgs[name])
		if err != nil {
			return nil, err
		}
		p.Add(pass)
	}
	return p, nil
}

// Has returns true if a pass with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered pass names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
