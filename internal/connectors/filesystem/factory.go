package filesystem

import (
	"fmt"
	"os"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.SourceFactory = (*Factory)(nil)

// Factory creates filesystem sources that share one set of options.
type Factory struct {
	opts []Option
}

// NewFactory creates a factory applying opts to every source.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: opts}
}

// NewSource returns a source for root. Root must be an existing directory.
func (f *Factory) NewSource(root string) (driven.DocumentSource, error) {
	return f.Open(root)
}

// Open is NewSource returning the concrete type, for callers that also
// need a Watcher.
func (f *Factory) Open(root string) (*Source, error) {
	s := New(root, f.opts...)
	info, err := os.Stat(s.Root())
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, s.Root())
	}
	return s, nil
}
