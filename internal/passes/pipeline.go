package passes

import (
	"fmt"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.RewritePipeline = (*Pipeline)(nil)

// Pipeline chains multiple Passes and runs them in order.
// Each pass sees the output of the previous one.
type Pipeline struct {
	passes []driven.Pass
}

// NewPipeline creates a new rewrite pipeline with the given passes.
// Passes are executed in the order provided.
func NewPipeline(passes ...driven.Pass) *Pipeline {
	return &Pipeline{
		passes: passes,
	}
}

// Rewrite runs the document through all passes in order.
// A document is marked changed as soon as one pass substitutes something.
func (p *Pipeline) Rewrite(doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", domain.ErrInvalidInput)
	}
	if doc.Substitutions == nil {
		doc.Substitutions = make(map[string]int)
	}

	for _, pass := range p.passes {
		out, n := pass.Apply(doc.Content)
		if n == 0 {
			continue
		}
		doc.Content = out
		doc.Substitutions[pass.Name()] += n
		doc.Changed = true
		logger.Debug("%s: %s made %d substitutions", doc.Path, pass.Name(), n)
	}

	return nil
}

// Add appends a pass to the pipeline.
func (p *Pipeline) Add(pass driven.Pass) {
	p.passes = append(p.passes, pass)
}

// Len returns the number of passes in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.passes)
}

// Passes returns the pass names in execution order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}
