package driving

import (
	"context"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// RunOptions configures one rewrite run.
type RunOptions struct {
	// Root is the directory to process.
	Root string

	// DryRun computes the report without writing files or journaling.
	DryRun bool

	// Workers is the number of documents processed concurrently.
	// Values below 1 mean one.
	Workers int
}

// Canonicaliser rewrites philosophy references into canonical form.
type Canonicaliser interface {
	// Run rewrites every eligible document under opts.Root.
	// Per-file failures are reported in the result, not returned.
	Run(ctx context.Context, opts RunOptions) (*domain.RunReport, error)

	// Watch rewrites documents as changes arrive until ctx is cancelled or
	// changes is closed. onResult is called for every processed file.
	Watch(ctx context.Context, opts RunOptions, changes <-chan domain.Change, onResult func(domain.FileResult)) error

	// ProcessFile rewrites a single document.
	ProcessFile(ctx context.Context, path string, dryRun bool) (domain.FileResult, error)

	// Lookup resolves free text against the alias index.
	Lookup(text string) (domain.Match, bool)

	// Aliases returns every surface form in matching order.
	Aliases() []domain.AliasEntry

	// Collisions returns every surface form registered more than once.
	Collisions() []domain.Collision

	// Undo restores the originals of a run. An empty runID selects the
	// latest finished run.
	Undo(ctx context.Context, runID string) (*domain.UndoReport, error)

	// History lists journaled runs newest first.
	History(ctx context.Context, limit int) ([]domain.Run, error)
}
