package driven

import (
	"context"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// JournalStore records the originals of rewritten files so a run can be
// listed and undone.
type JournalStore interface {
	// BeginRun persists a new run in the running state.
	BeginRun(ctx context.Context, run *domain.Run) error

	// RecordRevision stores the pre-rewrite content of one file.
	RecordRevision(ctx context.Context, rev *domain.Revision) error

	// FinishRun updates counters, sets FinishedAt and marks the run finished.
	FinishRun(ctx context.Context, run *domain.Run) error

	// GetRun returns a run by ID, or domain.ErrNotFound.
	GetRun(ctx context.Context, id string) (*domain.Run, error)

	// LatestRun returns the most recent run with the given status,
	// or domain.ErrNotFound.
	LatestRun(ctx context.Context, status domain.RunStatus) (*domain.Run, error)

	// ListRuns returns runs newest first. A limit of zero means no limit.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// Revisions returns every revision recorded for a run, ordered by path.
	Revisions(ctx context.Context, runID string) ([]domain.Revision, error)

	// MarkUndone flags a run as undone.
	MarkUndone(ctx context.Context, runID string) error

	// Close releases any resources held by the store.
	Close() error
}
