package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
	"github.com/custodia-labs/philcanon/internal/logger"
)

// Ensure Canonicaliser implements the interface.
var _ driving.Canonicaliser = (*Canonicaliser)(nil)

// Canonicaliser runs the rewrite pipeline over document sources and keeps
// the journal that makes runs undoable.
type Canonicaliser struct {
	sources  driven.SourceFactory
	pipeline driven.RewritePipeline
	matcher  driven.TextMatcher
	catalog  driven.AliasCatalog
	journal  driven.JournalStore

	now   func() time.Time
	newID func() string
}

// NewCanonicaliser creates a new canonicaliser.
// The journal is optional; if nil, runs are not recorded and Undo and
// History return domain.ErrJournalUnavailable.
func NewCanonicaliser(
	sources driven.SourceFactory,
	pipeline driven.RewritePipeline,
	matcher driven.TextMatcher,
	catalog driven.AliasCatalog,
	journal driven.JournalStore,
) *Canonicaliser {
	return &Canonicaliser{
		sources:  sources,
		pipeline: pipeline,
		matcher:  matcher,
		catalog:  catalog,
		journal:  journal,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Run rewrites every eligible document under opts.Root.
func (c *Canonicaliser) Run(ctx context.Context, opts driving.RunOptions) (*domain.RunReport, error) {
	logger.Section("Rewrite")
	start := c.now()

	src, err := c.openSource(opts.Root)
	if err != nil {
		return nil, err
	}

	paths, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	logger.Debug("found %d documents under %s", len(paths), src.Root())

	report := &domain.RunReport{
		Root:   src.Root(),
		DryRun: opts.DryRun,
	}

	run, err := c.beginRun(ctx, src.Root(), opts.DryRun)
	if err != nil {
		return nil, err
	}
	if run != nil {
		report.RunID = run.ID
	}

	report.Files = c.processAll(ctx, src, paths, report.RunID, opts)
	report.Duration = c.now().Sub(start)

	if run != nil {
		run.FilesScanned = len(report.Files)
		run.FilesUpdated = report.Updated()
		if err := c.finishRun(ctx, run); err != nil {
			return report, err
		}
	}

	logger.Info("run %s: %d scanned, %d updated, %d failed",
		displayID(report.RunID), len(report.Files), report.Updated(), len(report.Failed()))

	return report, ctx.Err()
}

// processAll rewrites paths with opts.Workers goroutines. Results keep the
// order of paths.
func (c *Canonicaliser) processAll(
	ctx context.Context,
	src driven.DocumentSource,
	paths []string,
	runID string,
	opts driving.RunOptions,
) []domain.FileResult {
	results := make([]domain.FileResult, len(paths))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.processFile(ctx, src, paths[i], runID, opts.DryRun)
			}
		}()
	}

	for i := range paths {
		if ctx.Err() != nil {
			results[i] = domain.FileResult{Path: paths[i], Err: ctx.Err()}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processFile reads, rewrites and, when something changed, journals and
// writes back one document.
func (c *Canonicaliser) processFile(
	ctx context.Context,
	src driven.DocumentSource,
	path, runID string,
	dryRun bool,
) domain.FileResult {
	result := domain.FileResult{Path: path}

	doc, err := src.Read(ctx, path)
	if err != nil {
		result.Err = err
		logger.Warn("%s: %v", path, err)
		return result
	}

	if err := c.pipeline.Rewrite(doc); err != nil {
		result.Err = err
		return result
	}
	result.Substitutions = doc.Substitutions

	if !doc.Changed || doc.Content == doc.Original {
		return result
	}
	result.Changed = true
	if dryRun {
		return result
	}

	if runID != "" {
		rev := &domain.Revision{
			RunID:         runID,
			Path:          doc.Path,
			Original:      doc.Original,
			Rewritten:     doc.Content,
			Substitutions: doc.TotalSubstitutions(),
			CreatedAt:     c.now(),
		}
		if err := c.journal.RecordRevision(ctx, rev); err != nil {
			result.Err = fmt.Errorf("journal: %w", err)
			logger.Warn("%s: %v", path, result.Err)
			return result
		}
	}

	if err := src.Write(ctx, doc); err != nil {
		result.Err = err
		logger.Warn("%s: %v", path, err)
		return result
	}

	logger.Debug("%s: %d substitutions", path, doc.TotalSubstitutions())
	return result
}

// Watch rewrites documents under opts.Root as changes arrive. All files
// processed during one watch session share a single journal run.
func (c *Canonicaliser) Watch(
	ctx context.Context,
	opts driving.RunOptions,
	changes <-chan domain.Change,
	onResult func(domain.FileResult),
) error {
	src, err := c.openSource(opts.Root)
	if err != nil {
		return err
	}

	run, err := c.beginRun(ctx, src.Root(), opts.DryRun)
	if err != nil {
		return err
	}
	runID := ""
	if run != nil {
		runID = run.ID
	}

	seen := make(map[string]bool)
	updated := make(map[string]bool)

	defer func() {
		if run == nil {
			return
		}
		run.FilesScanned = len(seen)
		run.FilesUpdated = len(updated)
		if err := c.finishRun(ctx, run); err != nil {
			logger.Error("finish watch run %s: %v", run.ID, err)
		}
	}()

	logger.Info("watching %s", src.Root())
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if change.Type == domain.ChangeDeleted || !src.Eligible(change.Path) {
				continue
			}

			result := c.processFile(ctx, src, change.Path, runID, opts.DryRun)
			seen[change.Path] = true
			if result.Changed && result.Err == nil {
				updated[change.Path] = true
			}
			if onResult != nil {
				onResult(result)
			}
		}
	}
}

// ProcessFile rewrites a single document, journaled as a run of its own.
func (c *Canonicaliser) ProcessFile(ctx context.Context, path string, dryRun bool) (domain.FileResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	src, err := c.openSource(filepath.Dir(abs))
	if err != nil {
		return domain.FileResult{}, err
	}
	if !src.Eligible(abs) {
		return domain.FileResult{}, fmt.Errorf("%w: %s is not an eligible document", domain.ErrInvalidInput, path)
	}

	run, err := c.beginRun(ctx, src.Root(), dryRun)
	if err != nil {
		return domain.FileResult{}, err
	}
	runID := ""
	if run != nil {
		runID = run.ID
	}

	result := c.processFile(ctx, src, abs, runID, dryRun)

	if run != nil {
		run.FilesScanned = 1
		if result.Changed && result.Err == nil {
			run.FilesUpdated = 1
		}
		if err := c.finishRun(ctx, run); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Lookup resolves free text against the alias index.
func (c *Canonicaliser) Lookup(text string) (domain.Match, bool) {
	return c.matcher.Find(text)
}

// Aliases returns every surface form in matching order.
func (c *Canonicaliser) Aliases() []domain.AliasEntry {
	return c.catalog.Entries()
}

// Collisions returns every surface form registered more than once.
func (c *Canonicaliser) Collisions() []domain.Collision {
	return c.catalog.Collisions()
}

// Undo restores the originals recorded for a run and marks it undone.
// Files edited since the run are left alone and reported with
// domain.ErrModified; the run then stays finished so Undo can be retried.
func (c *Canonicaliser) Undo(ctx context.Context, runID string) (*domain.UndoReport, error) {
	if c.journal == nil {
		return nil, domain.ErrJournalUnavailable
	}

	run, err := c.undoTarget(ctx, runID)
	if err != nil {
		return nil, err
	}

	revisions, err := c.journal.Revisions(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("load revisions: %w", err)
	}

	src, err := c.sources.NewSource(run.Root)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", run.Root, err)
	}

	report := &domain.UndoReport{Run: *run}
	for _, rev := range revisions {
		if err := c.restore(ctx, src, rev); err != nil {
			logger.Warn("undo %s: %v", rev.Path, err)
			report.Failed = append(report.Failed, domain.FileResult{Path: rev.Path, Err: err})
			continue
		}
		report.Restored = append(report.Restored, rev.Path)
	}

	if len(report.Failed) > 0 {
		return report, nil
	}
	if err := c.journal.MarkUndone(ctx, run.ID); err != nil {
		return report, fmt.Errorf("mark undone: %w", err)
	}
	report.Run.Status = domain.RunUndone
	return report, nil
}

func (c *Canonicaliser) undoTarget(ctx context.Context, runID string) (*domain.Run, error) {
	if runID == "" {
		run, err := c.journal.LatestRun(ctx, domain.RunFinished)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNothingToUndo
		}
		return run, err
	}

	run, err := c.journal.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if run.Status != domain.RunFinished {
		return nil, fmt.Errorf("%w: run %s is %s", domain.ErrNothingToUndo, runID, run.Status)
	}
	return run, nil
}

func (c *Canonicaliser) restore(ctx context.Context, src driven.DocumentSource, rev domain.Revision) error {
	current, err := src.Read(ctx, rev.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Deleted since the run: recreate it.
	case err != nil:
		return err
	case current.Content == rev.Original:
		return nil
	case current.Content != rev.Rewritten:
		return domain.ErrModified
	}
	return src.Restore(ctx, rev.Path, rev.Original)
}

// History lists journaled runs newest first.
func (c *Canonicaliser) History(ctx context.Context, limit int) ([]domain.Run, error) {
	if c.journal == nil {
		return nil, domain.ErrJournalUnavailable
	}
	return c.journal.ListRuns(ctx, limit)
}

func (c *Canonicaliser) openSource(root string) (driven.DocumentSource, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	src, err := c.sources.NewSource(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", root, err)
	}
	return src, nil
}

// beginRun starts a journal run, or returns nil when nothing is journaled.
func (c *Canonicaliser) beginRun(ctx context.Context, root string, dryRun bool) (*domain.Run, error) {
	if c.journal == nil || dryRun {
		return nil, nil
	}
	run := &domain.Run{
		ID:        c.newID(),
		Root:      root,
		StartedAt: c.now(),
		Status:    domain.RunRunning,
	}
	if err := c.journal.BeginRun(ctx, run); err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return run, nil
}

func (c *Canonicaliser) finishRun(ctx context.Context, run *domain.Run) error {
	finished := c.now()
	run.FinishedAt = &finished
	if err := c.journal.FinishRun(context.WithoutCancel(ctx), run); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

func displayID(id string) string {
	if id == "" {
		return "(not journaled)"
	}
	return id
}
