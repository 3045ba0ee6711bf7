package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// Ensure JournalStore implements the interface.
var _ driven.JournalStore = (*JournalStore)(nil)

// JournalStore is an in-memory implementation of driven.JournalStore.
type JournalStore struct {
	mu        sync.RWMutex
	runs      map[string]domain.Run
	order     []string // BeginRun order, breaks StartedAt ties
	revisions map[string]map[string]domain.Revision
}

// NewJournalStore creates a new in-memory journal.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		runs:      make(map[string]domain.Run),
		revisions: make(map[string]map[string]domain.Revision),
	}
}

// BeginRun persists a new run in the running state.
func (s *JournalStore) BeginRun(_ context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	if run.Status == "" {
		run.Status = domain.RunRunning
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; exists {
		return domain.ErrInvalidInput
	}
	s.runs[run.ID] = *run
	s.order = append(s.order, run.ID)
	return nil
}

// RecordRevision stores the pre-rewrite content of one file, keeping the
// first original when a path is recorded twice.
func (s *JournalStore) RecordRevision(_ context.Context, rev *domain.Revision) error {
	if rev == nil || rev.RunID == "" || rev.Path == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[rev.RunID]; !ok {
		return domain.ErrNotFound
	}

	byPath, ok := s.revisions[rev.RunID]
	if !ok {
		byPath = make(map[string]domain.Revision)
		s.revisions[rev.RunID] = byPath
	}

	stored := *rev
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if prev, exists := byPath[rev.Path]; exists {
		prev.Rewritten = rev.Rewritten
		prev.Substitutions += rev.Substitutions
		stored = prev
	}
	byPath[rev.Path] = stored
	return nil
}

// FinishRun updates counters, sets FinishedAt and marks the run finished.
func (s *JournalStore) FinishRun(_ context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.runs[run.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if run.FinishedAt == nil {
		now := time.Now()
		run.FinishedAt = &now
	}
	run.Status = domain.RunFinished

	stored.FinishedAt = run.FinishedAt
	stored.FilesScanned = run.FilesScanned
	stored.FilesUpdated = run.FilesUpdated
	stored.Status = run.Status
	s.runs[run.ID] = stored
	return nil
}

// GetRun returns a run by ID.
func (s *JournalStore) GetRun(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// LatestRun returns the most recent run with the given status.
func (s *JournalStore) LatestRun(_ context.Context, status domain.RunStatus) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, run := range s.sorted() {
		if run.Status == status {
			return &run, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListRuns returns runs newest first. A limit of zero means no limit.
func (s *JournalStore) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := s.sorted()
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Revisions returns every revision recorded for a run, ordered by path.
func (s *JournalStore) Revisions(_ context.Context, runID string) ([]domain.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byPath := s.revisions[runID]
	result := make([]domain.Revision, 0, len(byPath))
	for _, rev := range byPath {
		result = append(result, rev)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result, nil
}

// MarkUndone flags a run as undone.
func (s *JournalStore) MarkUndone(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return domain.ErrNotFound
	}
	run.Status = domain.RunUndone
	s.runs[runID] = run
	return nil
}

// Close is a no-op for the memory store.
func (s *JournalStore) Close() error {
	return nil
}

// sorted returns runs newest first; callers hold the lock.
func (s *JournalStore) sorted() []domain.Run {
	runs := make([]domain.Run, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		runs = append(runs, s.runs[s.order[i]])
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs
}
