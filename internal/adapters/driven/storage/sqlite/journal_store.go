package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// journalStore implements driven.JournalStore.
type journalStore struct {
	store *Store
}

var _ driven.JournalStore = (*journalStore)(nil)

// BeginRun persists a new run in the running state.
func (s *journalStore) BeginRun(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	if run.Status == "" {
		run.Status = domain.RunRunning
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO journal_runs (id, root, started_at, finished_at, files_scanned, files_updated, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Root, formatTime(run.StartedAt), formatNullableTime(run.FinishedAt),
		run.FilesScanned, run.FilesUpdated, string(run.Status))
	if err != nil {
		return fmt.Errorf("beginning run: %w", err)
	}
	return nil
}

// RecordRevision stores the pre-rewrite content of one file.
// A second revision for the same path keeps the first original, so undo
// always restores the content from before the run.
func (s *journalStore) RecordRevision(ctx context.Context, rev *domain.Revision) error {
	if rev == nil || rev.RunID == "" || rev.Path == "" {
		return domain.ErrInvalidInput
	}
	if _, err := s.GetRun(ctx, rev.RunID); err != nil {
		return err
	}

	createdAt := rev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO journal_revisions (run_id, path, original, rewritten, substitutions, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, path) DO UPDATE SET
			rewritten = excluded.rewritten,
			substitutions = journal_revisions.substitutions + excluded.substitutions
	`, rev.RunID, rev.Path, rev.Original, rev.Rewritten, rev.Substitutions, formatTime(createdAt))
	if err != nil {
		return fmt.Errorf("recording revision: %w", err)
	}
	return nil
}

// FinishRun updates counters, sets FinishedAt and marks the run finished.
func (s *journalStore) FinishRun(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	if run.FinishedAt == nil {
		now := time.Now()
		run.FinishedAt = &now
	}
	run.Status = domain.RunFinished

	res, err := s.store.db.ExecContext(ctx, `
		UPDATE journal_runs
		SET finished_at = ?, files_scanned = ?, files_updated = ?, status = ?
		WHERE id = ?
	`, formatNullableTime(run.FinishedAt), run.FilesScanned, run.FilesUpdated, string(run.Status), run.ID)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	return requireRow(res)
}

// GetRun returns a run by ID.
func (s *journalStore) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, root, started_at, finished_at, files_scanned, files_updated, status
		FROM journal_runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// LatestRun returns the most recent run with the given status.
func (s *journalStore) LatestRun(ctx context.Context, status domain.RunStatus) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, root, started_at, finished_at, files_scanned, files_updated, status
		FROM journal_runs WHERE status = ?
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`, string(status))
	return scanRun(row)
}

// ListRuns returns runs newest first. A limit of zero means no limit.
func (s *journalStore) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means unbounded
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, root, started_at, finished_at, files_scanned, files_updated, status
		FROM journal_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// Revisions returns every revision recorded for a run, ordered by path.
func (s *journalStore) Revisions(ctx context.Context, runID string) ([]domain.Revision, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT run_id, path, original, rewritten, substitutions, created_at
		FROM journal_revisions
		WHERE run_id = ?
		ORDER BY path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	var revisions []domain.Revision //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rev domain.Revision
		var createdAt string
		if err := rows.Scan(&rev.RunID, &rev.Path, &rev.Original, &rev.Rewritten,
			&rev.Substitutions, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		rev.CreatedAt = parseTime(createdAt)
		revisions = append(revisions, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}

	return revisions, nil
}

// MarkUndone flags a run as undone.
func (s *journalStore) MarkUndone(ctx context.Context, runID string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE journal_runs SET status = ? WHERE id = ?", string(domain.RunUndone), runID)
	if err != nil {
		return fmt.Errorf("marking run undone: %w", err)
	}
	return requireRow(res)
}

// Close closes the underlying database.
func (s *journalStore) Close() error {
	return s.store.Close()
}

// ==================== Helper Functions ====================

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun scans a single journal run.
func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var startedAt, status string
	var finishedAt sql.NullString

	if err := row.Scan(&run.ID, &run.Root, &startedAt, &finishedAt,
		&run.FilesScanned, &run.FilesUpdated, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.StartedAt = parseTime(startedAt)
	run.FinishedAt = parseNullableTime(finishedAt)
	run.Status = domain.RunStatus(status)
	return &run, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t := parseTime(s.String)
	return &t
}
