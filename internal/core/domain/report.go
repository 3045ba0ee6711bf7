package domain

import "time"

// FileResult is the outcome of processing one document.
type FileResult struct {
	Path          string
	Changed       bool
	Substitutions map[string]int
	Err           error
}

// RunReport summarises a rewrite run for the console.
type RunReport struct {
	RunID    string
	Root     string
	DryRun   bool
	Files    []FileResult
	Duration time.Duration
}

// Updated returns the number of files that were (or, in a dry run, would be)
// written back.
func (r *RunReport) Updated() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed && f.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (r *RunReport) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// UndoReport summarises restoring the originals of one run.
type UndoReport struct {
	Run      Run
	Restored []string
	Failed   []FileResult
}

// ChangeType identifies a filesystem event kind seen in watch mode.
type ChangeType int

// Change types.
const (
	ChangeCreated ChangeType = iota
	ChangeUpdated
	ChangeDeleted
)

// String returns a readable change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is a filesystem event for an eligible document.
type Change struct {
	Type ChangeType
	Path string
}
