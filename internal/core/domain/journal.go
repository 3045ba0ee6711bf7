package domain

import "time"

// RunStatus is the lifecycle state of a journaled rewrite run.
type RunStatus string

// Run statuses.
const (
	RunRunning  RunStatus = "running"
	RunFinished RunStatus = "finished"
	RunUndone   RunStatus = "undone"
)

// Run is one invocation of the rewrite over a directory.
type Run struct {
	// ID is a UUID assigned when the run begins.
	ID string

	// Root is the directory the run processed.
	Root string

	// StartedAt and FinishedAt bracket the run.
	StartedAt  time.Time
	FinishedAt *time.Time

	// FilesScanned is the number of documents considered.
	FilesScanned int

	// FilesUpdated is the number of documents written back.
	FilesUpdated int

	// Status is the current lifecycle state.
	Status RunStatus
}

// Revision stores the content of a file before a run rewrote it.
type Revision struct {
	RunID         string
	Path          string
	Original      string
	Rewritten     string
	Substitutions int
	CreatedAt     time.Time
}
