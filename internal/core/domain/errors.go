package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates the vocabulary tables are inconsistent.
	// Configuration errors are fatal and abort the run.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedType indicates an unknown pass or vocabulary format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNothingToUndo indicates the journal has no run that can be undone.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrJournalUnavailable indicates the rewrite journal is disabled.
	ErrJournalUnavailable = errors.New("journal unavailable")

	// ErrModified indicates a file changed after the run that rewrote it.
	ErrModified = errors.New("modified since run")
)

// ConfigError lists every problem found while loading the vocabulary.
// It unwraps to ErrConfiguration.
type ConfigError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return "configuration error: " + e.Problems[0]
	}
	var b strings.Builder
	b.WriteString("configuration error: ")
	b.WriteString(strconv.Itoa(len(e.Problems)))
	b.WriteString(" problems")
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

// Unwrap allows errors.Is(err, ErrConfiguration).
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

