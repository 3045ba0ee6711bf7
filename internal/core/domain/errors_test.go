package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrConfiguration", ErrConfiguration},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrNothingToUndo", ErrNothingToUndo},
		{"ErrJournalUnavailable", ErrJournalUnavailable},
		{"ErrModified", ErrModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestConfigError_SingleProblem(t *testing.T) {
	err := &ConfigError{Problems: []string{`legacy alias "Klopp" targets unknown name "Nobody"`}}

	assert.Equal(t, `configuration error: legacy alias "Klopp" targets unknown name "Nobody"`, err.Error())
}

func TestConfigError_ListsEveryProblem(t *testing.T) {
	err := &ConfigError{Problems: []string{"first", "second"}}

	msg := err.Error()
	assert.Contains(t, msg, "2 problems")
	assert.Contains(t, msg, "  - first")
	assert.Contains(t, msg, "  - second")
}

func TestConfigError_UnwrapsToSentinel(t *testing.T) {
	var err error = &ConfigError{Problems: []string{"dup"}}
	wrapped := fmt.Errorf("load vocabulary: %w", err)

	assert.True(t, errors.Is(wrapped, ErrConfiguration))

	var cfgErr *ConfigError
	assert.True(t, errors.As(wrapped, &cfgErr))
	assert.Equal(t, []string{"dup"}, cfgErr.Problems)
}
