package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/services"
)

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}

func TestSettingsCmd_Show(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Rewrite]")
	assert.Contains(t, out, "Extensions: .html")
	assert.Contains(t, out, "Passes: parenthetical, metric-name, pill")
	assert.Contains(t, out, "File: (built-in)")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_ShowWarnsOnInvalid(t *testing.T) {
	store := setupCLI(t)
	require.NoError(t, store.Set(services.KeyWorkers, 0))

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: configuration error: rewrite.workers must be at least 1, got 0")
}

func TestSettingsCmd_Set(t *testing.T) {
	store := setupCLI(t)

	out, err := execute(t, "settings", "set", "rewrite.passes", "pill,parenthetical")

	require.NoError(t, err)
	assert.Contains(t, out, "Set rewrite.passes = pill,parenthetical")
	assert.Equal(t, []string{"pill", "parenthetical"}, store.GetStringSlice(services.KeyPasses))
}

func TestSettingsCmd_SetRejectsInvalid(t *testing.T) {
	store := setupCLI(t)

	_, err := execute(t, "settings", "set", "rewrite.workers", "0")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = execute(t, "settings", "set", "no.such.key", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, ok := store.Get(services.KeyWorkers)
	assert.False(t, ok)
}

func TestSettingsCmd_Keys(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "settings", "keys")

	require.NoError(t, err)
	for _, key := range []string{"rewrite.extensions", "match.min_alias_length", "labels.pill", "journal.dir"} {
		assert.Contains(t, out, key)
	}
}
