package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/services"
)

func TestHistoryCmd_Empty(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	writeFile(t, dir, "match.html", sampleHTML)

	_, err := execute(t, "rewrite", dir)
	require.NoError(t, err)

	out, err := execute(t, "history", "-n", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "1/1 updated")
	assert.Contains(t, out, dir)
}

func TestHistoryCmd_JournalDisabled(t *testing.T) {
	store := setupCLI(t)
	require.NoError(t, store.Set(services.KeyJournalEnabled, false))

	_, err := execute(t, "history")

	assert.ErrorIs(t, err, domain.ErrJournalUnavailable)
}

func TestUndoCmd_RestoresLatestRun(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "match.html", sampleHTML)

	_, err := execute(t, "rewrite", dir)
	require.NoError(t, err)
	require.Equal(t, rewrittenHTML, readFile(t, path))

	out, err := execute(t, "undo")

	require.NoError(t, err)
	assert.Contains(t, out, "Restored: match.html")
	assert.Contains(t, out, "Restored 1 files.")
	assert.Equal(t, sampleHTML, readFile(t, path))

	out, err = execute(t, "undo")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to undo.")
}

func TestUndoCmd_ModifiedFile(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "match.html", sampleHTML)

	_, err := execute(t, "rewrite", dir)
	require.NoError(t, err)
	writeFile(t, dir, "match.html", "<p>edited by hand</p>\n")

	out, err := execute(t, "undo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 files could not be restored")
	assert.Contains(t, out, "Failed: match.html")
	assert.Equal(t, "<p>edited by hand</p>\n", readFile(t, path))
}

func TestUndoCmd_UnknownRun(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "undo", "no-such-run")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUndoCmd_NothingRecorded(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "undo")

	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to undo.")
}
