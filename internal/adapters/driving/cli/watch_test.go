package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [dir]", watchCmd.Use)
	assert.NotNil(t, watchCmd.Flags().Lookup("dry-run"))
}

func TestWatchCmd_RequiresWatcher(t *testing.T) {
	setupCLI(t)
	wiring.Watcher = nil

	_, err := execute(t, "watch", t.TempDir())

	assert.EqualError(t, err, "watcher not configured")
}

func TestWatchCmd_MissingDirectory(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestWatchCmd_RewritesNewFiles(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "live.html")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchCmd.SetContext(ctx)

	// Keep writing the sample until the watcher has rewritten it.
	go func() {
		defer cancel()
		deadline := time.After(5 * time.Second)
		tick := time.NewTicker(250 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-deadline:
				return
			case <-tick.C:
				data, err := os.ReadFile(path)
				if err == nil && string(data) == rewrittenHTML {
					return
				}
				_ = os.WriteFile(path, []byte(sampleHTML), 0644)
			}
		}
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", dir})
	err := rootCmd.ExecuteContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, rewrittenHTML, readFile(t, path))
	assert.Contains(t, buf.String(), "Watching "+dir)
	assert.Contains(t, buf.String(), "Updated: live.html")
	assert.Contains(t, buf.String(), "Stopped.")
}
