package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/philcanon/internal/bootstrap"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
	"github.com/custodia-labs/philcanon/internal/core/services"
)

const (
	sampleHTML    = "<p>(Klopp)</p>\n"
	rewrittenHTML = "<p>(Philosophy_45_Bielsa_Intensity)</p>\n"
)

// testWiring assembles the real engine with the journal in a temp dir.
func testWiring() Wiring {
	return Wiring{
		Canonicaliser: func(ctx context.Context, settings domain.AppSettings) (driving.Canonicaliser, func() error, error) {
			app, err := bootstrap.New(ctx, settings)
			if err != nil {
				return nil, nil, err
			}
			return app.Canonicaliser, app.Close, nil
		},
		Watcher: func(settings domain.AppSettings, root string) (driven.ChangeWatcher, error) {
			w, err := bootstrap.NewWatcher(settings, root)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}

// setupCLI installs test services and returns the backing config store.
func setupCLI(t *testing.T) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore()
	require.NoError(t, store.Set(services.KeyJournalDir, t.TempDir()))

	oldWiring, oldSettings := wiring, settingsService
	wiring = testWiring()
	settingsService = services.NewSettingsService(store)
	resetCommands(rootCmd)

	t.Cleanup(func() {
		wiring, settingsService = oldWiring, oldSettings
		resetCommands(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return store
}

// resetCommands restores flag defaults and contexts left by earlier runs.
func resetCommands(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SetContext(context.Background())
	for _, sub := range cmd.Commands() {
		resetCommands(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
