package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
	"github.com/custodia-labs/philcanon/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Wiring builds the services the commands use.
type Wiring struct {
	// Settings opens the settings service for a config file path.
	// An empty path selects the default location.
	Settings func(configPath string) (driving.SettingsService, error)

	// Canonicaliser assembles the engine from settings. The returned func
	// releases what the engine holds open.
	Canonicaliser func(ctx context.Context, settings domain.AppSettings) (driving.Canonicaliser, func() error, error)

	// Watcher opens a change watcher over root.
	Watcher func(settings domain.AppSettings, root string) (driven.ChangeWatcher, error)
}

var (
	wiring          Wiring
	settingsService driving.SettingsService

	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "philcanon",
	Short: "Canonicalise football philosophy names in HTML documents",
	Long: `philcanon rewrites free-form references to football managerial
philosophies into canonical Philosophy_NN_Slug identifiers.

Retired and informal names stay resolvable through the alias table, and
every rewrite is journaled so it can be undone.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default ~/.philcanon/config.toml)")
}

// Execute runs the root command with the given wiring.
func Execute(ctx context.Context, w Wiring) error {
	wiring = w
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if settingsService != nil || wiring.Settings == nil {
		return nil
	}
	svc, err := wiring.Settings(configPath)
	if err != nil {
		return err
	}
	settingsService = svc
	return nil
}

// loadSettings returns the current settings with override applied.
func loadSettings(override func(*domain.AppSettings)) (domain.AppSettings, error) {
	if settingsService == nil {
		return domain.AppSettings{}, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.AppSettings{}, err
	}
	if override != nil {
		override(settings)
	}
	return *settings, nil
}

// openCanonicaliser assembles the engine for the current settings.
func openCanonicaliser(
	ctx context.Context,
	override func(*domain.AppSettings),
) (driving.Canonicaliser, domain.AppSettings, func() error, error) {
	if wiring.Canonicaliser == nil {
		return nil, domain.AppSettings{}, nil, errors.New("canonicaliser not configured")
	}
	settings, err := loadSettings(override)
	if err != nil {
		return nil, domain.AppSettings{}, nil, err
	}
	c, closeFn, err := wiring.Canonicaliser(ctx, settings)
	if err != nil {
		return nil, domain.AppSettings{}, nil, err
	}
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return c, settings, closeFn, nil
}

// withoutJournal is the override for read-only commands.
func withoutJournal(s *domain.AppSettings) {
	s.Journal.Enabled = false
}

// closeQuietly runs fn and logs its error.
func closeQuietly(fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("close: %v", err)
	}
}
