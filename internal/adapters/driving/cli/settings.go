package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in the settings file.

Flags given to individual commands override these values for that run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Parses value for key and saves it. Lists are comma separated.

Example:
  philcanon settings set rewrite.passes parenthetical,pill`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settings keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Rewrite]")
	cmd.Printf("  Extensions: %s\n", strings.Join(settings.Rewrite.Extensions, ", "))
	cmd.Printf("  Recursive: %s\n", yesNo(settings.Rewrite.Recursive))
	cmd.Printf("  Passes: %s\n", strings.Join(settings.Rewrite.Passes, ", "))
	cmd.Printf("  Workers: %d\n", settings.Rewrite.Workers)
	cmd.Println()

	cmd.Println("[Match]")
	cmd.Printf("  Min alias length: %d\n", settings.Match.MinAliasLength)
	cmd.Println()

	cmd.Println("[Labels]")
	cmd.Printf("  Metric: %s\n", settings.Labels.Metric)
	cmd.Printf("  Pill: %s\n", settings.Labels.Pill)
	cmd.Println()

	cmd.Println("[Vocabulary]")
	if settings.Vocabulary.File != "" {
		cmd.Printf("  File: %s\n", settings.Vocabulary.File)
	} else {
		cmd.Println("  File: (built-in)")
	}
	cmd.Println()

	cmd.Println("[Journal]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Journal.Enabled))
	if settings.Journal.Dir != "" {
		cmd.Printf("  Directory: %s\n", settings.Journal.Dir)
	} else {
		cmd.Println("  Directory: (default)")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
