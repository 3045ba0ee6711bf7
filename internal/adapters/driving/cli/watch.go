package cli

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
)

var (
	watchDryRun    bool
	watchRecursive bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rewrite documents as they change",
	Long: `Watches dir (default: the current directory) and rewrites every eligible
document that is created or modified, until interrupted with Ctrl+C.

All files rewritten during one session are journaled as a single run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "Report changes without writing files")
	watchCmd.Flags().BoolVarP(&watchRecursive, "recursive", "r", false, "Watch subdirectories too")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if wiring.Watcher == nil {
		return errors.New("watcher not configured")
	}

	root, err := targetDir(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c, settings, closeFn, err := openCanonicaliser(ctx, func(s *domain.AppSettings) {
		if cmd.Flags().Changed("recursive") {
			s.Rewrite.Recursive = watchRecursive
		}
	})
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	w, err := wiring.Watcher(settings, root)
	if err != nil {
		return err
	}
	defer closeQuietly(w.Close)

	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	r := report.New(cmd.OutOrStdout())
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", root)

	updated := 0
	err = c.Watch(ctx, driving.RunOptions{Root: root, DryRun: watchDryRun}, changes, func(f domain.FileResult) {
		switch {
		case f.Err != nil:
			cmd.Println(r.Failed(domain.FileResult{Path: report.Relative(root, f.Path), Err: f.Err}))
		case f.Changed:
			updated++
			cmd.Println(r.Updated(report.Relative(root, f.Path), watchDryRun))
		}
	})

	cmd.Printf("\nStopped. Updated %d files.\n", updated)
	return err
}
