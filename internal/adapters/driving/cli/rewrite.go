package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
	"github.com/custodia-labs/philcanon/internal/connectors/filesystem"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
	"github.com/custodia-labs/philcanon/internal/logger"
)

var (
	rewriteDryRun    bool
	rewriteRecursive bool
	rewriteWorkers   int
	rewriteNoJournal bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [dir]",
	Short: "Rewrite philosophy names to canonical form",
	Long: `Rewrites every eligible document in dir (default: the current directory).

Three passes run in order: parenthetical references, labeled metric-name
spans and pill spans. Files without a substitution are left untouched.
Originals are journaled so the run can be reverted with 'philcanon undo'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteDryRun, "dry-run", false, "Report changes without writing files")
	rewriteCmd.Flags().BoolVarP(&rewriteRecursive, "recursive", "r", false, "Descend into subdirectories")
	rewriteCmd.Flags().IntVarP(&rewriteWorkers, "workers", "w", 0, "Documents processed concurrently (default from settings)")
	rewriteCmd.Flags().BoolVar(&rewriteNoJournal, "no-journal", false, "Do not record the run for undo")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	root, err := targetDir(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c, settings, closeFn, err := openCanonicaliser(ctx, rewriteOverrides(cmd))
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	res, err := c.Run(ctx, driving.RunOptions{
		Root:    root,
		DryRun:  rewriteDryRun,
		Workers: settings.Rewrite.Workers,
	})
	if res == nil {
		return err
	}

	r := report.New(cmd.OutOrStdout())
	printResults(cmd, r, res)
	if logger.IsVerbose() {
		cmd.Println(r.Summary(res, settings.Rewrite.Passes))
	}
	if res.RunID != "" && res.Updated() > 0 {
		cmd.Printf("Run %s journaled. Revert with 'philcanon undo %s'.\n", res.RunID, res.RunID)
	}
	if err != nil {
		return err
	}

	if n := len(res.Files); n > 0 && len(res.Failed()) == n {
		return fmt.Errorf("all %d files failed", n)
	}
	return nil
}

// rewriteOverrides applies the flags the user set explicitly.
func rewriteOverrides(cmd *cobra.Command) func(*domain.AppSettings) {
	return func(s *domain.AppSettings) {
		if cmd.Flags().Changed("recursive") {
			s.Rewrite.Recursive = rewriteRecursive
		}
		if cmd.Flags().Changed("workers") {
			s.Rewrite.Workers = rewriteWorkers
		}
		if rewriteNoJournal {
			s.Journal.Enabled = false
		}
	}
}

func printResults(cmd *cobra.Command, r *report.Renderer, res *domain.RunReport) {
	for _, f := range res.Files {
		switch {
		case f.Err != nil:
			cmd.Println(r.Failed(domain.FileResult{Path: report.Relative(res.Root, f.Path), Err: f.Err}))
		case f.Changed:
			cmd.Println(r.Updated(report.Relative(res.Root, f.Path), res.DryRun))
		}
	}
	cmd.Println()
	cmd.Println(r.Done(res))
}

// targetDir resolves the optional directory argument to an absolute path.
func targetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = filesystem.ResolvePath(args[0])
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return abs, nil
}
