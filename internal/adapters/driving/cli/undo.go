package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
	"github.com/custodia-labs/philcanon/internal/core/domain"
)

var undoCmd = &cobra.Command{
	Use:   "undo [run-id]",
	Short: "Restore the files rewritten by a run",
	Long: `Restores the originals recorded for run-id, or for the latest finished run
when no id is given.

Files edited since the run are left alone and reported; run undo again
after resolving them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	c, _, closeFn, err := openCanonicaliser(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	runID := ""
	if len(args) > 0 {
		runID = args[0]
	}

	res, err := c.Undo(cmd.Context(), runID)
	if errors.Is(err, domain.ErrNothingToUndo) {
		if runID == "" {
			cmd.Println("Nothing to undo.")
		} else {
			cmd.Printf("Nothing to undo: %v\n", err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	r := report.New(cmd.OutOrStdout())
	for _, path := range res.Restored {
		cmd.Println(r.Restored(report.Relative(res.Run.Root, path)))
	}
	for _, f := range res.Failed {
		cmd.Println(r.Failed(domain.FileResult{Path: report.Relative(res.Run.Root, f.Path), Err: f.Err}))
	}
	cmd.Println()

	if len(res.Failed) > 0 {
		return fmt.Errorf("undo of run %s incomplete: %d files could not be restored", res.Run.ID, len(res.Failed))
	}
	cmd.Printf("Undid run %s. Restored %d files.\n", res.Run.ID, len(res.Restored))
	return nil
}
