package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled rewrite runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	c, _, closeFn, err := openCanonicaliser(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	runs, err := c.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	r := report.New(cmd.OutOrStdout())
	for _, run := range runs {
		cmd.Println(r.Run(run))
	}
	return nil
}
