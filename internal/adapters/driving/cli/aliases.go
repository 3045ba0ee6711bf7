package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
)

var aliasesCollisions bool

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List the alias index",
	Long: `Lists every surface form in matching order (longest first) with its
source and canonical code. Use --collisions to list only surface forms that
were registered for more than one target.`,
	Args: cobra.NoArgs,
	RunE: runAliases,
}

func init() {
	aliasesCmd.Flags().BoolVar(&aliasesCollisions, "collisions", false, "List only colliding surface forms")
	rootCmd.AddCommand(aliasesCmd)
}

func runAliases(cmd *cobra.Command, _ []string) error {
	c, _, closeFn, err := openCanonicaliser(cmd.Context(), withoutJournal)
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	r := report.New(cmd.OutOrStdout())

	if aliasesCollisions {
		collisions := c.Collisions()
		if len(collisions) == 0 {
			cmd.Println("No collisions.")
			return nil
		}
		cmd.Println(r.Title(fmt.Sprintf("Collisions (%d)", len(collisions))))
		for _, col := range collisions {
			cmd.Println(r.Collision(col))
		}
		return nil
	}

	entries := c.Aliases()
	cmd.Println(r.Title(fmt.Sprintf("Aliases (%d)", len(entries))))
	for _, e := range entries {
		cmd.Println(r.Alias(e))
	}
	return nil
}
