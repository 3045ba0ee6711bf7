package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/philcanon/internal/adapters/driving/report"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <text>",
	Short: "Resolve text against the alias index",
	Long: `Prints the canonical name and code that the rewrite passes would use for
text, together with the surface form that matched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	c, _, closeFn, err := openCanonicaliser(cmd.Context(), withoutJournal)
	if err != nil {
		return err
	}
	defer closeQuietly(closeFn)

	text := strings.Join(args, " ")
	m, ok := c.Lookup(text)
	if !ok {
		cmd.Printf("No match for %q.\n", text)
		return nil
	}

	cmd.Println(report.New(cmd.OutOrStdout()).Match(m))
	return nil
}
