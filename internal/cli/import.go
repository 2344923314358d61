package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/review-analyzer/internal/db"
	"github.com/evcraddock/review-analyzer/internal/seed"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv> [db]",
		Short: "Build a SQLite seed database from a CSV file",
		Long:  "Copy the valid reviews in a CSV file into a SQLite seed database that `ra serve --seed` can load. Reviews already present (by ReviewId) are skipped. The database defaults to ~/.review-analyzer/reviews.db.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := ""
			if len(args) == 2 {
				dbPath = args[1]
			} else {
				var err error
				dbPath, err = db.DefaultPath()
				if err != nil {
					return err
				}
			}

			n, err := seed.Import(args[0], dbPath)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"db": dbPath, "imported": n})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d reviews into %s\n", n, dbPath)
			return err
		},
	}
}
