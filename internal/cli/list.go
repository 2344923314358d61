package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/review-analyzer/internal/client"
)

func newListCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews with sentiment scores",
		Long:  "List reviews from a running server, optionally filtered by location and date range. Unparseable dates are ignored by the server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := newAPIClient().ListReviews(opts)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			return printReviewTable(cmd.OutOrStdout(), reviews)
		},
	}

	cmd.Flags().StringVar(&opts.Location, "location", "", "only reviews for this location (exact match)")
	cmd.Flags().StringVar(&opts.StartDate, "start", "", "only reviews at or after this date (YYYY-MM-DD[ HH:MM:SS])")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "only reviews at or before this date (YYYY-MM-DD[ HH:MM:SS])")

	return cmd
}
