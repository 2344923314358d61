package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/review-analyzer/internal/review"
)

func newSubmitCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "submit <review text>",
		Short: "Submit a new review",
		Long:  "Submit a review to a running server. The location must be one of the values printed by `ra locations`.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := strings.Join(args, " ")

			// Checked locally for a faster error; the server validates again.
			if err := review.Validate(body, location); err != nil {
				return err
			}

			r, err := newAPIClient().SubmitReview(body, location)
			if err != nil {
				return fmt.Errorf("submitting review: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), r)
			}
			printReviewSummary(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "review location, e.g. \"Denver, Colorado\" (required)")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List locations accepted for new reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locs := review.Locations()
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), locs)
			}
			for _, l := range locs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
