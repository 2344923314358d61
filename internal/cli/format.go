package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evcraddock/review-analyzer/internal/review"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printReviewSummary prints a single review in text format.
func printReviewSummary(w io.Writer, r *review.Review) {
	fmt.Fprintf(w, "Review %s\n", r.ReviewID)
	fmt.Fprintf(w, "  Location: %s\n", r.Location)
	fmt.Fprintf(w, "  Time:     %s\n", r.Timestamp)
	fmt.Fprintf(w, "  Review:   %s\n", r.ReviewBody)
}

// printReviewTable prints scored reviews as a formatted table.
func printReviewTable(w io.Writer, reviews []review.Scored) error {
	if len(reviews) == 0 {
		_, err := fmt.Fprintln(w, "No reviews found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TIMESTAMP\tLOCATION\tMOOD\tCOMPOUND\tREVIEW"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "---------\t--------\t----\t--------\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, r := range reviews {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%+.3f\t%s\n",
			r.Timestamp, r.Location, moodLabel(r.Sentiment.Compound), r.Sentiment.Compound,
			truncate(r.ReviewBody, 50)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d reviews\n", len(reviews))
	return err
}

// moodLabel buckets a compound score using the conventional VADER thresholds.
func moodLabel(compound float64) string {
	switch {
	case compound >= 0.05:
		return "positive"
	case compound <= -0.05:
		return "negative"
	default:
		return "neutral"
	}
}

// truncate shortens s to maxLen runes, ending with "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
