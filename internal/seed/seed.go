// Package seed loads the initial review collection at startup.
package seed

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/evcraddock/review-analyzer/internal/review"
)

// Load reads seed reviews from path, choosing the reader by extension.
// An empty path yields no reviews.
func Load(path string) ([]review.Review, error) {
	if path == "" {
		return nil, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadDB(path)
	default:
		return nil, fmt.Errorf("unsupported seed file %s (want .csv or .db)", path)
	}
}

// admit keeps only records that satisfy the submission rules so the store
// never holds a review a client could not have posted. Records without an
// ID are given one.
func admit(records []review.Review, source string) []review.Review {
	out := make([]review.Review, 0, len(records))
	for i, r := range records {
		if err := review.Validate(r.ReviewBody, r.Location); err != nil {
			slog.Warn("skipping seed review", "source", source, "row", i+1, "id", r.ReviewID, "error", err)
			continue
		}
		if r.ReviewID == "" {
			r.ReviewID = uuid.NewString()
		}
		out = append(out, r)
	}
	return out
}
