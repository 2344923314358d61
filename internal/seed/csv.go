package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evcraddock/review-analyzer/internal/review"
)

// columns are the header names a seed CSV must carry.
var columns = []string{"ReviewId", "Location", "Timestamp", "ReviewBody"}

// LoadCSV reads reviews from a CSV file with a header row.
func LoadCSV(path string) ([]review.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return admit(records, path), nil
}

// ReadCSV parses review records from r. Columns may appear in any order and
// unknown columns are ignored. Rows are returned unvalidated.
func ReadCSV(r io.Reader) ([]review.Review, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	field := func(row []string, name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []review.Review
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		out = append(out, review.Review{
			ReviewID:   field(row, "ReviewId"),
			Location:   field(row, "Location"),
			Timestamp:  field(row, "Timestamp"),
			ReviewBody: field(row, "ReviewBody"),
		})
	}
	return out, nil
}
