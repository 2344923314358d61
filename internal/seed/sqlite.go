package seed

import (
	"database/sql"
	"fmt"

	"github.com/evcraddock/review-analyzer/internal/db"
	"github.com/evcraddock/review-analyzer/internal/review"
)

// Repository reads and writes seed reviews in a SQLite database.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a seed repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores reviews in a single transaction, skipping IDs that already exist.
// It returns the number of rows added.
func (r *Repository) Insert(reviews []review.Review) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO reviews
		(review_id, location, timestamp, review_body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	added := 0
	for _, rv := range reviews {
		res, err := stmt.Exec(rv.ReviewID, rv.Location, rv.Timestamp, rv.ReviewBody)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("inserting review %s: %w", rv.ReviewID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("checking rows affected: %w", err)
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return added, nil
}

// List returns every stored review in insertion order.
func (r *Repository) List() (reviews []review.Review, err error) {
	rows, err := r.db.Query(
		"SELECT review_id, location, timestamp, review_body FROM reviews ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ReviewID, &rv.Location, &rv.Timestamp, &rv.ReviewBody); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}

	return reviews, nil
}

// LoadDB reads reviews from an existing SQLite seed database.
// The file is opened read-only and left untouched.
func LoadDB(path string) ([]review.Review, error) {
	d, err := db.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = d.Close()
	}()

	records, err := NewRepository(d).List()
	if err != nil {
		return nil, err
	}
	return admit(records, path), nil
}

// Import copies the reviews in a CSV file into a SQLite seed database,
// creating it if needed. It returns the number of reviews added.
func Import(csvPath, dbPath string) (int, error) {
	records, err := LoadCSV(csvPath)
	if err != nil {
		return 0, err
	}

	d, err := db.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = d.Close()
	}()

	n, err := NewRepository(d).Insert(records)
	if err != nil {
		return 0, err
	}
	if err := db.Checkpoint(d); err != nil {
		return 0, err
	}
	return n, nil
}
