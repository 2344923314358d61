// Package db provides SQLite access for review seed databases.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the default seed database path: ~/.review-analyzer/reviews.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".review-analyzer", "reviews.db"), nil
}

// ErrNoReviewsTable is returned by OpenReadOnly when the database has no reviews table.
var ErrNoReviewsTable = errors.New("no reviews table")

// Open opens (or creates) a writable seed database at the given path,
// enables WAL mode, and runs migrations.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := configure(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}

	if err := migrate(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("running migrations: %w (also failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// configure sets SQLite pragmas.
func configure(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("executing %s: %w", p, err)
		}
	}

	return nil
}

// OpenReadOnly opens an existing seed database without writing to it.
// No pragmas or migrations run; the file must already hold a reviews table.
func OpenReadOnly(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seed database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	var n int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'reviews'",
	).Scan(&n)
	if err == nil && n == 0 {
		err = fmt.Errorf("%s: %w", path, ErrNoReviewsTable)
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Checkpoint folds the write-ahead log back into the database file and
// leaves it in rollback-journal mode, so the file can be copied or
// opened read-only on its own.
func Checkpoint(db *sql.DB) error {
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=DELETE").Scan(&mode); err != nil {
		return fmt.Errorf("checkpointing: %w", err)
	}
	if mode != "delete" {
		return fmt.Errorf("checkpointing: journal mode still %s", mode)
	}
	return nil
}
