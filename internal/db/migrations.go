package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reviews (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		review_id   TEXT    NOT NULL UNIQUE,
		location    TEXT    NOT NULL,
		timestamp   TEXT    NOT NULL,
		review_body TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_location ON reviews(location)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
