package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Statements are idempotent and run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS history_records (
		id            TEXT PRIMARY KEY,
		work_seconds  INTEGER NOT NULL CHECK(work_seconds >= 0),
		pause_seconds INTEGER NOT NULL CHECK(pause_seconds >= 0),
		end_unix      INTEGER NOT NULL CHECK(end_unix >= 0),
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_records_end ON history_records(end_unix)`,
}
