package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so Migrate can
// run on every startup against both fresh and existing databases.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE CHECK(name <> '')
	)`,

	`CREATE TABLE IF NOT EXISTS entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL REFERENCES projects(id),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		duration   INTEGER NOT NULL CHECK(duration >= 0),
		note       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_project ON entries(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_start ON entries(start_time)`,
}
