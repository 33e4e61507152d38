package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database at the given path, creating the parent
// directory if needed. ":memory:" opens an in-memory database (used by
// tests). WAL mode and foreign-key enforcement are enabled and the schema is
// migrated before the handle is returned.
//
// The returned handle is meant to be opened once at process start and closed
// on the single shutdown path.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	// Pragmas travel in the DSN so the driver applies them to every pooled
	// connection. A plain PRAGMA statement would only reach the one
	// connection that happened to execute it, and tea.Cmd callbacks run on
	// goroutines that may check out others.
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if memory {
		// Each in-memory connection is its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
