package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"projects", "entries"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// OpenDB already migrated; running again must be a no-op.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_EnforcesProjectNameUnique(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (name) VALUES ('Alpha')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO projects (name) VALUES ('Alpha')`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO entries (project_id, start_time, end_time, duration, note)
		VALUES (999, '2026-01-05 09:00:00', '2026-01-05 09:10:00', 600, '')`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestOpenDB_EnforcesForeignKeysOnEveryConnection(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "tempo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Hold several pool connections at once so each insert below runs on a
	// distinct connection. The pragma must be in effect on all of them, not
	// just whichever one OpenDB happened to initialize first.
	ctx := context.Background()
	conns := make([]*sql.Conn, 3)
	for i := range conns {
		conn, err := db.Conn(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}

	for _, conn := range conns {
		_, err := conn.ExecContext(ctx, `INSERT INTO entries (project_id, start_time, end_time, duration, note)
			VALUES (999, '2026-01-05 09:00:00', '2026-01-05 09:10:00', 600, '')`)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
		require.NoError(t, conn.Close())
	}
}
