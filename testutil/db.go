// Package testutil provides shared helpers for tests that need a real
// session database. Each helper opens a throwaway SQLite file under the
// test's temporary directory, so tests are isolated and need no cleanup of
// their own.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/jmoraes/planner/internal/session"
)

// OpenStore opens a migrated session store on a fresh database file.
// The store is closed automatically when the test (and all its subtests)
// finish.
func OpenStore(t *testing.T) *session.SQLite {
	t.Helper()

	store, err := session.Open(DBPath(t))
	if err != nil {
		t.Fatalf("testutil.OpenStore: %v", err)
	}

	t.Cleanup(func() { store.Close() })
	return store
}

// OpenSQLDB opens a raw *sql.DB on a fresh database file, for tests that
// drive migrations themselves. The connection is closed automatically when
// the test finishes.
func OpenSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", DBPath(t))
	if err != nil {
		t.Fatalf("testutil.OpenSQLDB: open: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// DBPath returns a database file path under the test's temp directory.
func DBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "planner.db")
}
