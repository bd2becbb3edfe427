package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
	"github.com/pressly/goose/v3"

	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/migrations"
)

// SQLite is the Store implementation backed by an on-device SQLite file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// Open creates or opens the session database at path and brings its schema
// up to date via the embedded goose migrations. Safe to call repeatedly.
//
// SQLite allows only one writer at a time, so the pool is capped at a single
// connection; WAL mode keeps reads cheap and the busy timeout absorbs brief
// lock contention from a previous unclean shutdown.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("session.Open: %w: %w", domain.ErrStorageUnavailable, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("session.Open: %w: %w", domain.ErrStorageUnavailable, err)
		}
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("session.Open: create goose provider: %w: %w", domain.ErrStorageUnavailable, err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("session.Open: run migrations: %w: %w", domain.ErrStorageUnavailable, err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Save overwrites the active-trip pointer (single slot, last write wins).
func (s *SQLite) Save(ctx context.Context, tripID string) error {
	const q = `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, q, Key, tripID); err != nil {
		return fmt.Errorf("session.SQLite.Save: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Get returns the saved trip id, or domain.ErrNoActiveTrip when the slot is
// empty.
func (s *SQLite) Get(ctx context.Context) (string, error) {
	const q = `SELECT value FROM session WHERE key = ?`

	var tripID string
	err := s.db.QueryRowContext(ctx, q, Key).Scan(&tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("session.SQLite.Get: %w", domain.ErrNoActiveTrip)
	}
	if err != nil {
		return "", fmt.Errorf("session.SQLite.Get: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return tripID, nil
}

// Remove clears the pointer. A missing row is not an error.
func (s *SQLite) Remove(ctx context.Context) error {
	const q = `DELETE FROM session WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, q, Key); err != nil {
		return fmt.Errorf("session.SQLite.Remove: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}
