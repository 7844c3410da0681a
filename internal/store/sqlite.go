// Package store persists collector results between status line invocations.
//
// The host CLI starts a fresh process for every refresh, so anything that is
// expensive to compute (git queries in particular) is kept in a small SQLite
// database with a per-entry expiry.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
	now func() time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dbPath, err)
	}

	// Several status line processes may run at once
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: enable wal: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA busy_timeout=200"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}

	db := &DB{DB: sqlDB, now: time.Now}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS collector_cache (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		expires_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_collector_cache_expires ON collector_cache(expires_at);
	`

	_, err := db.Exec(query)
	return err
}

// Get returns the cached value for key. Expired rows are reported as misses.
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM collector_cache WHERE key = ? AND expires_at > ?`,
		key, db.now().UnixMilli(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key until ttl has elapsed
func (db *DB) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	query := `
	INSERT INTO collector_cache (key, value, expires_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		expires_at = excluded.expires_at
	`

	expires := db.now().Add(ttl).UnixMilli()
	if _, err := db.ExecContext(ctx, query, key, value, expires); err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the cache
func (db *DB) Delete(ctx context.Context, key string) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM collector_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

// Purge deletes every expired row and returns how many were removed
func (db *DB) Purge(ctx context.Context) (int64, error) {
	res, err := db.ExecContext(ctx,
		"DELETE FROM collector_cache WHERE expires_at <= ?", db.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("store: purge: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
