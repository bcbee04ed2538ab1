// Package sqlstore implements the repositories with hand written SQL over
// SQLite. Dates are stored as YYYY-MM-DD text.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS hosts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		rating REAL NOT NULL DEFAULT 0.0
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		beds INTEGER NOT NULL DEFAULT 1,
		features TEXT,
		price REAL NOT NULL DEFAULT 0.0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rooms_property_id ON rooms(property_id)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id INTEGER NOT NULL REFERENCES rooms(id),
		guest_name TEXT NOT NULL,
		language TEXT NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT NOT NULL
	)`,
}

// Open connects to the SQLite file at path. Use ":memory:" for a throwaway
// database; the pool is then limited to one connection so every statement
// sees the same database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", path, err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// EnsureSchema creates missing tables. Running it again is a no-op.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: ensure schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
