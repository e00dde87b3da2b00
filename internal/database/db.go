package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petminder/internal/database/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNotFound is returned by lookups when no record has the given id.
var ErrNotFound = errors.New("record not found")

// DB wraps the embedded SQLite database that backs all record and
// preference storage.
type DB struct {
	*sql.DB
}

// New opens the SQLite database at path and migrates it to the latest
// schema version. path can be a file path or ":memory:" for an in-memory
// database.
func New(path string) (*DB, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &DB{DB: db}, nil
}

// OpenConnection opens and configures a SQLite connection without running
// migrations. Exported for tools and tests that manage the schema
// themselves.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: the store serializes access per collection, and a
	// single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// ClearAll removes every pet, every task and all stored preferences in a
// single transaction. Preference scalars revert to their documented
// defaults on the next read.
func (db *DB) ClearAll(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"tasks", "pets", "preferences"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	return nil
}
