// Package sqlite stores crawl checkpoints in a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// schema holds one row per checkpoint name. hash is the xxhash of body.
const schema = `
CREATE TABLE IF NOT EXISTS checkpoints (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	hash       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// DB wraps the checkpoint database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path. It is not opened until Open.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database, applies pragmas and ensures the schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open checkpoint database: %w", err)
	}
	// A crawl writes from one goroutine; a single connection keeps
	// in-memory databases alive across statements.
	conn.SetMaxOpenConns(1)

	if err := setup(conn, db.pragmas()); err != nil {
		conn.Close()
		return err
	}
	db.db = conn
	return nil
}

// pragmas returns the statements run on every new connection.
// Write-ahead logging needs a file, so in-memory databases skip it.
func (db *DB) pragmas() []string {
	p := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != memoryPath {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return p
}

func setup(conn *sql.DB, pragmas []string) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("connect to checkpoint database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("create checkpoints table: %w", err)
	}
	return nil
}

// Close closes the connection. It is a no-op if Open never succeeded.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// ExecContext runs a statement that returns no rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
