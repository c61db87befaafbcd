// Package sqlite provides the SQLite-backed implementation of the
// osloplan catalog service.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkleven/osloplan"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// The catalog owns the store exclusively for the process lifetime, so a
// failure here is fatal to initialization; the catalog never silently
// starts empty.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables if they don't exist and keeps
// the fixed category metadata current.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY,
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			display_order INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL REFERENCES categories(name),
			subcategory TEXT NOT NULL DEFAULT '',
			doc_type TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 1,
			department TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date_published TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL UNIQUE,
			last_verified TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_documents_category ON documents(category);
		CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
	`

	if _, err := db.db.Exec(schema); err != nil {
		return err
	}

	// The category set is fixed; refresh metadata in place.
	for _, c := range osloplan.Categories() {
		_, err := db.db.Exec(`
			INSERT INTO categories (name, icon, color, description, display_order)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET
				icon = excluded.icon,
				color = excluded.color,
				description = excluded.description,
				display_order = excluded.display_order
		`, c.Name, c.Icon, c.Color, c.Description, c.DisplayOrder)
		if err != nil {
			return err
		}
	}

	return nil
}
