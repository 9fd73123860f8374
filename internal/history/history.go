// Package history provides a SQLite-backed log of completed conversions.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS conversions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT NOT NULL DEFAULT '',
	projects   INTEGER NOT NULL DEFAULT 0,
	todos      INTEGER NOT NULL DEFAULT 0,
	url_length INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at);
`

// Entry is one recorded conversion. Source is a free-form label: a file
// path for the watcher and CLI, or "api" for HTTP conversions.
type Entry struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Projects  int       `json:"projects"`
	ToDos     int       `json:"todos"`
	URLLength int       `json:"url_length"`
	CreatedAt time.Time `json:"created_at"`
}

// DB wraps a sql.DB with history operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends one conversion to the log.
func (db *DB) Record(e Entry) error {
	_, err := db.conn.Exec(
		`INSERT INTO conversions (source, projects, todos, url_length) VALUES (?, ?, ?, ?)`,
		e.Source, e.Projects, e.ToDos, e.URLLength,
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns the most recent conversions, newest first. limit <= 0
// defaults to 50.
func (db *DB) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.Query(
		`SELECT id, source, projects, todos, url_length, created_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.Projects, &e.ToDos, &e.URLLength, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
