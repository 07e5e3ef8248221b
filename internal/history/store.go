// Package history keeps the list of recently opened playlists in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recently opened playlist
type Entry struct {
	Path     string
	Name     string
	Type     string
	Tracks   int
	OpenedAt time.Time
}

// Store is a SQLite backed history of opened playlists.
// Safe for concurrent use.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS recent_playlists (
    path TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    tracks INTEGER NOT NULL DEFAULT 0,
    opened_at INTEGER NOT NULL       -- UnixNano
);

CREATE INDEX IF NOT EXISTS idx_recent_opened_at ON recent_playlists(opened_at);
`

// Open creates or opens the history database at path
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts the entry or refreshes an existing one with the same path
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.Path == "" {
		return fmt.Errorf("history entry has no path")
	}
	if entry.OpenedAt.IsZero() {
		entry.OpenedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recent_playlists (path, name, type, tracks, opened_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			tracks = excluded.tracks,
			opened_at = excluded.opened_at`,
		entry.Path, entry.Name, entry.Type, entry.Tracks, entry.OpenedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record %s: %w", entry.Path, err)
	}
	return nil
}

// Recent returns up to limit entries, most recently opened first.
// A limit of zero or less returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT path, name, type, tracks, opened_at FROM recent_playlists ORDER BY opened_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent playlists: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var opened int64
		if err := rows.Scan(&e.Path, &e.Name, &e.Type, &e.Tracks, &opened); err != nil {
			return nil, fmt.Errorf("scan recent playlist: %w", err)
		}
		e.OpenedAt = time.Unix(0, opened)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove deletes the entry for path. Removing a missing entry is not an error.
func (s *Store) Remove(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recent_playlists WHERE path = ?`, path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Prune keeps the newest keep entries and deletes the rest
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM recent_playlists WHERE path NOT IN (
			SELECT path FROM recent_playlists ORDER BY opened_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
