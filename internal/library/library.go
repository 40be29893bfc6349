// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library maintains a SQLite index of acquired books so past
// downloads can be listed without rescanning the books directory.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookbot/pkg/types"
)

// DefaultDBPath is the index location used when none is configured.
const DefaultDBPath = "books/library.db"

// Store manages the acquisition index database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the index database, creating parent directories
// and the schema as needed.
func Open(cfg types.LibraryConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY,
		title TEXT,
		authors TEXT,
		source_url TEXT,
		path TEXT,
		fetched_at TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record upserts an acquisition. Re-downloading a book overwrites its file
// on disk, so the index row is replaced rather than duplicated.
func (s *Store) Record(ctx context.Context, rec types.AcquiredBook) error {
	authors, err := json.Marshal(rec.Authors)
	if err != nil {
		return fmt.Errorf("marshaling authors: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO books (id, title, authors, source_url, path, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, string(authors), rec.SourceURL, rec.Path,
		rec.FetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording book %d: %w", rec.ID, err)
	}
	return nil
}

// List returns all recorded acquisitions, most recent first.
func (s *Store) List(ctx context.Context) ([]types.AcquiredBook, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, authors, source_url, path, fetched_at
		 FROM books ORDER BY fetched_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var out []types.AcquiredBook
	for rows.Next() {
		var rec types.AcquiredBook
		var authors, fetchedAt string
		if err := rows.Scan(&rec.ID, &rec.Title, &authors, &rec.SourceURL, &rec.Path, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if authors != "" {
			if err := json.Unmarshal([]byte(authors), &rec.Authors); err != nil {
				return nil, fmt.Errorf("parsing authors for book %d: %w", rec.ID, err)
			}
		}
		if t, parseErr := time.Parse(time.RFC3339, fetchedAt); parseErr == nil {
			rec.FetchedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
