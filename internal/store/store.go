// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists downloaded book content and metadata records
// under a destination directory, and owns the file naming policy.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/bookbot/pkg/types"
)

const metadataDir = "metadata"

// DefaultBooksDir is the destination directory used when none is configured.
const DefaultBooksDir = "books"

// Store writes downloaded content into a destination directory.
type Store struct {
	dir string
}

// New returns a store rooted at the configured books directory. The
// directory is not created until the first write.
func New(cfg types.StoreConfig) *Store {
	dir := cfg.BooksDir
	if dir == "" {
		dir = DefaultBooksDir
	}
	return &Store{dir: dir}
}

// Dir returns the destination directory.
func (s *Store) Dir() string {
	return s.dir
}

// Persist writes content to fileName under the destination directory,
// creating the directory (and parents) if absent and overwriting any
// existing file of the same name. It returns the written path.
func (s *Store) Persist(fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
