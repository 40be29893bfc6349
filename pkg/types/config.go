// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CatalogConfig holds settings for the catalog client.
type CatalogConfig struct {
	// BaseURL is the catalog search endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// SearchTimeout bounds a search request (default 20s).
	SearchTimeout time.Duration `json:"search_timeout" yaml:"search_timeout"`

	// DownloadTimeout bounds a content download (default 60s). Downloads
	// get a larger bound than searches because book payloads are whole
	// files.
	DownloadTimeout time.Duration `json:"download_timeout" yaml:"download_timeout"`

	// UserAgent is the User-Agent header sent with catalog requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxResults caps how many selectable entries are shown (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// StoreConfig holds settings for local content persistence.
type StoreConfig struct {
	// BooksDir is the destination directory for downloaded books
	// (default "books"). Created on first write if absent.
	BooksDir string `json:"books_dir" yaml:"books_dir"`
}

// LibraryConfig holds settings for the acquisition index.
type LibraryConfig struct {
	// DBPath is the SQLite database file recording acquired books
	// (default "books/library.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups all component configurations for the CLI.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Library LibraryConfig `json:"library" yaml:"library"`
}
