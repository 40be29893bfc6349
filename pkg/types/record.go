// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AcquiredBook records a completed acquisition: the catalog entry that was
// selected and where its content landed on disk. It is the shape persisted
// to metadata files and the library index.
type AcquiredBook struct {
	// ID is the catalog identifier of the book.
	ID int `json:"id" yaml:"id"`

	// Title is the catalog title at acquisition time.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author display names.
	Authors []string `json:"authors" yaml:"authors"`

	// SourceURL is the plain-text locator the content was fetched from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Path is where the content was written.
	Path string `json:"path" yaml:"path"`

	// FetchedAt is when the acquisition completed.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
