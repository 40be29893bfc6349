// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/pdiddy/bookbot/pkg/types"
)

// plainTextPrefix marks a content-type label as a plain-text representation
// (e.g. "text/plain; charset=utf-8").
const plainTextPrefix = "text/plain"

// PlainTextURL returns the locator of the first plain-text representation
// in the book's format list, in response document order. At most one
// locator is chosen even when several plain-text variants exist.
func PlainTextURL(b types.Book) (string, bool) {
	for _, f := range b.Formats {
		if strings.HasPrefix(f.ContentType, plainTextPrefix) {
			return f.URL, true
		}
	}
	return "", false
}

// IsSelectable reports whether the book exposes a plain-text representation.
func IsSelectable(b types.Book) bool {
	_, ok := PlainTextURL(b)
	return ok
}

// Selectable returns the books that expose a plain-text representation,
// capped at max entries. Entries beyond the cap are silently dropped.
func Selectable(books []types.Book, max int) []types.Book {
	var out []types.Book
	for _, b := range books {
		if !IsSelectable(b) {
			continue
		}
		out = append(out, b)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
