// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/bookbot/pkg/types"
)

// nonSlugRun matches a maximal run of characters outside [a-z0-9].
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text, collapses every run of characters that are not
// ASCII lowercase letters or digits into a single hyphen, and strips
// leading and trailing hyphens. All-punctuation input degenerates to the
// empty string.
func Slugify(text string) string {
	return strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

// FileName derives the on-disk name for a book: "{slug(title)}-{id}.txt".
// The identifier suffix keeps the name non-empty for empty slugs and makes
// collisions across distinct catalog IDs impossible.
func FileName(b types.Book) string {
	return fmt.Sprintf("%s-%d.txt", Slugify(b.Title), b.ID)
}
