// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookbot pipeline.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Author identifies a book author as returned by the catalog.
type Author struct {
	// Name is the author's display name (e.g. "Stoker, Bram").
	Name string `json:"name" yaml:"name"`

	// BirthYear and DeathYear are optional; the catalog omits them for
	// anonymous or corporate authors.
	BirthYear *int `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	DeathYear *int `json:"death_year,omitempty" yaml:"death_year,omitempty"`
}

// Format pairs a content-type label with the URL of that representation.
type Format struct {
	ContentType string `json:"content_type" yaml:"content_type"`
	URL         string `json:"url" yaml:"url"`
}

// Formats is the ordered list of representations a catalog entry exposes.
//
// The catalog serves formats as a JSON object. Selection is
// first-match-wins on the document order of that object, so decoding into
// a Go map (which randomizes iteration) would make the choice
// nondeterministic. Formats therefore decodes the object token by token,
// preserving the order keys appear in the response.
type Formats []Format

// UnmarshalJSON decodes a JSON object into an ordered Format slice.
func (f *Formats) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding formats: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding formats: expected object, got %v", tok)
	}

	out := make(Formats, 0, 8)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding format key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decoding format key: expected string, got %v", keyTok)
		}
		var u string
		if err := dec.Decode(&u); err != nil {
			return fmt.Errorf("decoding format URL for %q: %w", key, err)
		}
		out = append(out, Format{ContentType: key, URL: u})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding formats: %w", err)
	}

	*f = out
	return nil
}

// MarshalJSON encodes the formats back into a JSON object in slice order.
func (f Formats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.ContentType)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(pair.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Book represents one catalog entry from a search response. Instances are
// read-only after decoding.
type Book struct {
	// ID is the catalog's numeric identifier, unique within the catalog.
	ID int `json:"id" yaml:"id"`

	// Title is the book title as returned by the catalog; may be empty.
	Title string `json:"title" yaml:"title"`

	// Authors lists the authors in catalog order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Formats maps content-type labels to retrieval URLs, in response
	// document order.
	Formats Formats `json:"formats" yaml:"formats"`
}

// AuthorsDisplay returns the comma-joined author names for list display,
// or "Unknown" when the catalog reports no authors.
func (b Book) AuthorsDisplay() string {
	if len(b.Authors) == 0 {
		return "Unknown"
	}
	names := make([]string, len(b.Authors))
	for i, a := range b.Authors {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
