// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/bookbot/pkg/types"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Dracula", "dracula"},
		{"punctuation collapses to single hyphens", "Frankenstein; Or, The Modern Prometheus", "frankenstein-or-the-modern-prometheus"},
		{"digits kept", "Catch 22", "catch-22"},
		{"leading and trailing punctuation stripped", "...Moby Dick!!!", "moby-dick"},
		{"empty input", "", ""},
		{"all punctuation", "?!...;;;", ""},
		{"whitespace runs", "A   Tale  of\tTwo Cities", "a-tale-of-two-cities"},
		{"uppercase folded", "THE TIME MACHINE", "the-time-machine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Frankenstein; Or, The Modern Prometheus",
		"Dracula",
		"",
		"?!",
		"A   Tale  of Two Cities",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestSlugifyNeverProducesStrayHyphens(t *testing.T) {
	inputs := []string{"a--b", "-leading", "trailing-", "a !@# b", "  spaced  "}
	for _, in := range inputs {
		slug := Slugify(in)
		assert.NotContains(t, slug, "--")
		assert.False(t, strings.HasPrefix(slug, "-"))
		assert.False(t, strings.HasSuffix(slug, "-"))
	}
}

func TestFileName(t *testing.T) {
	b := types.Book{ID: 84, Title: "Frankenstein; Or, The Modern Prometheus"}
	assert.Equal(t, "frankenstein-or-the-modern-prometheus-84.txt", FileName(b))
}

func TestFileNameEmptyTitle(t *testing.T) {
	b := types.Book{ID: 84, Title: "???"}
	assert.Equal(t, "-84.txt", FileName(b))
}

func TestFileNameInjectiveAcrossIDs(t *testing.T) {
	a := types.Book{ID: 84, Title: "Frankenstein"}
	b := types.Book{ID: 85, Title: "Frankenstein"}
	assert.NotEqual(t, FileName(a), FileName(b))
}
