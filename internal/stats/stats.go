// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes word and character statistics for a plain-text
// book and renders the analysis report. It knows nothing about where the
// text came from.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
)

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCounts returns per-character occurrence counts, case-folded to
// lowercase.
func CharCounts(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		counts[r]++
	}
	return counts
}

// CharCount pairs a character with its occurrence count.
type CharCount struct {
	Char  rune
	Count int
}

// SortedCharCounts flattens a count map into a slice ordered by count
// descending, character ascending on ties.
func SortedCharCounts(counts map[rune]int) []CharCount {
	out := make([]CharCount, 0, len(counts))
	for r, n := range counts {
		out = append(out, CharCount{Char: r, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Char < out[j].Char
	})
	return out
}

// WriteReport writes the full analysis report for the book at path.
// Non-letter characters are omitted from the character section.
func WriteReport(w io.Writer, path, text string) {
	fmt.Fprintln(w, "============ BOOKBOT ============")
	fmt.Fprintf(w, "Analyzing book found at %s...\n", path)
	fmt.Fprintln(w, "----------- Word Count ----------")
	fmt.Fprintf(w, "Found %d total words\n", WordCount(text))
	fmt.Fprintln(w, "--------- Character Count -------")
	for _, cc := range SortedCharCounts(CharCounts(text)) {
		if !unicode.IsLetter(cc.Char) {
			continue
		}
		fmt.Fprintf(w, "%c: %d\n", cc.Char, cc.Count)
	}
	fmt.Fprintln(w, "============= END ===============")
}
