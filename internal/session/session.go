// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session drives the interactive acquisition loop: prompt for a
// query, search the catalog, display selectable books, and download the
// chosen one. It is the sole recovery point for catalog failures; the
// client and store only report them.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/pdiddy/bookbot/internal/catalog"
	"github.com/pdiddy/bookbot/internal/library"
	"github.com/pdiddy/bookbot/internal/spinner"
	"github.com/pdiddy/bookbot/internal/store"
	"github.com/pdiddy/bookbot/pkg/types"
)

// ErrCancelled reports that the user ended the session with an explicit
// quit (or by closing the input stream). The caller receives no path.
var ErrCancelled = errors.New("session cancelled")

// errRetry signals internally that the user chose to run another search.
var errRetry = errors.New("retry search")

var (
	errLine   = color.New(color.FgRed)
	savedLine = color.New(color.FgGreen)
)

// Session orchestrates one interactive acquisition. All prompts write to
// Out and read from In, so tests can script the exchange.
type Session struct {
	catalog *catalog.Client
	store   *store.Store
	library *library.Store

	in  *bufio.Reader
	out io.Writer
}

// New returns a session. lib may be nil to disable the acquisition index.
func New(c *catalog.Client, st *store.Store, lib *library.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		catalog: c,
		store:   st,
		library: lib,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run loops query → search → select → download until a book is stored or
// the user quits. It returns the stored path on success. On quit it
// returns ErrCancelled; on a failed download or persist it returns the
// underlying error. Every failure is reported on Out before Run returns
// or re-prompts.
func (s *Session) Run(ctx context.Context) (string, error) {
	for {
		query, err := s.promptQuery()
		if err != nil {
			return "", err
		}

		books, err := s.search(ctx, query)
		if err != nil {
			if errors.Is(err, errRetry) {
				continue
			}
			return "", err
		}

		selectable := catalog.Selectable(books, s.catalog.Config().MaxResults)
		if len(selectable) == 0 {
			fmt.Fprintln(s.out, "No books found matching your search term.")
			fmt.Fprintln(s.out, "Please try a different search term.")
			continue
		}

		book, err := s.selectBook(selectable)
		if err != nil {
			return "", err
		}
		if book == nil {
			// Empty selection: back to the query prompt.
			continue
		}

		return s.download(ctx, *book)
	}
}

// promptQuery reads the search query. It returns ErrCancelled on quit or
// a closed input stream. The trimmed query is returned as-is, empty
// included; the catalog decides relevance.
func (s *Session) promptQuery() (string, error) {
	fmt.Fprint(s.out, "Search Project Gutenberg (or type 'quit' to exit): ")
	line, err := s.readLine()
	if err != nil || isQuit(line) {
		return "", s.cancel()
	}
	return line, nil
}

// search runs the catalog query under the progress indicator. On failure
// it reports the error and offers retry/quit: retry yields errRetry so the
// loop returns to the query prompt.
func (s *Session) search(ctx context.Context, query string) ([]types.Book, error) {
	var books []types.Book
	err := spinner.Run(s.out, "Searching Project Gutenberg", func() error {
		var searchErr error
		books, searchErr = s.catalog.Search(ctx, query)
		return searchErr
	})
	if err == nil {
		return books, nil
	}

	errLine.Fprintf(s.out, "Error: %v\n", err)
	fmt.Fprintln(s.out, "Press Enter to try another search, or type 'quit' to exit")
	line, readErr := s.readLine()
	if readErr != nil || isQuit(line) {
		return nil, s.cancel()
	}
	return nil, errRetry
}

// selectBook displays the selectable list and reads a 1-based choice.
// It returns (nil, nil) on empty input (fresh search), ErrCancelled on
// quit, and re-prompts in place on invalid input.
func (s *Session) selectBook(books []types.Book) (*types.Book, error) {
	fmt.Fprintf(s.out, "Found %d books with plain text format:\n", len(books))
	for i, b := range books {
		fmt.Fprintf(s.out, "%d. %s — %s (ID %d)\n", i+1, b.Title, b.AuthorsDisplay(), b.ID)
	}

	for {
		fmt.Fprint(s.out, "Choose a number (or press Enter to search again, 'quit' to exit): ")
		line, err := s.readLine()
		if err != nil || isQuit(line) {
			return nil, s.cancel()
		}
		if line == "" {
			return nil, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		if n < 1 || n > len(books) {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}
		return &books[n-1], nil
	}
}

// download fetches the book's plain-text content under the progress
// indicator and persists it. Failures here end the session; the user must
// re-run to try again.
func (s *Session) download(ctx context.Context, book types.Book) (string, error) {
	locator, ok := catalog.PlainTextURL(book)
	if !ok {
		err := catalog.ErrProtocol{Detail: fmt.Sprintf("no text format available for book: %s", book.Title)}
		errLine.Fprintf(s.out, "Error downloading book: %v\n", err)
		return "", err
	}

	var content []byte
	err := spinner.Run(s.out, "Downloading book", func() error {
		var fetchErr error
		content, fetchErr = s.catalog.FetchContent(ctx, locator)
		return fetchErr
	})
	if err != nil {
		errLine.Fprintf(s.out, "Error downloading book: %v\n", err)
		return "", err
	}

	path, err := s.store.Persist(store.FileName(book), content)
	if err != nil {
		errLine.Fprintf(s.out, "Error saving book: %v\n", err)
		return "", err
	}

	rec := types.AcquiredBook{
		ID:        book.ID,
		Title:     book.Title,
		Authors:   authorNames(book),
		SourceURL: locator,
		Path:      path,
		FetchedAt: time.Now(),
	}
	if _, err := s.store.WriteMetadata(rec); err != nil {
		fmt.Fprintf(s.out, "warning: metadata write failed: %v\n", err)
	}
	if s.library != nil {
		if err := s.library.Record(ctx, rec); err != nil {
			fmt.Fprintf(s.out, "warning: library index update failed: %v\n", err)
		}
	}

	savedLine.Fprintf(s.out, "Saved to %s\n", path)
	return path, nil
}

func (s *Session) cancel() error {
	fmt.Fprintln(s.out, "Closing BookBot...")
	return ErrCancelled
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "quit")
}

func authorNames(b types.Book) []string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return names
}
