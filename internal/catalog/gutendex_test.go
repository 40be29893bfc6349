// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookbot/pkg/types"
)

const draculaResponse = `{
	"count": 3,
	"results": [
		{
			"id": 345,
			"title": "Dracula",
			"authors": [{"name": "Stoker, Bram", "birth_year": 1847, "death_year": 1912}],
			"formats": {
				"text/plain; charset=us-ascii": "https://www.gutenberg.org/files/345/345-0.txt",
				"text/html": "https://www.gutenberg.org/ebooks/345.html.images"
			}
		},
		{
			"id": 6087,
			"title": "Dracula's Guest",
			"authors": [{"name": "Stoker, Bram", "birth_year": 1847, "death_year": 1912}],
			"formats": {
				"text/plain; charset=utf-8": "https://www.gutenberg.org/ebooks/6087.txt.utf-8"
			}
		},
		{
			"id": 10150,
			"title": "The Lair of the White Worm",
			"authors": [],
			"formats": {
				"text/plain; charset=utf-8": "https://www.gutenberg.org/ebooks/10150.txt.utf-8"
			}
		}
	]
}`

func newTestClient(baseURL string, searchTimeout time.Duration) *Client {
	return NewClient(types.CatalogConfig{
		BaseURL:       baseURL,
		SearchTimeout: searchTimeout,
	})
}

func TestSearchSendsQueryAndFilter(t *testing.T) {
	var gotQuery, gotMime, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		gotMime = r.URL.Query().Get("mime_type")
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, draculaResponse)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, 0)
	books, err := c.Search(context.Background(), "dracula")
	require.NoError(t, err)

	assert.Equal(t, "dracula", gotQuery)
	assert.Equal(t, "text/plain", gotMime)
	assert.Equal(t, DefaultUserAgent, gotUA)

	require.Len(t, books, 3)
	assert.Equal(t, 345, books[0].ID)
	assert.Equal(t, "Dracula", books[0].Title)
	assert.Equal(t, "Stoker, Bram", books[0].Authors[0].Name)
	// us-ascii variant appears before text/html, as in the response body.
	assert.Equal(t, "text/plain; charset=us-ascii", books[0].Formats[0].ContentType)
}

func TestSearchTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, `{"count":0,"results":[]}`)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, 50*time.Millisecond)
	_, err := c.Search(context.Background(), "dracula")
	require.Error(t, err)

	var timeoutErr ErrTimeout
	require.ErrorAs(t, err, &timeoutErr)
	assert.Contains(t, timeoutErr.Error(), "did not respond in time")
}

func TestSearchUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	c := newTestClient(baseURL, 0)
	_, err := c.Search(context.Background(), "dracula")
	require.Error(t, err)

	var unreachableErr ErrUnreachable
	require.ErrorAs(t, err, &unreachableErr)
	assert.Equal(t, "could not connect to Project Gutenberg API", unreachableErr.Error())
}

func TestSearchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, 0)
	_, err := c.Search(context.Background(), "dracula")

	var protoErr ErrProtocol
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Error(), "HTTP 500")
}

func TestSearchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{`)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, 0)
	_, err := c.Search(context.Background(), "dracula")

	var protoErr ErrProtocol
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Error(), "parsing response")
}

func TestFetchContent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	const locator = "https://www.gutenberg.org/files/345/345-0.txt"
	body := []byte("CHAPTER I\r\n\r\nJonathan Harker's Journal\x00\x01")
	httpmock.RegisterResponder(http.MethodGet, locator,
		httpmock.NewBytesResponder(http.StatusOK, body))

	c := NewClient(types.CatalogConfig{})
	got, err := c.FetchContent(context.Background(), locator)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestFetchContentNonSuccessStatus(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	const locator = "https://www.gutenberg.org/files/404/404-0.txt"
	httpmock.RegisterResponder(http.MethodGet, locator,
		httpmock.NewStringResponder(http.StatusNotFound, "not found"))

	c := NewClient(types.CatalogConfig{})
	_, err := c.FetchContent(context.Background(), locator)

	var protoErr ErrProtocol
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Error(), "failed to download book: HTTP 404")
}

func TestFetchContentTransportError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	const locator = "https://www.gutenberg.org/files/345/345-0.txt"
	httpmock.RegisterResponder(http.MethodGet, locator,
		httpmock.NewErrorResponder(errors.New("connection reset")))

	c := NewClient(types.CatalogConfig{})
	_, err := c.FetchContent(context.Background(), locator)

	// Transport failures on download are protocol errors, timeouts included;
	// only the search path distinguishes timeout from unreachable.
	var protoErr ErrProtocol
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Error(), "failed to download book")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.CatalogConfig{})
	cfg := c.Config()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultSearchTimeout, cfg.SearchTimeout)
	assert.Equal(t, DefaultDownloadTimeout, cfg.DownloadTimeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
	assert.Greater(t, cfg.DownloadTimeout, cfg.SearchTimeout)
}
