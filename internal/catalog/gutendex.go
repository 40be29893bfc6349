// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the Gutendex book catalog and downloads plain-text
// book content. It performs no retries; retry policy belongs to the caller.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/bookbot/pkg/types"
)

// Defaults applied by NewClient when the config leaves fields zero.
const (
	DefaultBaseURL         = "https://gutendex.com/books"
	DefaultSearchTimeout   = 20 * time.Second
	DefaultDownloadTimeout = 60 * time.Second
	DefaultUserAgent       = "bookbot/0.1"
	DefaultMaxResults      = 10
)

// Client issues search and content requests against the Gutendex API.
type Client struct {
	http *http.Client
	cfg  types.CatalogConfig
}

// NewClient returns a catalog client. Zero config fields fall back to the
// package defaults. The underlying http.Client carries no global timeout;
// each call applies its own bound via context.
func NewClient(cfg types.CatalogConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = DefaultSearchTimeout
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = DefaultDownloadTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &Client{
		http: &http.Client{},
		cfg:  cfg,
	}
}

// Config returns the effective configuration after defaulting.
func (c *Client) Config() types.CatalogConfig {
	return c.cfg
}

// gutendexResponse mirrors the Gutendex search response body.
type gutendexResponse struct {
	Count   int          `json:"count"`
	Results []types.Book `json:"results"`
}

// Search queries the catalog for books matching query, requesting only
// entries with a plain-text representation. The request is bounded by the
// configured search timeout. Failures are reported as ErrTimeout,
// ErrUnreachable, or ErrProtocol.
func (c *Client) Search(ctx context.Context, query string) ([]types.Book, error) {
	params := url.Values{
		"search":    {query},
		"mime_type": {"text/plain"},
	}
	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifySearchErr(err, c.cfg.SearchTimeout.Seconds())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProtocol{Detail: fmt.Sprintf("failed to search Project Gutenberg: HTTP %d", resp.StatusCode)}
	}

	var gr gutendexResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, ErrProtocol{
			Detail: fmt.Sprintf("failed to search Project Gutenberg: parsing response: %v", err),
			Err:    err,
		}
	}
	return gr.Results, nil
}

// FetchContent downloads the raw bytes at locator. The request is bounded
// by the configured download timeout, which is larger than the search bound
// because payloads are whole book files. Any failure, timeout included, is
// reported as ErrProtocol.
func (c *Client) FetchContent(ctx context.Context, locator string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.DownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrProtocol{
			Detail: fmt.Sprintf("failed to download book: %v", err),
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProtocol{Detail: fmt.Sprintf("failed to download book: HTTP %d", resp.StatusCode)}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrProtocol{
			Detail: fmt.Sprintf("failed to download book: %v", err),
			Err:    err,
		}
	}
	return content, nil
}
