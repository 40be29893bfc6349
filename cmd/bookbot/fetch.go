// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookbot/internal/catalog"
	"github.com/pdiddy/bookbot/internal/library"
	"github.com/pdiddy/bookbot/internal/session"
	"github.com/pdiddy/bookbot/internal/stats"
	"github.com/pdiddy/bookbot/internal/store"
	"github.com/pdiddy/bookbot/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Interactively search and download a book",
	Long: `Fetch prompts for a search query against Project Gutenberg, lists matching
books that offer a plain-text format, downloads the selected one to the books
directory, records it in the library index, and prints its analysis report.

Typing 'quit' at any prompt ends the session.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("books-dir", "", `destination directory for downloaded books (default "books")`)
	fetchCmd.Flags().String("base-url", "", "catalog search endpoint (default Gutendex)")
	fetchCmd.Flags().Duration("timeout", 0, "search request timeout (default 20s)")
	fetchCmd.Flags().Duration("download-timeout", 0, "content download timeout (default 60s)")
	fetchCmd.Flags().Int("max-results", 0, "maximum entries shown for selection (default 10)")
	fetchCmd.Flags().Bool("no-report", false, "skip the analysis report after download")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	client := catalog.NewClient(cfg.Catalog)
	st := store.New(cfg.Store)

	lib, err := library.Open(cfg.Library)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: library index unavailable: %v\n", err)
		lib = nil
	} else {
		defer lib.Close()
	}

	sess := session.New(client, st, lib, os.Stdin, os.Stdout)
	path, err := sess.Run(cmd.Context())
	if errors.Is(err, session.ErrCancelled) {
		return nil
	}
	if err != nil {
		// The session already reported the failure on stdout.
		cmd.SilenceErrors = true
		return err
	}

	if noReport, _ := cmd.Flags().GetBool("no-report"); noReport {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	stats.WriteReport(os.Stdout, path, string(data))
	return nil
}

// fetchConfig merges flags over config-file/env settings. Zero values are
// resolved to defaults by each component.
func fetchConfig(cmd *cobra.Command) types.Config {
	return types.Config{
		Catalog: types.CatalogConfig{
			BaseURL:         flagOrConfigString(cmd, "base-url", "catalog.base_url"),
			SearchTimeout:   flagOrConfigDuration(cmd, "timeout", "catalog.search_timeout"),
			DownloadTimeout: flagOrConfigDuration(cmd, "download-timeout", "catalog.download_timeout"),
			UserAgent:       viper.GetString("catalog.user_agent"),
			MaxResults:      flagOrConfigInt(cmd, "max-results", "catalog.max_results"),
		},
		Store: types.StoreConfig{
			BooksDir: flagOrConfigString(cmd, "books-dir", "store.books_dir"),
		},
		Library: types.LibraryConfig{
			DBPath: viper.GetString("library.db_path"),
		},
	}
}
