// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookbot/internal/library"
	"github.com/pdiddy/bookbot/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List previously downloaded books",
	Long: `Library lists the books recorded in the acquisition index, most recent
first, with the catalog ID and the on-disk path of each.`,
	RunE: runLibrary,
}

func init() {
	libraryCmd.Flags().String("db", "", `index database file (default "books/library.db")`)
	libraryCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	dbPath := flagOrConfigString(cmd, "db", "library.db_path")

	lib, err := library.Open(types.LibraryConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer lib.Close()

	records, err := lib.List(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No books in the library yet. Run 'bookbot fetch' to download one.")
		return nil
	}

	fmt.Printf("%-7s  %-50s  %-30s  %-10s  %s\n", "ID", "Title", "Authors", "Fetched", "Path")
	fmt.Println(strings.Repeat("-", 120))
	for _, rec := range records {
		title := rec.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		authors := strings.Join(rec.Authors, ", ")
		if authors == "" {
			authors = "Unknown"
		}
		if len(authors) > 30 {
			authors = authors[:27] + "..."
		}
		fmt.Printf("%-7d  %-50s  %-30s  %-10s  %s\n",
			rec.ID, title, authors, rec.FetchedAt.Format("2006-01-02"), rec.Path)
	}
	fmt.Printf("\n%d book(s)\n", len(records))
	return nil
}
