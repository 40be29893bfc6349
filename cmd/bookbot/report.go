// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookbot/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print word and character statistics for a local book file",
	Long: `Report reads a plain-text book from the local filesystem and prints its
word count and per-character counts, most frequent first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		stats.WriteReport(os.Stdout, args[0], string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
