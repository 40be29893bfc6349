// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookbot CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookbot CLI.
var rootCmd = &cobra.Command{
	Use:   "bookbot",
	Short: "Search, download, and analyze Project Gutenberg books",
	Long: `bookbot analyzes plain-text books. Point it at a local file with the report
command, or run fetch to interactively search Project Gutenberg, download a
book, and analyze it in one pass. Downloaded books are recorded in a local
library index.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookbot.yaml or ~/.config/bookbot/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookbot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookbot"))
		}
	}

	viper.SetEnvPrefix("BOOKBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfigString resolves a setting from the flag when set, falling
// back to the viper key. An empty result means "use the component default".
func flagOrConfigString(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

func flagOrConfigDuration(cmd *cobra.Command, flag, key string) time.Duration {
	if v, _ := cmd.Flags().GetDuration(flag); v != 0 {
		return v
	}
	return viper.GetDuration(key)
}

func flagOrConfigInt(cmd *cobra.Command, flag, key string) int {
	if v, _ := cmd.Flags().GetInt(flag); v != 0 {
		return v
	}
	return viper.GetInt(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
