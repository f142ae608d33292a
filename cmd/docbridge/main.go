// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docbridge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docbridge/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docbridge CLI.
var rootCmd = &cobra.Command{
	Use:   "docbridge",
	Short: "Move site content between HTML, Word documents, and JSON",
	Long: `docbridge keeps a static site's content editable in Word. The build
command renders the site's HTML pages into Word documents with matching
heading, list, and quote styles; after editing, the extract command reads
the documents back, reassembles titles, intros, and sections, and merges
the result into the site's JSON content store along with any embedded
images.

Each direction is a subcommand: build (HTML to Word) and extract (Word to
JSON). The store, history, and pages subcommands inspect the content
store, the sync ledger, and the page manifest.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docbridge.yaml or ~/.config/docbridge/config.yaml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, or never")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docbridge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docbridge"))
		}
	}

	viper.SetEnvPrefix("DOCBRIDGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newPrinter builds the printer every subcommand writes through, honoring
// the --color flag.
func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	colorFlag, _ := cmd.Flags().GetString("color")
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(os.Stdout, os.Stderr, mode), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
