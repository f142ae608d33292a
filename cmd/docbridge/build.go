// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docbridge/internal/build"
	"github.com/pdiddy/docbridge/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [html_dir] [word_docs_dir]",
	Short: "Create Word documents from the site's HTML pages",
	Long: `Build reads each HTML page in the manifest, extracts its headings,
paragraphs, list items, and quotes, and writes a styled Word document per
page. Pages missing from html_dir are reported and skipped; a failure on
one page never stops the rest.

Without a --manifest file the built-in site manifest is used.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("manifest", "", "YAML manifest of html/docx page pairs (default: built-in)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd, args)

	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	pages := build.DefaultManifest()
	if cfg.ManifestPath != "" {
		pages, err = build.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return err
		}
	}

	p.Header("Creating Word Documents from HTML Files")

	summary, err := build.BuildAll(cfg, pages, p)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d page(s) failed to build", summary.Failed)
	}

	p.Print("Done! Word documents created in '%s' directory", cfg.WordDocsDir)
	return nil
}

// buildConfig resolves the build settings from positional args, flags, and
// the config file, in that order.
func buildConfig(cmd *cobra.Command, args []string) types.BuildConfig {
	htmlDir := viper.GetString("build.html_dir")
	if htmlDir == "" {
		htmlDir = "."
	}
	if len(args) > 0 {
		htmlDir = args[0]
	}

	wordDocsDir := viper.GetString("build.word_docs_dir")
	if wordDocsDir == "" {
		wordDocsDir = "word-docs"
	}
	if len(args) > 1 {
		wordDocsDir = args[1]
	}

	manifest, _ := cmd.Flags().GetString("manifest")
	if manifest == "" {
		manifest = viper.GetString("build.manifest")
	}

	return types.BuildConfig{
		HTMLDir:      htmlDir,
		WordDocsDir:  wordDocsDir,
		ManifestPath: manifest,
	}
}
