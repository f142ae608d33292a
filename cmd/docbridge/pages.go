// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docbridge/internal/build"
	"github.com/pdiddy/docbridge/internal/keymap"
	"github.com/pdiddy/docbridge/internal/output"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the page manifest the build command uses",
	Long: `Pages prints the html/docx pairs the build command will process, along
with the content key each document maps back to on extraction.`,
	RunE: runPages,
}

func init() {
	pagesCmd.Flags().String("manifest", "", "YAML manifest of html/docx page pairs (default: built-in)")

	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	pages := build.DefaultManifest()
	manifest, _ := cmd.Flags().GetString("manifest")
	if manifest != "" {
		var err error
		pages, err = build.LoadManifest(manifest)
		if err != nil {
			return err
		}
	}

	table := output.NewTable(os.Stdout, []string{"HTML", "Docx", "Key"})
	for _, page := range pages {
		key, ok := keymap.Lookup(page.Docx)
		if !ok {
			key = "-"
		}
		table.AddRow([]string{page.HTML, page.Docx, key})
	}
	table.Render()

	fmt.Printf("\n%d page(s)\n", len(pages))
	return nil
}
