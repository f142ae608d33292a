// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docbridge/internal/output"
	"github.com/pdiddy/docbridge/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect and export the JSON content store",
	Long: `Store reads the site's content.json and reports on it. Use subcommands
to list content keys, show one document's content, or export the store to
YAML or JSON.`,
}

// --- keys subcommand ---

var storeKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List content keys with titles and section counts",
	RunE:  runStoreKeys,
}

func runStoreKeys(cmd *cobra.Command, args []string) error {
	cs, err := store.Load(contentPath(cmd))
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		fmt.Println("No content stored.")
		return nil
	}

	table := output.NewTable(os.Stdout, []string{"Key", "Title", "Sections", "Intro"})
	for _, key := range store.Keys(cs) {
		content := cs[key]
		intro := content.Intro
		if len(intro) > 40 {
			intro = intro[:37] + "..."
		}
		table.AddRow([]string{key, content.Title, strconv.Itoa(len(content.Sections)), intro})
	}
	table.Render()

	fmt.Printf("\n%d key(s)\n", len(cs))
	return nil
}

// --- show subcommand ---

var storeShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Print one document's title, intro, and sections",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreShow,
}

func runStoreShow(cmd *cobra.Command, args []string) error {
	key := args[0]

	cs, err := store.Load(contentPath(cmd))
	if err != nil {
		return err
	}
	content, ok := cs[key]
	if !ok {
		return fmt.Errorf("no content stored for key %q", key)
	}

	if content.Title != "" {
		fmt.Printf("Title: %s\n", content.Title)
	}
	if content.Intro != "" {
		fmt.Printf("\n%s\n", content.Intro)
	}
	for _, section := range content.Sections {
		fmt.Printf("\n## %s\n", section.Heading)
		if section.Body != "" {
			fmt.Printf("\n%s\n", section.Body)
		}
	}
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the content store to YAML or JSON",
	Long: `Export writes the full content store to stdout, or to --out when given.
YAML output suits review and diffing; JSON matches the store's on-disk
format.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	cs, err := store.Load(contentPath(cmd))
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(cs)
		if err != nil {
			return fmt.Errorf("encoding store: %w", err)
		}
	case "json":
		data, err = json.MarshalIndent(cs, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding store: %w", err)
		}
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported to %s\n", outPath)
	return nil
}

// --- shared helpers ---

func contentPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("content"); path != "" {
		return path
	}
	if path := viper.GetString("store.content_path"); path != "" {
		return path
	}
	return "assets/content.json"
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("content", "", "content store path (default: assets/content.json)")

	// Export flags.
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("out", "", "write to this file instead of stdout")

	// Wire subcommands.
	storeCmd.AddCommand(storeKeysCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
