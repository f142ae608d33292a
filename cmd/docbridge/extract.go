// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docbridge/internal/extract"
	"github.com/pdiddy/docbridge/internal/keymap"
	"github.com/pdiddy/docbridge/internal/store"
	"github.com/pdiddy/docbridge/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [word_docs_dir] [output_dir]",
	Short: "Read edited Word documents back into the JSON content store",
	Long: `Extract scans word_docs_dir for *.docx files, reassembles each into a
title, intro, and sections, and merges the result into
output_dir/assets/content.json. Embedded images are saved alongside it.

Documents whose content key cannot be inferred from the filename prompt
for a key; --non-interactive skips them instead. Each sync is recorded in
a ledger so --changed-only can skip documents that have not been edited
since the last run.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("non-interactive", false, "never prompt; skip documents without an inferable key")
	extractCmd.Flags().Bool("changed-only", false, "skip documents unchanged since their last recorded sync")
	extractCmd.Flags().Bool("no-ledger", false, "do not record syncs in the ledger")
	extractCmd.Flags().String("ledger", "", "sync ledger database path (default: <output_dir>/.docbridge/sync.db)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig(cmd, args)

	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	var resolver keymap.Resolver = extract.PromptResolver(os.Stdin, os.Stdout)
	if cfg.NonInteractive {
		resolver = keymap.Skip
	}

	var ledger *store.Ledger
	if !cfg.NoLedger {
		ledger, err = store.OpenLedger(ledgerPath(cmd, cfg.OutputDir))
		if err != nil {
			return err
		}
		defer ledger.Close()
	}

	p.Header("Word Document Content Extractor")

	summary, err := extract.ExtractAll(context.Background(), cfg, resolver, ledger, p)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed extraction", summary.Failed)
	}

	p.Header("Done!")
	return nil
}

// extractConfig resolves the extract settings from positional args, flags,
// and the config file, in that order.
func extractConfig(cmd *cobra.Command, args []string) types.ExtractConfig {
	wordDocsDir := viper.GetString("extract.word_docs_dir")
	if wordDocsDir == "" {
		wordDocsDir = "word-docs"
	}
	if len(args) > 0 {
		wordDocsDir = args[0]
	}

	outputDir := viper.GetString("extract.output_dir")
	if outputDir == "" {
		outputDir = "."
	}
	if len(args) > 1 {
		outputDir = args[1]
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	changedOnly, _ := cmd.Flags().GetBool("changed-only")
	noLedger, _ := cmd.Flags().GetBool("no-ledger")

	return types.ExtractConfig{
		WordDocsDir:    wordDocsDir,
		OutputDir:      outputDir,
		NonInteractive: nonInteractive,
		ChangedOnly:    changedOnly,
		NoLedger:       noLedger,
	}
}

// ledgerPath resolves the sync ledger location for commands that read or
// write it.
func ledgerPath(cmd *cobra.Command, outputDir string) string {
	if path, _ := cmd.Flags().GetString("ledger"); path != "" {
		return path
	}
	if path := viper.GetString("extract.ledger_path"); path != "" {
		return path
	}
	return filepath.Join(outputDir, ".docbridge", "sync.db")
}
