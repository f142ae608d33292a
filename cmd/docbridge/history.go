// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docbridge/internal/output"
	"github.com/pdiddy/docbridge/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the sync ledger, newest first",
	Long: `History lists every document sync recorded in the ledger: which
document was read, which content key it updated, and how many sections
and images it carried.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("ledger", "", "sync ledger database path (default: .docbridge/sync.db)")
	historyCmd.Flags().String("key", "", "only show syncs for this content key")
	historyCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ledger, err := store.OpenLedger(ledgerPath(cmd, "."))
	if err != nil {
		return err
	}
	defer ledger.Close()

	records, err := ledger.History(context.Background())
	if err != nil {
		return err
	}

	if key, _ := cmd.Flags().GetString("key"); key != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.ContentKey == key {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No syncs recorded.")
		return nil
	}

	table := output.NewTable(os.Stdout, []string{"Document", "Key", "Sections", "Images", "Synced"})
	for _, rec := range records {
		table.AddRow([]string{
			rec.DocName,
			rec.ContentKey,
			strconv.Itoa(rec.SectionCount),
			strconv.Itoa(rec.ImageCount),
			rec.SyncedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()

	fmt.Printf("\n%d sync(s)\n", len(records))
	return nil
}
