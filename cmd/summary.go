package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/report"
	"github.com/calder/go-tackle-metrics/internal/storage"
)

// summaryCmd is the cobra command for distribution statistics across all
// stored plays.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Distribution statistics across all stored plays",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	recs, err := db.ListPlayMetrics()
	if err != nil {
		return fmt.Errorf("list metrics: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stdout, "No plays stored yet. Run 'tacklemetrics analyze <data-dir>' to add some.")
		return nil
	}
	report.PrintBatchSummary(os.Stdout, recs)
	return nil
}
