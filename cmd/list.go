package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded analysis runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No runs recorded yet. Run 'tacklemetrics analyze <data-dir>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-19s  %-24s  %8s  %6s  %7s\n",
		"ID", "DATE", "SOURCE", "ANALYZED", "FAILED", "SKIPPED")
	fmt.Fprintf(os.Stdout, "%-4s  %-19s  %-24s  %8s  %6s  %7s\n",
		"────", "───────────────────", "────────────────────────", "────────", "──────", "───────")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-19s  %-24s  %8d  %6d  %7d\n",
			r.ID, r.RunDate, r.Source, r.PlaysAnalyzed, r.PlaysFailed, r.PlaysSkipped)
	}
	return nil
}
