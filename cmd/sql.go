package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the metrics database",
	Long: `Run an arbitrary SQL query against the metrics database and print results as a table.

Schema overview:
  runs(id, run_date, source, plays_analyzed, plays_failed, plays_skipped)
  play_metrics(game_id, play_id, contact_frame_id, tackle_frame_id, frames,
    d_actual, d_ideal, d_eff, gap_tackle, w_carrier, w_tackler,
    s_downfield_delta, s_contact)
  play_failures(game_id, play_id, error)

Note: d_eff is NULL for plays where the tackler had no lead-up travel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
