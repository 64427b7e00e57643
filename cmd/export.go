package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/storage"
)

var exportOut string

// exportCmd writes the stored metrics as a CSV for downstream feature
// engineering. The d_eff cell is empty when the efficiency is undefined.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored play metrics as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "tackle_metrics.csv", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintln(os.Stdout, "No plays stored, nothing to export.")
		return nil
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"gameId", "playId", "contactFrameId", "tackleFrameId", "frames",
		"d_actual", "d_ideal", "d_eff", "gap_tackle",
		"w_carrier", "w_tackler", "s_downfield_delta", "s_contact"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range recs {
		dEff := ""
		if v, ok := r.PursuitEfficiency(); ok {
			dEff = strconv.FormatFloat(v, 'g', -1, 64)
		}
		row := []string{
			strconv.Itoa(r.GameID),
			strconv.Itoa(r.PlayID),
			strconv.Itoa(r.ContactFrameID),
			strconv.Itoa(r.TackleFrameID),
			strconv.Itoa(r.Frames),
			strconv.FormatFloat(r.DActual, 'g', -1, 64),
			strconv.FormatFloat(r.DIdeal, 'g', -1, 64),
			dEff,
			strconv.FormatFloat(r.GapTackle, 'g', -1, 64),
			strconv.FormatFloat(r.WCarrier, 'g', -1, 64),
			strconv.FormatFloat(r.WTackler, 'g', -1, 64),
			strconv.FormatFloat(r.SDownfieldDelta, 'g', -1, 64),
			strconv.FormatFloat(r.SContact, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Exported %d plays to %s\n", len(recs), exportOut)
	return nil
}
