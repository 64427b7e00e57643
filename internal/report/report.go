package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gonum.org/v1/gonum/stat"

	"github.com/calder/go-tackle-metrics/internal/model"
	"github.com/calder/go-tackle-metrics/internal/pipeline"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintRunHeader prints a one-line summary of a batch run.
func PrintRunHeader(w io.Writer, source string, analyzed, failed, skipped int) {
	fmt.Fprintf(w, "\nSource: %s  |  Analyzed: %d  |  Failed: %d  |  Skipped (no tackle): %d\n\n",
		source, analyzed, failed, skipped)
}

// PrintMetricsTable prints one row per analyzed play.
func PrintMetricsTable(w io.Writer, recs []model.TackleMetricsRecord) {
	table := newTable(w)
	table.Header("GAME", "PLAY", "CONTACT", "TACKLE", "FRAMES",
		"D_ACT", "D_IDEAL", "D_EFF", "GAP_TKL", "W_BC", "W_TKL", "ΔS_DOWN", "S_CONTACT")

	for _, r := range recs {
		dEff := "—"
		if v, ok := r.PursuitEfficiency(); ok {
			dEff = fmt.Sprintf("%.3f", v)
		}
		table.Append(
			fmt.Sprintf("%d", r.GameID),
			fmt.Sprintf("%d", r.PlayID),
			fmt.Sprintf("%d", r.ContactFrameID),
			fmt.Sprintf("%d", r.TackleFrameID),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%.2f", r.DActual),
			fmt.Sprintf("%.2f", r.DIdeal),
			dEff,
			fmt.Sprintf("%.2f", r.GapTackle),
			fmt.Sprintf("%.0f", r.WCarrier),
			fmt.Sprintf("%.0f", r.WTackler),
			fmt.Sprintf("%+.2f", r.SDownfieldDelta),
			fmt.Sprintf("%.2f", r.SContact),
		)
	}
	table.Render()
}

// PrintFailures lists the plays the batch could not analyze.
func PrintFailures(w io.Writer, fails []pipeline.Failure) {
	if len(fails) == 0 {
		return
	}
	fmt.Fprintf(w, "\n--- Failed Plays ---\n\n")
	table := newTable(w)
	table.Header("GAME", "PLAY", "ERROR")
	for _, f := range fails {
		table.Append(
			fmt.Sprintf("%d", f.Key.GameID),
			fmt.Sprintf("%d", f.Key.PlayID),
			f.Err.Error(),
		)
	}
	table.Render()
}

// PrintGapSeries prints the per-frame drill-down for one play, marking the
// detected contact and tackle frames.
func PrintGapSeries(w io.Writer, series []model.GapSample, window model.TackleWindow) {
	table := newTable(w)
	table.Header(" ", "FRAME", "EVENT", "GAP", "S", "S_DOWN", "S_DOWN_T", "DIS_T")
	for _, s := range series {
		marker := " "
		switch s.FrameID {
		case window.ContactFrameID:
			marker = "C"
		case window.TackleFrameID:
			marker = "T"
		}
		table.Append(
			marker,
			fmt.Sprintf("%d", s.FrameID),
			s.Event,
			fmt.Sprintf("%.2f", s.Gap),
			fmt.Sprintf("%.2f", s.S),
			fmt.Sprintf("%+.2f", s.SDownfield),
			fmt.Sprintf("%+.2f", s.SDownfieldT),
			fmt.Sprintf("%.2f", s.DisT),
		)
	}
	table.Render()
}

// metricColumn extracts one metric across records; ok=false drops a record
// from the column (undefined efficiency).
type metricColumn struct {
	name string
	get  func(model.TackleMetricsRecord) (float64, bool)
}

var summaryColumns = []metricColumn{
	{"d_eff", func(r model.TackleMetricsRecord) (float64, bool) { return r.PursuitEfficiency() }},
	{"gap_tackle", func(r model.TackleMetricsRecord) (float64, bool) { return r.GapTackle, true }},
	{"s_downfield_delta", func(r model.TackleMetricsRecord) (float64, bool) { return r.SDownfieldDelta, true }},
	{"s_contact", func(r model.TackleMetricsRecord) (float64, bool) { return r.SContact, true }},
	{"frames", func(r model.TackleMetricsRecord) (float64, bool) { return float64(r.Frames), true }},
}

// PrintBatchSummary prints distribution statistics for each metric across
// the given records.
func PrintBatchSummary(w io.Writer, recs []model.TackleMetricsRecord) {
	fmt.Fprintf(w, "\n--- Metric Distributions (%d plays) ---\n\n", len(recs))
	table := newTable(w)
	table.Header("METRIC", "N", "MEAN", "STDDEV", "P25", "MEDIAN", "P75")

	for _, col := range summaryColumns {
		var xs []float64
		for _, r := range recs {
			if v, ok := col.get(r); ok {
				xs = append(xs, v)
			}
		}
		if len(xs) == 0 {
			table.Append(col.name, "0", "—", "—", "—", "—", "—")
			continue
		}
		sort.Float64s(xs)
		table.Append(
			col.name,
			fmt.Sprintf("%d", len(xs)),
			fmt.Sprintf("%.3f", stat.Mean(xs, nil)),
			fmt.Sprintf("%.3f", stat.StdDev(xs, nil)),
			fmt.Sprintf("%.3f", stat.Quantile(0.25, stat.Empirical, xs, nil)),
			fmt.Sprintf("%.3f", stat.Quantile(0.5, stat.Empirical, xs, nil)),
			fmt.Sprintf("%.3f", stat.Quantile(0.75, stat.Empirical, xs, nil)),
		)
	}
	table.Render()
}
