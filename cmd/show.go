package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/config"
	"github.com/calder/go-tackle-metrics/internal/loader"
	"github.com/calder/go-tackle-metrics/internal/model"
	"github.com/calder/go-tackle-metrics/internal/normalize"
	"github.com/calder/go-tackle-metrics/internal/report"
	"github.com/calder/go-tackle-metrics/internal/storage"
	"github.com/calder/go-tackle-metrics/internal/tackle"
)

var (
	showDataDir string
	showWeek    int
)

var showCmd = &cobra.Command{
	Use:   "show <gameId> <playId>",
	Short: "Show one play's stored metrics",
	Long: `Show the stored metrics record for one play. With --data-dir, the
per-frame gap series is recomputed from the raw tracking data and printed
as a drill-down, with the detected contact (C) and tackle (T) frames marked.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDataDir, "data-dir", "", "tracking data directory for the gap-series drill-down")
	showCmd.Flags().IntVar(&showWeek, "week", 1, "tracking week containing the play")
}

func runShow(cmd *cobra.Command, args []string) error {
	gameID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid gameId %q: %w", args[0], err)
	}
	playID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid playId %q: %w", args[1], err)
	}
	key := model.PlayKey{GameID: gameID, PlayID: playID}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rec, err := db.GetPlayMetrics(key)
	if err != nil {
		return fmt.Errorf("query play: %w", err)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No stored metrics for play %s\n", key)
		return nil
	}
	report.PrintMetricsTable(os.Stdout, []model.TackleMetricsRecord{*rec})

	if showDataDir == "" {
		return nil
	}
	return showGapSeries(key)
}

// showGapSeries rebuilds the play's gap series from raw tracking data and
// prints the per-frame drill-down.
func showGapSeries(key model.PlayKey) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ds, err := loader.LoadDataset(showDataDir, showWeek)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	var frames []model.TrackingFrame
	for _, f := range ds.Frames {
		if f.Key() == key {
			frames = append(frames, f)
		}
	}
	if len(frames) == 0 {
		return fmt.Errorf("play %s not found in week %d tracking data", key, showWeek)
	}
	frames = normalize.ToRightDirection(frames)

	var carrierID int
	for _, p := range ds.Plays {
		if p.Key() == key {
			carrierID = p.BallCarrierID
			break
		}
	}
	if carrierID == 0 {
		return fmt.Errorf("no play metadata names a ball carrier for %s", key)
	}
	var tacklerID int
	for _, t := range ds.Tackles {
		if t.Key() == key && t.Tackle == 1 {
			tacklerID = t.NFLID
			break
		}
	}
	if tacklerID == 0 {
		return fmt.Errorf("no credited tackler in attribution data for %s", key)
	}

	series, err := tackle.BuildGapSeries(frames, carrierID, tacklerID, ds.WeightLookup())
	if err != nil {
		return fmt.Errorf("build gap series: %w", err)
	}
	window, err := tackle.DetectTackleWindow(series, detectorConfig(cfg))
	if err != nil {
		return fmt.Errorf("detect tackle window: %w", err)
	}
	fmt.Fprintln(os.Stdout)
	report.PrintGapSeries(os.Stdout, series, window)
	return nil
}
