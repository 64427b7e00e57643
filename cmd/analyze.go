package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/config"
	"github.com/calder/go-tackle-metrics/internal/loader"
	"github.com/calder/go-tackle-metrics/internal/model"
	"github.com/calder/go-tackle-metrics/internal/normalize"
	"github.com/calder/go-tackle-metrics/internal/pipeline"
	"github.com/calder/go-tackle-metrics/internal/report"
	"github.com/calder/go-tackle-metrics/internal/storage"
)

var (
	analyzeWeek    int
	analyzeWorkers int
	analyzeKeepBad bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data-dir>",
	Short: "Compute tackle metrics for one week of tracking data and store them",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWeek, "week", 1, "tracking week to analyze (1-9)")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "worker count override (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeKeepBad, "keep-bad-plays", false, "do not filter the curated known-bad plays")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dataDir := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if analyzeWorkers > 0 {
		cfg.Workers = analyzeWorkers
	}
	log := newLogger(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	log.Info().Str("dir", dataDir).Int("week", analyzeWeek).Msg("loading dataset")
	ds, err := loader.LoadDataset(dataDir, analyzeWeek)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	frames := normalize.ToRightDirection(ds.Frames)
	if !analyzeKeepBad {
		frames = normalize.RemovePlays(frames, normalize.KnownBadPlayKeys())
	}

	runner := pipeline.New(detectorConfig(cfg), cfg.Workers, log)
	res, err := runner.Run(cmd.Context(), frames, ds.Plays, ds.Tackles, ds.Players)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	source := fmt.Sprintf("%s week %d", filepath.Base(dataDir), analyzeWeek)
	run := model.RunSummary{
		RunDate:       time.Now().Format("2006-01-02 15:04:05"),
		Source:        source,
		PlaysAnalyzed: len(res.Records),
		PlaysFailed:   len(res.Failures),
		PlaysSkipped:  res.Skipped,
	}
	if _, err := db.InsertRun(run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if err := db.InsertPlayMetrics(res.Records); err != nil {
		return fmt.Errorf("insert metrics: %w", err)
	}
	keys := make([]model.PlayKey, len(res.Failures))
	reasons := make([]string, len(res.Failures))
	for i, f := range res.Failures {
		keys[i] = f.Key
		reasons[i] = f.Err.Error()
	}
	if err := db.InsertPlayFailures(keys, reasons); err != nil {
		return fmt.Errorf("insert failures: %w", err)
	}

	report.PrintRunHeader(os.Stdout, source, len(res.Records), len(res.Failures), res.Skipped)
	report.PrintMetricsTable(os.Stdout, res.Records)
	report.PrintFailures(os.Stdout, res.Failures)
	report.PrintBatchSummary(os.Stdout, res.Records)
	return nil
}
