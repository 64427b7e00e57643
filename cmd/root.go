package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/calder/go-tackle-metrics/internal/config"
	"github.com/calder/go-tackle-metrics/internal/tackle"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "tacklemetrics",
	Short: "Tackle-quality metrics from player tracking data",
	Long:  "Derive contact frames and tackle-quality metrics (pursuit efficiency, momentum delta, wrap-up tightness) from per-frame player tracking data.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".tacklemetrics", "metrics.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// newLogger builds a console logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// detectorConfig maps analysis parameters onto the contact detector.
func detectorConfig(cfg *config.Analysis) tackle.DetectorConfig {
	return tackle.DetectorConfig{
		LookbackFrames:         cfg.LookbackFrames(),
		ContactGapYards:        cfg.ContactGapYards,
		TrustedContactGapYards: cfg.TrustedContactGapYards,
		GapEpsilon:             cfg.GapEpsilon,
	}
}
