// Package config defines the analysis parameters and their loading order:
// defaults, then an optional YAML file, then TKL_-prefixed environment
// variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Sentinel error kinds for this package, for errors.Is from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Analysis holds the tunable parameters of the tackle-metrics pipeline.
// The contact heuristic's window logic is expressed in seconds and
// converted to frames against the sampling rate, so a change in the source
// feed's rate cannot silently corrupt the windows.
type Analysis struct {
	// FramesPerSecond is the tracking feed's sampling rate.
	FramesPerSecond float64 `koanf:"frames_per_second"`

	// LookbackSeconds is the length of both the contact-search window and
	// the pursuit-path window.
	LookbackSeconds float64 `koanf:"lookback_seconds"`

	// ContactGapYards is the assumed wrap-up contact distance.
	ContactGapYards float64 `koanf:"contact_gap_yards"`

	// TrustedContactGapYards bounds how far apart the players may be at a
	// labeled first_contact event for the label to be trusted.
	TrustedContactGapYards float64 `koanf:"trusted_contact_gap_yards"`

	// GapEpsilon guards floating-point equality at the contact threshold.
	GapEpsilon float64 `koanf:"gap_epsilon"`

	// Workers sets the number of plays processed concurrently.
	Workers int `koanf:"workers"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the reference parameters: a 10 Hz feed and a 3-second
// lookback (30 frames), a 1.8-yard wrap-up distance, and a 3-yard trust
// bound on first_contact labels.
func Default() *Analysis {
	return &Analysis{
		FramesPerSecond:        10,
		LookbackSeconds:        3,
		ContactGapYards:        1.8,
		TrustedContactGapYards: 3.0,
		GapEpsilon:             1e-5,
		Workers:                runtime.NumCPU(),
		LogLevel:               "info",
	}
}

// LookbackFrames converts the lookback window to whole frames.
func (c *Analysis) LookbackFrames() int {
	return int(math.Round(c.FramesPerSecond * c.LookbackSeconds))
}

// Validate checks the parameters for internal consistency.
func (c *Analysis) Validate() error {
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("%w: frames_per_second must be positive, got %g", ErrInvalidConfig, c.FramesPerSecond)
	}
	if c.LookbackSeconds <= 0 {
		return fmt.Errorf("%w: lookback_seconds must be positive, got %g", ErrInvalidConfig, c.LookbackSeconds)
	}
	if c.ContactGapYards <= 0 {
		return fmt.Errorf("%w: contact_gap_yards must be positive, got %g", ErrInvalidConfig, c.ContactGapYards)
	}
	if c.TrustedContactGapYards < c.ContactGapYards {
		return fmt.Errorf("%w: trusted_contact_gap_yards (%g) below contact_gap_yards (%g)",
			ErrInvalidConfig, c.TrustedContactGapYards, c.ContactGapYards)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
