// Package loader reads the tabular tracking-data release: per-week tracking
// CSVs plus the plays, tackles, and players tables.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// Dataset bundles the four tables the pipeline consumes.
type Dataset struct {
	Frames  []model.TrackingFrame
	Plays   []model.PlayMetadata
	Tackles []model.TackleAttribution
	Players []model.Player
}

// LoadDataset reads plays.csv, tackles.csv, players.csv, and the tracking
// file for the given week from dir.
func LoadDataset(dir string, week int) (*Dataset, error) {
	plays, err := ReadPlays(filepath.Join(dir, "plays.csv"))
	if err != nil {
		return nil, err
	}
	tackles, err := ReadTackles(filepath.Join(dir, "tackles.csv"))
	if err != nil {
		return nil, err
	}
	players, err := ReadPlayers(filepath.Join(dir, "players.csv"))
	if err != nil {
		return nil, err
	}
	frames, err := ReadTracking(filepath.Join(dir, fmt.Sprintf("tracking_week_%d.csv", week)))
	if err != nil {
		return nil, err
	}
	return &Dataset{Frames: frames, Plays: plays, Tackles: tackles, Players: players}, nil
}

// WeightLookup returns nflId -> weight for the roster.
func (d *Dataset) WeightLookup() map[int]float64 {
	weights := make(map[int]float64, len(d.Players))
	for _, p := range d.Players {
		weights[p.NFLID] = p.Weight
	}
	return weights
}

// ReadTracking reads one week of tracking frames.
func ReadTracking(path string) ([]model.TrackingFrame, error) {
	return readFile(path, ParseTracking)
}

// ReadPlays reads plays.csv.
func ReadPlays(path string) ([]model.PlayMetadata, error) {
	return readFile(path, ParsePlays)
}

// ReadTackles reads tackles.csv.
func ReadTackles(path string) ([]model.TackleAttribution, error) {
	return readFile(path, ParseTackles)
}

// ReadPlayers reads players.csv.
func ReadPlayers(path string) ([]model.Player, error) {
	return readFile(path, ParsePlayers)
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	out, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

// ParseTracking parses tracking rows from r. The ball row carries NA for
// nflId and jerseyNumber; both map to zero values.
func ParseTracking(r io.Reader) ([]model.TrackingFrame, error) {
	rows, err := newRowReader(r, "gameId", "playId", "frameId", "playDirection",
		"x", "y", "s", "dis", "dir", "event")
	if err != nil {
		return nil, err
	}
	var out []model.TrackingFrame
	for rows.next() {
		out = append(out, model.TrackingFrame{
			GameID:        rows.intCol("gameId"),
			PlayID:        rows.intCol("playId"),
			NFLID:         rows.optIntCol("nflId"),
			FrameID:       rows.intCol("frameId"),
			DisplayName:   rows.strCol("displayName"),
			JerseyNumber:  rows.optIntCol("jerseyNumber"),
			Team:          rows.strCol("club"),
			PlayDirection: rows.strCol("playDirection"),
			X:             rows.floatCol("x"),
			Y:             rows.floatCol("y"),
			S:             rows.floatCol("s"),
			A:             rows.floatCol("a"),
			Dis:           rows.floatCol("dis"),
			O:             rows.floatCol("o"),
			Dir:           rows.floatCol("dir"),
			Event:         rows.optStrCol("event"),
		})
	}
	return out, rows.err()
}

// ParsePlays parses play metadata rows from r.
func ParsePlays(r io.Reader) ([]model.PlayMetadata, error) {
	rows, err := newRowReader(r, "gameId", "playId", "ballCarrierId")
	if err != nil {
		return nil, err
	}
	var out []model.PlayMetadata
	for rows.next() {
		out = append(out, model.PlayMetadata{
			GameID:        rows.intCol("gameId"),
			PlayID:        rows.intCol("playId"),
			BallCarrierID: rows.intCol("ballCarrierId"),
			Description:   rows.strCol("playDescription"),
			Quarter:       rows.optIntCol("quarter"),
			Down:          rows.optIntCol("down"),
			YardsToGo:     rows.optIntCol("yardsToGo"),
		})
	}
	return out, rows.err()
}

// ParseTackles parses tackle attribution rows from r.
func ParseTackles(r io.Reader) ([]model.TackleAttribution, error) {
	rows, err := newRowReader(r, "gameId", "playId", "nflId", "tackle")
	if err != nil {
		return nil, err
	}
	var out []model.TackleAttribution
	for rows.next() {
		out = append(out, model.TackleAttribution{
			GameID: rows.intCol("gameId"),
			PlayID: rows.intCol("playId"),
			NFLID:  rows.intCol("nflId"),
			Tackle: rows.intCol("tackle"),
			Assist: rows.optIntCol("assist"),
		})
	}
	return out, rows.err()
}

// ParsePlayers parses roster rows from r.
func ParsePlayers(r io.Reader) ([]model.Player, error) {
	rows, err := newRowReader(r, "nflId", "weight")
	if err != nil {
		return nil, err
	}
	var out []model.Player
	for rows.next() {
		out = append(out, model.Player{
			NFLID:       rows.intCol("nflId"),
			DisplayName: rows.strCol("displayName"),
			Position:    rows.strCol("position"),
			Weight:      rows.floatCol("weight"),
		})
	}
	return out, rows.err()
}
