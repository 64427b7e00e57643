// Package normalize puts raw tracking data into the canonical reference
// frame the metrics core requires: every play moving left-to-right, with
// known-bad plays and frames removed.
package normalize

import (
	"math"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// Field dimensions in yards, back of endzone to back of endzone and
// sideline to sideline.
const (
	FieldLengthYards = 120.0
	FieldWidthYards  = 53.3
)

// ToRightDirection returns a copy of the frames with every left-moving play
// mirrored into the right-moving reference frame. Increasing x is downfield
// for the offense, increasing y is towards the left sideline. Frames already
// moving right pass through unchanged, so the transform is idempotent.
func ToRightDirection(frames []model.TrackingFrame) []model.TrackingFrame {
	out := make([]model.TrackingFrame, len(frames))
	for i, f := range frames {
		if f.PlayDirection == model.DirectionLeft {
			f = Mirror(f)
		}
		out[i] = f
	}
	return out
}

// Mirror flips a single frame end-for-end: positions reflect through the
// field center and the angular fields rotate a half turn. Applying Mirror
// twice restores the original coordinates.
func Mirror(f model.TrackingFrame) model.TrackingFrame {
	f.X = FieldLengthYards - f.X
	f.Y = FieldWidthYards - f.Y
	f.O = math.Mod(f.O+180, 360)
	f.Dir = math.Mod(f.Dir+180, 360)
	switch f.PlayDirection {
	case model.DirectionLeft:
		f.PlayDirection = model.DirectionRight
	case model.DirectionRight:
		f.PlayDirection = model.DirectionLeft
	}
	return f
}

// RemovePlays drops every frame belonging to one of the given plays.
func RemovePlays(frames []model.TrackingFrame, bad []model.PlayKey) []model.TrackingFrame {
	drop := make(map[model.PlayKey]struct{}, len(bad))
	for _, k := range bad {
		drop[k] = struct{}{}
	}
	out := make([]model.TrackingFrame, 0, len(frames))
	for _, f := range frames {
		if _, ok := drop[f.Key()]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

// RemoveFrames drops the listed (game, play, frame) triples.
func RemoveFrames(frames []model.TrackingFrame, bad []model.FrameKey) []model.TrackingFrame {
	drop := make(map[model.FrameKey]struct{}, len(bad))
	for _, k := range bad {
		drop[k] = struct{}{}
	}
	out := make([]model.TrackingFrame, 0, len(frames))
	for _, f := range frames {
		if _, ok := drop[model.FrameKey{GameID: f.GameID, PlayID: f.PlayID, FrameID: f.FrameID}]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}
