// Package tackle derives tackle-quality metrics from normalized player
// tracking data: it aligns ball-carrier and tackler motion into a per-frame
// gap series, infers the frame where physical contact begins, and computes
// pursuit, momentum, and wrap-up metrics over the detected window.
package tackle

import (
	"math"
	"sort"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// SinglePlayKey validates that all frames belong to one (gameId, playId)
// and returns that key. Returns a MultiPlayInputError otherwise.
func SinglePlayKey(frames []model.TrackingFrame) (model.PlayKey, error) {
	seen := make(map[model.PlayKey]struct{})
	var keys []model.PlayKey
	for _, f := range frames {
		k := f.Key()
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	if len(keys) != 1 {
		return model.PlayKey{}, &MultiPlayInputError{Keys: keys}
	}
	return keys[0], nil
}

// BuildGapSeries joins the ball carrier's and the credited tackler's frames
// of a single play into one ordered series, one sample per frame where both
// players have data. Frames must already be normalized to the right-moving
// reference frame.
func BuildGapSeries(frames []model.TrackingFrame, carrierID, tacklerID int, weights map[int]float64) ([]model.GapSample, error) {
	key, err := SinglePlayKey(frames)
	if err != nil {
		return nil, err
	}
	for _, f := range frames {
		if f.PlayDirection != model.DirectionRight {
			return nil, &InvalidPlayDirectionError{Key: key, Direction: f.PlayDirection}
		}
	}

	wCarrier, ok := weights[carrierID]
	if !ok {
		return nil, &EmptyJoinError{CarrierID: carrierID, TacklerID: tacklerID,
			Reason: "no roster weight for ball carrier"}
	}
	wTackler, ok := weights[tacklerID]
	if !ok {
		return nil, &EmptyJoinError{CarrierID: carrierID, TacklerID: tacklerID,
			Reason: "no roster weight for tackler"}
	}

	carrier := make(map[int]model.TrackingFrame)
	tackler := make(map[int]model.TrackingFrame)
	for _, f := range frames {
		switch f.NFLID {
		case carrierID:
			carrier[f.FrameID] = f
		case tacklerID:
			tackler[f.FrameID] = f
		}
	}

	// Inner join on frame id: frames where either player is missing are dropped.
	frameIDs := make([]int, 0, len(carrier))
	for id := range carrier {
		if _, ok := tackler[id]; ok {
			frameIDs = append(frameIDs, id)
		}
	}
	if len(frameIDs) == 0 {
		return nil, &EmptyJoinError{CarrierID: carrierID, TacklerID: tacklerID,
			Reason: "carrier and tackler share no tracked frames"}
	}
	sort.Ints(frameIDs)

	series := make([]model.GapSample, 0, len(frameIDs))
	for _, id := range frameIDs {
		c, t := carrier[id], tackler[id]
		series = append(series, model.GapSample{
			FrameID:     id,
			Event:       c.Event,
			Gap:         math.Hypot(c.X-t.X, c.Y-t.Y),
			S:           c.S,
			SDownfield:  downfieldComponent(c.S, c.Dir),
			Weight:      wCarrier,
			SDownfieldT: downfieldComponent(t.S, t.Dir),
			WeightT:     wTackler,
			DisT:        t.Dis,
			XT:          t.X,
			YT:          t.Y,
		})
	}
	return series, nil
}

// downfieldComponent projects a scalar speed onto the downfield axis. In the
// normalized frame the direction angle is measured clockwise from the upper
// sideline, so sin(dir) is the downfield (increasing-x) share.
func downfieldComponent(s, dirDegrees float64) float64 {
	return s * math.Sin(dirDegrees*math.Pi/180)
}
