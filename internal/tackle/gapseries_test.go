package tackle

import (
	"errors"
	"math"
	"testing"

	"github.com/calder/go-tackle-metrics/internal/model"
)

const (
	carrierID = 101
	tacklerID = 202
)

func testWeights() map[int]float64 {
	return map[int]float64{carrierID: 215, tacklerID: 240}
}

// makeFrame builds a right-moving tracking frame for game 1, play 1.
func makeFrame(nflID, frameID int, x, y float64) model.TrackingFrame {
	return model.TrackingFrame{
		GameID:        1,
		PlayID:        1,
		NFLID:         nflID,
		FrameID:       frameID,
		PlayDirection: model.DirectionRight,
		X:             x,
		Y:             y,
	}
}

func TestBuildGapSeries_MultiPlay(t *testing.T) {
	frames := []model.TrackingFrame{
		makeFrame(carrierID, 1, 10, 10),
		makeFrame(tacklerID, 1, 12, 10),
	}
	frames[1].PlayID = 2

	_, err := BuildGapSeries(frames, carrierID, tacklerID, testWeights())
	var multiErr *MultiPlayInputError
	if !errors.As(err, &multiErr) {
		t.Fatalf("expected MultiPlayInputError, got %v", err)
	}
	if len(multiErr.Keys) != 2 {
		t.Errorf("expected 2 offending keys, got %v", multiErr.Keys)
	}
}

func TestBuildGapSeries_WrongDirection(t *testing.T) {
	frames := []model.TrackingFrame{
		makeFrame(carrierID, 1, 10, 10),
		makeFrame(tacklerID, 1, 12, 10),
	}
	frames[1].PlayDirection = model.DirectionLeft

	_, err := BuildGapSeries(frames, carrierID, tacklerID, testWeights())
	var dirErr *InvalidPlayDirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected InvalidPlayDirectionError, got %v", err)
	}
	if dirErr.Direction != model.DirectionLeft {
		t.Errorf("expected offending direction %q, got %q", model.DirectionLeft, dirErr.Direction)
	}
}

// TestBuildGapSeries_InnerJoin: frames where only one player is tracked are
// dropped; the joined series is ordered by frame id.
func TestBuildGapSeries_InnerJoin(t *testing.T) {
	var frames []model.TrackingFrame
	for f := 1; f <= 5; f++ {
		frames = append(frames, makeFrame(carrierID, f, float64(f), 10))
	}
	for f := 3; f <= 7; f++ {
		frames = append(frames, makeFrame(tacklerID, f, float64(f)+3, 10))
	}

	series, err := BuildGapSeries(frames, carrierID, tacklerID, testWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 joined frames, got %d", len(series))
	}
	for i, want := range []int{3, 4, 5} {
		if series[i].FrameID != want {
			t.Errorf("series[%d].FrameID: want %d, got %d", i, want, series[i].FrameID)
		}
	}
}

func TestBuildGapSeries_GapAndDownfield(t *testing.T) {
	carrier := makeFrame(carrierID, 1, 10, 10)
	carrier.S = 8
	carrier.Dir = 90 // straight downfield
	carrier.Event = "first_contact"
	tackler := makeFrame(tacklerID, 1, 13, 14)
	tackler.S = 6
	tackler.Dir = 30
	tackler.Dis = 0.6

	series, err := BuildGapSeries([]model.TrackingFrame{carrier, tackler}, carrierID, tacklerID, testWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := series[0]

	if math.Abs(s.Gap-5.0) > 1e-9 {
		t.Errorf("gap: want 5.0 (3-4-5 triangle), got %f", s.Gap)
	}
	if math.Abs(s.SDownfield-8.0) > 1e-9 {
		t.Errorf("carrier s_downfield at dir=90: want 8.0, got %f", s.SDownfield)
	}
	if math.Abs(s.SDownfieldT-3.0) > 1e-9 {
		t.Errorf("tackler s_downfield at dir=30: want 3.0 (6*sin30), got %f", s.SDownfieldT)
	}
	if s.Event != "first_contact" {
		t.Errorf("event not carried through: got %q", s.Event)
	}
	if s.Weight != 215 || s.WeightT != 240 {
		t.Errorf("weights not attached: got %f/%f", s.Weight, s.WeightT)
	}
	if s.DisT != 0.6 || s.XT != 13 || s.YT != 14 {
		t.Errorf("tackler kinematics not carried: dis=%f x=%f y=%f", s.DisT, s.XT, s.YT)
	}
}

func TestBuildGapSeries_NoSharedFrames(t *testing.T) {
	frames := []model.TrackingFrame{
		makeFrame(carrierID, 1, 10, 10),
		makeFrame(tacklerID, 2, 12, 10),
	}
	_, err := BuildGapSeries(frames, carrierID, tacklerID, testWeights())
	var joinErr *EmptyJoinError
	if !errors.As(err, &joinErr) {
		t.Fatalf("expected EmptyJoinError, got %v", err)
	}
}

func TestBuildGapSeries_MissingRosterWeight(t *testing.T) {
	frames := []model.TrackingFrame{
		makeFrame(carrierID, 1, 10, 10),
		makeFrame(tacklerID, 1, 12, 10),
	}
	weights := map[int]float64{carrierID: 215} // tackler absent
	_, err := BuildGapSeries(frames, carrierID, tacklerID, weights)
	var joinErr *EmptyJoinError
	if !errors.As(err, &joinErr) {
		t.Fatalf("expected EmptyJoinError, got %v", err)
	}
}
