package tackle

import (
	"errors"
	"math"
	"testing"

	"github.com/calder/go-tackle-metrics/internal/model"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: want %f, got %f", name, want, got)
	}
}

func TestComputeMetrics(t *testing.T) {
	// 40 frames; contact at 35, tackle at 40. The tackler travels half a
	// yard per frame but advances only 0.4 yards of straight-line distance,
	// so pursuit efficiency is 0.8.
	var series []model.GapSample
	for f := 1; f <= 40; f++ {
		series = append(series, model.GapSample{
			FrameID: f,
			Gap:     0.9,
			DisT:    0.5,
			XT:      0.4 * float64(f),
			YT:      10,
			Weight:  200,
			WeightT: 200,
		})
	}
	series[35-1].S = 6.5
	series[35-1].SDownfield = 6.0
	series[39-1].SDownfield = 2.0

	rec, err := ComputeMetrics(series, model.TackleWindow{ContactFrameID: 35, TackleFrameID: 40}, DefaultDetectorConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approx(t, "d_actual", rec.DActual, 15.0) // 30 frames at 0.5 yd
	approx(t, "d_ideal", rec.DIdeal, 12.0)
	eff, ok := rec.PursuitEfficiency()
	if !ok {
		t.Fatal("pursuit efficiency should be defined")
	}
	approx(t, "d_eff", eff, 0.8)
	approx(t, "gap_tackle", rec.GapTackle, 0.9)
	// Equal masses halve the contact-frame downfield speed in the neutral
	// collision; the carrier was at 2.0 the frame before the tackle.
	approx(t, "s_downfield_delta", rec.SDownfieldDelta, 2.0-3.0)
	approx(t, "s_contact", rec.SContact, 6.5)
	if rec.Frames != 5 {
		t.Errorf("frames: want 5, got %d", rec.Frames)
	}
}

func TestComputeMetrics_ImmediateContact(t *testing.T) {
	// Contact at frame 1: the pursuit path is empty, the tackler traveled
	// nothing, and efficiency is undefined rather than a division by zero.
	var series []model.GapSample
	for f := 1; f <= 12; f++ {
		series = append(series, model.GapSample{
			FrameID: f,
			Gap:     1.0,
			DisT:    0.5,
			XT:      float64(f),
			Weight:  220,
			WeightT: 240,
		})
	}

	rec, err := ComputeMetrics(series, model.TackleWindow{ContactFrameID: 1, TackleFrameID: 12}, DefaultDetectorConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, "d_actual", rec.DActual, 0)
	if _, ok := rec.PursuitEfficiency(); ok {
		t.Error("pursuit efficiency should be undefined when the tackler traveled nothing")
	}
}

func TestComputeMetrics_MissingFrame(t *testing.T) {
	// Frame 39 (the frame before the tackle) is absent from the series.
	var series []model.GapSample
	for f := 1; f <= 40; f++ {
		if f == 39 {
			continue
		}
		series = append(series, model.GapSample{FrameID: f, Gap: 1.0})
	}
	_, err := ComputeMetrics(series, model.TackleWindow{ContactFrameID: 35, TackleFrameID: 40}, DefaultDetectorConfig())
	var idxErr *FrameIndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("expected FrameIndexError, got %v", err)
	}
	if idxErr.FrameID != 39 {
		t.Errorf("offending frame: want 39, got %d", idxErr.FrameID)
	}
}
