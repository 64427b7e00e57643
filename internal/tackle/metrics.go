package tackle

import (
	"math"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// ComputeMetrics derives the per-play metrics record from a gap series and
// a detected tackle window. The lookback convention matches detection: the
// pursuit path starts LookbackFrames before contact, clamped at frame 1.
//
// Every frame the computation indexes must exist in the series; a missing
// one yields a FrameIndexError.
func ComputeMetrics(series []model.GapSample, window model.TackleWindow, cfg DetectorConfig) (model.TackleMetricsRecord, error) {
	byFrame := make(map[int]model.GapSample, len(series))
	for _, s := range series {
		byFrame[s.FrameID] = s
	}
	at := func(frameID int) (model.GapSample, error) {
		s, ok := byFrame[frameID]
		if !ok {
			return model.GapSample{}, &FrameIndexError{FrameID: frameID}
		}
		return s, nil
	}

	contact, err := at(window.ContactFrameID)
	if err != nil {
		return model.TackleMetricsRecord{}, err
	}
	tackle, err := at(window.TackleFrameID)
	if err != nil {
		return model.TackleMetricsRecord{}, err
	}

	// Pursuit: compare the tackler's traveled distance over the lead-up
	// window with the straight line between its endpoints.
	pathStart := max(1, window.ContactFrameID-cfg.LookbackFrames)
	start, err := at(pathStart)
	if err != nil {
		return model.TackleMetricsRecord{}, err
	}
	var dActual float64
	for _, s := range series {
		if s.FrameID > pathStart && s.FrameID <= window.ContactFrameID {
			dActual += s.DisT
		}
	}
	dIdeal := math.Hypot(contact.XT-start.XT, contact.YT-start.YT)

	rec := model.TackleMetricsRecord{
		ContactFrameID: window.ContactFrameID,
		TackleFrameID:  window.TackleFrameID,
		Frames:         window.Frames(),
		DActual:        dActual,
		DIdeal:         dIdeal,
		GapTackle:      tackle.Gap,
		WCarrier:       contact.Weight,
		WTackler:       contact.WeightT,
		SContact:       contact.S,
	}
	if dActual > 0 {
		rec.DEff = dIdeal / dActual
		rec.DEffOK = true
	}

	// Drive through the tackle: carrier downfield speed the frame before
	// the tackle completes, against the fully inelastic "hug" collision
	// where the tackler's mass couples without imparting force.
	preTackle, err := at(window.TackleFrameID - 1)
	if err != nil {
		return model.TackleMetricsRecord{}, err
	}
	neutral := contact.SDownfield * rec.WCarrier / (rec.WCarrier + rec.WTackler)
	rec.SDownfieldDelta = preTackle.SDownfield - neutral

	return rec, nil
}
