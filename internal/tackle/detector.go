package tackle

import (
	"github.com/calder/go-tackle-metrics/internal/model"
)

// DetectorConfig holds the tunable parameters of contact detection. The
// defaults encode a 3-second lookback at the tracking feed's 10 Hz sampling
// rate and a 1.8-yard wrap-up contact distance.
type DetectorConfig struct {
	// LookbackFrames is the length of the contact-search window ending just
	// before the tackle frame.
	LookbackFrames int
	// ContactGapYards is the assumed wrap-up contact distance. When the
	// minimum gap in the window never gets that close (a trip rather than a
	// wrap), the threshold relaxes to the observed minimum.
	ContactGapYards float64
	// TrustedContactGapYards bounds how far apart the players may be at a
	// labeled first_contact event for the label to be taken at face value.
	TrustedContactGapYards float64
	// GapEpsilon guards floating-point equality at the threshold boundary.
	GapEpsilon float64
}

// DefaultDetectorConfig returns the parameters used by the reference
// analysis.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		LookbackFrames:         30,
		ContactGapYards:        1.8,
		TrustedContactGapYards: 3.0,
		GapEpsilon:             1e-5,
	}
}

// DetectTackleWindow locates the labeled tackle frame and the inferred
// contact frame in a play's gap series.
//
// The contact heuristic is an ordered list of guarded branches; the first
// branch whose guard holds decides the contact frame:
//
//  1. trusted first_contact — the play carries a first_contact label and the
//     gap at that frame is small enough for the label to be reliable.
//  2. threshold search — earliest frame in the lookback window whose gap
//     drops to the wrap-up contact distance, relaxed to the window's
//     minimum gap when the players never get that close.
func DetectTackleWindow(series []model.GapSample, cfg DetectorConfig) (model.TackleWindow, error) {
	tackle, ok := firstWithEvent(series, model.EventTackle)
	if !ok {
		return model.TackleWindow{}, &NoTackleEventError{}
	}

	inWindow := func(frameID int) bool {
		return frameID >= max(1, tackle.FrameID-cfg.LookbackFrames) && frameID < tackle.FrameID
	}

	type branch struct {
		name  string
		taken func() bool
		pick  func() (int, error)
	}

	firstContact, hasFirstContact := firstWithEvent(series, model.EventFirstContact)
	branches := []branch{
		{
			name: "trusted-first-contact",
			taken: func() bool {
				return hasFirstContact && firstContact.Gap < cfg.TrustedContactGapYards
			},
			pick: func() (int, error) {
				if firstContact.FrameID > tackle.FrameID {
					return 0, &FirstContactAfterTackleError{
						FirstContactFrameID: firstContact.FrameID,
						TackleFrameID:       tackle.FrameID,
					}
				}
				return firstContact.FrameID, nil
			},
		},
		{
			name:  "threshold-search",
			taken: func() bool { return true },
			pick: func() (int, error) {
				minGap, found := 0.0, false
				for _, s := range series {
					if !inWindow(s.FrameID) {
						continue
					}
					if !found || s.Gap < minGap {
						minGap, found = s.Gap, true
					}
				}
				if !found {
					// Nothing precedes the tackle inside the window; there
					// is no frame the heuristic could name as contact.
					return 0, &FrameIndexError{FrameID: tackle.FrameID - 1}
				}
				threshold := max(cfg.ContactGapYards, minGap)
				for _, s := range series {
					if inWindow(s.FrameID) && s.Gap <= threshold+cfg.GapEpsilon {
						return s.FrameID, nil
					}
				}
				// Unreachable: the minimum-gap frame always qualifies.
				return 0, &FrameIndexError{FrameID: tackle.FrameID - 1}
			},
		},
	}

	for _, b := range branches {
		if !b.taken() {
			continue
		}
		contactFrameID, err := b.pick()
		if err != nil {
			return model.TackleWindow{}, err
		}
		return model.TackleWindow{
			ContactFrameID: contactFrameID,
			TackleFrameID:  tackle.FrameID,
		}, nil
	}
	// Unreachable: the final branch is unconditional.
	return model.TackleWindow{}, &NoTackleEventError{}
}

// firstWithEvent returns the earliest sample carrying the given event label.
// The series is ordered by frame id, so a linear scan finds the first one.
func firstWithEvent(series []model.GapSample, event string) (model.GapSample, bool) {
	for _, s := range series {
		if s.Event == event {
			return s, true
		}
	}
	return model.GapSample{}, false
}
