package tackle

import "github.com/calder/go-tackle-metrics/internal/model"

// PlayContainsTackle reports whether a single play's frames carry the
// "tackle" event. Frames spanning more than one play are rejected.
func PlayContainsTackle(frames []model.TrackingFrame) (bool, error) {
	return playContainsEvent(frames, model.EventTackle)
}

// PlayContainsQBSlide reports whether a single play ends in a quarterback
// slide. Slide plays have no real tackle and are excluded from analysis.
func PlayContainsQBSlide(frames []model.TrackingFrame) (bool, error) {
	return playContainsEvent(frames, model.EventQBSlide)
}

func playContainsEvent(frames []model.TrackingFrame, event string) (bool, error) {
	if _, err := SinglePlayKey(frames); err != nil {
		return false, err
	}
	for _, f := range frames {
		if f.Event == event {
			return true, nil
		}
	}
	return false, nil
}
