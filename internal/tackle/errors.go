package tackle

import (
	"fmt"

	"github.com/calder/go-tackle-metrics/internal/model"
)

// MultiPlayInputError reports that a function expecting a single play
// received frames spanning more than one (gameId, playId).
type MultiPlayInputError struct {
	Keys []model.PlayKey
}

func (e *MultiPlayInputError) Error() string {
	if len(e.Keys) == 0 {
		return "tracking data contains no frames"
	}
	return fmt.Sprintf("tracking data contains more than one play: %v", e.Keys)
}

// InvalidPlayDirectionError reports frames that were not normalized to the
// canonical right-moving reference frame before reaching the core.
type InvalidPlayDirectionError struct {
	Key       model.PlayKey
	Direction string
}

func (e *InvalidPlayDirectionError) Error() string {
	return fmt.Sprintf("play %s: playDirection must be %q, got %q",
		e.Key, model.DirectionRight, e.Direction)
}

// EmptyJoinError reports that the carrier and tackler series share no
// frames, typically because attribution or roster data is missing.
type EmptyJoinError struct {
	CarrierID int
	TacklerID int
	Reason    string
}

func (e *EmptyJoinError) Error() string {
	return fmt.Sprintf("no aligned frames for carrier %d and tackler %d: %s",
		e.CarrierID, e.TacklerID, e.Reason)
}

// NoTackleEventError reports a gap series with no frame labeled "tackle".
type NoTackleEventError struct{}

func (e *NoTackleEventError) Error() string {
	return `no frame carries the "tackle" event`
}

// FirstContactAfterTackleError reports a first_contact label that occurs
// after the tackle event. The labels are supposed to bracket the
// engagement; this ordering is a data anomaly, not a detectable contact.
type FirstContactAfterTackleError struct {
	FirstContactFrameID int
	TackleFrameID       int
}

func (e *FirstContactAfterTackleError) Error() string {
	return fmt.Sprintf("first_contact at frame %d is after the tackle at frame %d",
		e.FirstContactFrameID, e.TackleFrameID)
}

// FrameIndexError reports a frame id that does not exist in the gap series
// it is supposed to index.
type FrameIndexError struct {
	FrameID int
}

func (e *FrameIndexError) Error() string {
	return fmt.Sprintf("frame %d not present in gap series", e.FrameID)
}
