package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder/go-tackle-metrics/internal/model"
)

func leftFrame() model.TrackingFrame {
	return model.TrackingFrame{
		GameID:        2022090800,
		PlayID:        56,
		NFLID:         101,
		FrameID:       7,
		PlayDirection: model.DirectionLeft,
		X:             30,
		Y:             20,
		S:             5.5,
		Dir:           250,
		O:             190,
		Event:         model.EventFirstContact,
	}
}

func TestToRightDirection_MirrorsLeftPlays(t *testing.T) {
	out := ToRightDirection([]model.TrackingFrame{leftFrame()})
	require.Len(t, out, 1)
	f := out[0]

	assert.Equal(t, model.DirectionRight, f.PlayDirection)
	assert.InDelta(t, 90.0, f.X, 1e-9)
	assert.InDelta(t, 33.3, f.Y, 1e-9)
	assert.InDelta(t, 70.0, f.Dir, 1e-9)
	assert.InDelta(t, 10.0, f.O, 1e-9)
	// Scalars and labels pass through untouched.
	assert.InDelta(t, 5.5, f.S, 1e-9)
	assert.Equal(t, model.EventFirstContact, f.Event)
}

func TestToRightDirection_Idempotent(t *testing.T) {
	once := ToRightDirection([]model.TrackingFrame{leftFrame()})
	twice := ToRightDirection(once)
	assert.Equal(t, once, twice)
}

func TestToRightDirection_DoesNotMutateInput(t *testing.T) {
	in := []model.TrackingFrame{leftFrame()}
	_ = ToRightDirection(in)
	assert.Equal(t, leftFrame(), in[0])
}

func TestMirror_Involution(t *testing.T) {
	f := leftFrame()
	back := Mirror(Mirror(f))
	assert.Equal(t, f.PlayDirection, back.PlayDirection)
	assert.InDelta(t, f.X, back.X, 1e-9)
	assert.InDelta(t, f.Y, back.Y, 1e-9)
	assert.InDelta(t, f.O, back.O, 1e-9)
	assert.InDelta(t, f.Dir, back.Dir, 1e-9)
}

func TestRemovePlays(t *testing.T) {
	frames := []model.TrackingFrame{
		{GameID: 1, PlayID: 1, FrameID: 1},
		{GameID: 1, PlayID: 2, FrameID: 1},
		{GameID: 1, PlayID: 2, FrameID: 2},
		{GameID: 2, PlayID: 1, FrameID: 1},
	}
	out := RemovePlays(frames, []model.PlayKey{{GameID: 1, PlayID: 2}})
	require.Len(t, out, 2)
	for _, f := range out {
		assert.NotEqual(t, model.PlayKey{GameID: 1, PlayID: 2}, f.Key())
	}
}

func TestRemoveFrames(t *testing.T) {
	frames := []model.TrackingFrame{
		{GameID: 1, PlayID: 1, FrameID: 1},
		{GameID: 1, PlayID: 1, FrameID: 2},
	}
	out := RemoveFrames(frames, []model.FrameKey{{GameID: 1, PlayID: 1, FrameID: 2}})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].FrameID)
}

func TestKnownBadPlays(t *testing.T) {
	keys := KnownBadPlayKeys()
	require.Len(t, keys, len(KnownBadPlays))
	seen := make(map[model.PlayKey]struct{})
	for i, p := range KnownBadPlays {
		assert.NotEmpty(t, p.Reason, "entry %d has no reason", i)
		_, dup := seen[p.Key]
		assert.False(t, dup, "duplicate bad-play entry %v", p.Key)
		seen[p.Key] = struct{}{}
	}
}
