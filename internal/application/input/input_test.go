package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/apricot/internal/platform"
)

// batchSource yields one scripted batch of events per poll pass
type batchSource struct {
	batches [][]platform.Event
	pass    int
	idx     int
}

func (s *batchSource) PollEvent() (platform.Event, bool) {
	if s.pass >= len(s.batches) {
		return platform.Event{}, false
	}
	batch := s.batches[s.pass]
	if s.idx >= len(batch) {
		s.pass++
		s.idx = 0
		return platform.Event{}, false
	}
	ev := batch[s.idx]
	s.idx++
	return ev, true
}

func pollPass(a *Aggregator, events ...platform.Event) bool {
	a.Reset()
	return a.Poll(&batchSource{batches: [][]platform.Event{events}})
}

func TestAggregator_MotionDeltasAccumulate(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a,
		platform.Event{Kind: platform.EventMouseMotion, X: 10, Y: 20, DX: 3, DY: -1},
		platform.Event{Kind: platform.EventMouseMotion, X: 15, Y: 25, DX: 2, DY: 2},
	)

	assert.False(t, quit)
	snap := a.Snapshot()
	assert.Equal(t, 5.0, snap.MouseDX, "deltas sum, not overwrite")
	assert.Equal(t, 1.0, snap.MouseDY)
	assert.Equal(t, 15.0, snap.MouseX, "absolute position is the last event's")
	assert.Equal(t, 25.0, snap.MouseY)
}

func TestAggregator_EmptyPassLeavesTransientsZero(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a)

	assert.False(t, quit)
	snap := a.Snapshot()
	assert.Zero(t, snap.MouseDX)
	assert.Zero(t, snap.MouseDY)
	assert.Zero(t, snap.Wheel)
}

func TestAggregator_ResetClearsTransientsOnly(t *testing.T) {
	a := NewAggregator(640, 360)

	pollPass(a,
		platform.Event{Kind: platform.EventMouseMotion, X: 5, Y: 6, DX: 5, DY: 6},
		platform.Event{Kind: platform.EventWheel, DY: 2},
		platform.Event{Kind: platform.EventButtonDown, Button: platform.ButtonPrimary},
		platform.Event{Kind: platform.EventKeyDown, Key: platform.KeyW},
	)

	a.Reset()

	snap := a.Snapshot()
	assert.Zero(t, snap.MouseDX)
	assert.Zero(t, snap.MouseDY)
	assert.Zero(t, snap.Wheel)
	assert.True(t, snap.ButtonDown(platform.ButtonPrimary), "down-state persists across reset")
	assert.True(t, snap.KeyDown(platform.KeyW))
	assert.Equal(t, 5.0, snap.MouseX, "absolute position persists")
}

func TestAggregator_WheelEventsSum(t *testing.T) {
	a := NewAggregator(640, 360)

	pollPass(a,
		platform.Event{Kind: platform.EventWheel, DY: 2},
		platform.Event{Kind: platform.EventWheel, DY: 1.5},
	)

	assert.Equal(t, 3.5, a.Snapshot().Wheel)
}

func TestAggregator_ButtonClickEdge(t *testing.T) {
	a := NewAggregator(640, 360)

	pollPass(a, platform.Event{Kind: platform.EventButtonDown, Button: platform.ButtonSecondary})
	assert.True(t, a.Snapshot().ButtonClicked(platform.ButtonSecondary), "clicked on the press tick")

	pollPass(a)
	assert.False(t, a.Snapshot().ButtonClicked(platform.ButtonSecondary), "held is not clicked")
	assert.True(t, a.Snapshot().ButtonDown(platform.ButtonSecondary))

	pollPass(a, platform.Event{Kind: platform.EventButtonUp, Button: platform.ButtonSecondary})
	assert.False(t, a.Snapshot().ButtonDown(platform.ButtonSecondary))
	assert.False(t, a.Snapshot().ButtonClicked(platform.ButtonSecondary))

	pollPass(a, platform.Event{Kind: platform.EventButtonDown, Button: platform.ButtonSecondary})
	assert.True(t, a.Snapshot().ButtonClicked(platform.ButtonSecondary), "clicked again after release")
}

func TestAggregator_AllFiveButtons(t *testing.T) {
	a := NewAggregator(640, 360)

	buttons := []platform.Button{
		platform.ButtonPrimary,
		platform.ButtonMiddle,
		platform.ButtonSecondary,
		platform.ButtonAux1,
		platform.ButtonAux2,
	}
	for _, b := range buttons {
		pollPass(a, platform.Event{Kind: platform.EventButtonDown, Button: b})
		assert.True(t, a.Snapshot().ButtonDown(b))
		pollPass(a, platform.Event{Kind: platform.EventButtonUp, Button: b})
		assert.False(t, a.Snapshot().ButtonDown(b))
	}
}

func TestAggregator_KeyDownUp(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a, platform.Event{Kind: platform.EventKeyDown, Key: platform.KeySpace})
	assert.False(t, quit)
	assert.True(t, a.Snapshot().KeyDown(platform.KeySpace))

	pollPass(a, platform.Event{Kind: platform.EventKeyUp, Key: platform.KeySpace})
	assert.False(t, a.Snapshot().KeyDown(platform.KeySpace))
}

func TestAggregator_CancelKeySignalsQuit(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a, platform.Event{Kind: platform.EventKeyDown, Key: platform.KeyEscape})

	assert.True(t, quit)
	assert.True(t, a.Snapshot().KeyDown(platform.KeyEscape))
}

func TestAggregator_QuitEventSignalsQuit(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a, platform.Event{Kind: platform.EventQuit})

	assert.True(t, quit)
}

func TestAggregator_ResizeTracksSize(t *testing.T) {
	a := NewAggregator(640, 360)

	pollPass(a, platform.Event{Kind: platform.EventResize, Width: 800, Height: 600})

	snap := a.Snapshot()
	assert.Equal(t, 800, snap.Width)
	assert.Equal(t, 600, snap.Height)
}

func TestAggregator_OutOfRangeIgnored(t *testing.T) {
	a := NewAggregator(640, 360)

	quit := pollPass(a,
		platform.Event{Kind: platform.EventButtonDown, Button: platform.Button(99)},
		platform.Event{Kind: platform.EventKeyDown, Key: platform.Key(999)},
	)

	assert.False(t, quit)
	assert.False(t, a.Snapshot().ButtonDown(platform.Button(99)))
	assert.False(t, a.Snapshot().KeyDown(platform.Key(999)))
}
