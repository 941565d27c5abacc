// Package input folds raw platform events into a stable per-tick snapshot.
//
// The loop resets the snapshot's transient fields and drains the event
// source once per fixed tick; scenes then read the snapshot for that tick.
// Button and key down-state persists across ticks until an up event clears
// it, while relative deltas and the wheel delta are only valid within the
// tick that produced them.
package input

import "github.com/younwookim/apricot/internal/platform"

// Snapshot is the aggregated input state for one tick.
type Snapshot struct {
	// Absolute pointer position, overwritten by the newest motion event.
	MouseX float64
	MouseY float64

	// Relative pointer motion accumulated over this tick's poll pass.
	MouseDX float64
	MouseDY float64

	// Vertical wheel delta accumulated over this tick's poll pass.
	Wheel float64

	// Buttons holds persistent down-state; Clicked is true only on the
	// tick a button transitioned from up to down.
	Buttons [platform.ButtonCount]bool
	Clicked [platform.ButtonCount]bool

	// Keys holds persistent down-state indexed by platform.Key.
	Keys [platform.KeyCount]bool

	// Tracked client size, updated by resize events.
	Width  int
	Height int
}

// KeyDown reports whether k is currently held.
func (s *Snapshot) KeyDown(k platform.Key) bool {
	if !k.Valid() {
		return false
	}
	return s.Keys[k]
}

// ButtonDown reports whether b is currently held.
func (s *Snapshot) ButtonDown(b platform.Button) bool {
	if b < 0 || b >= platform.ButtonCount {
		return false
	}
	return s.Buttons[b]
}

// ButtonClicked reports whether b was pressed during the current tick.
func (s *Snapshot) ButtonClicked(b platform.Button) bool {
	if b < 0 || b >= platform.ButtonCount {
		return false
	}
	return s.Clicked[b]
}

// Aggregator owns a Snapshot and applies event polling passes to it.
type Aggregator struct {
	snap        Snapshot
	prevButtons [platform.ButtonCount]bool
	cancelKey   platform.Key
}

// NewAggregator creates an aggregator with the given initial client size.
func NewAggregator(width, height int) *Aggregator {
	return &Aggregator{
		snap:      Snapshot{Width: width, Height: height},
		cancelKey: platform.KeyCancel,
	}
}

// Snapshot returns the aggregated state. Scenes must treat it as read-only.
func (a *Aggregator) Snapshot() *Snapshot {
	return &a.snap
}

// Reset zeroes the per-tick transient fields. Down-state is untouched; it
// persists until an up event clears it.
func (a *Aggregator) Reset() {
	a.snap.MouseDX = 0
	a.snap.MouseDY = 0
	a.snap.Wheel = 0
	a.snap.Clicked = [platform.ButtonCount]bool{}
	a.prevButtons = a.snap.Buttons
}

// Poll drains src and applies every event to the snapshot in arrival
// order. It returns true when the pass signaled loop termination, either
// via a quit event or the cancel key going down.
func (a *Aggregator) Poll(src platform.EventSource) (quit bool) {
	for {
		ev, ok := src.PollEvent()
		if !ok {
			break
		}
		if a.apply(ev) {
			quit = true
		}
	}

	for b := 0; b < platform.ButtonCount; b++ {
		a.snap.Clicked[b] = !a.prevButtons[b] && a.snap.Buttons[b]
	}
	return quit
}

func (a *Aggregator) apply(ev platform.Event) bool {
	switch ev.Kind {
	case platform.EventQuit:
		return true

	case platform.EventMouseMotion:
		a.snap.MouseX = ev.X
		a.snap.MouseY = ev.Y
		// Deltas accumulate so that several motion events within one
		// poll pass sum rather than overwrite.
		a.snap.MouseDX += ev.DX
		a.snap.MouseDY += ev.DY

	case platform.EventButtonDown:
		if ev.Button >= 0 && ev.Button < platform.ButtonCount {
			a.snap.Buttons[ev.Button] = true
		}

	case platform.EventButtonUp:
		if ev.Button >= 0 && ev.Button < platform.ButtonCount {
			a.snap.Buttons[ev.Button] = false
		}

	case platform.EventWheel:
		a.snap.Wheel += ev.DY

	case platform.EventResize:
		a.snap.Width = ev.Width
		a.snap.Height = ev.Height

	case platform.EventKeyDown:
		if ev.Key.Valid() {
			a.snap.Keys[ev.Key] = true
			if a.snap.Keys[a.cancelKey] {
				return true
			}
		}

	case platform.EventKeyUp:
		if ev.Key.Valid() {
			a.snap.Keys[ev.Key] = false
		}
	}
	return false
}
