// Package ebitenbackend bridges the engine core to ebiten.
//
// Ebiten owns its own frame loop, so the adapter inverts control: the
// Driver implements ebiten.Game, synthesizes platform events from ebiten's
// input deltas each tick, and forwards the advance and render phases to
// the engine loop.
package ebitenbackend

import "github.com/younwookim/apricot/internal/platform"

// Source is the FIFO event queue the driver fills from ebiten input state.
// It implements platform.EventSource.
type Source struct {
	events []platform.Event
	head   int
}

// NewSource creates an empty event queue.
func NewSource() *Source {
	return &Source{events: make([]platform.Event, 0, 64)}
}

// Push appends an event to the queue.
func (s *Source) Push(ev platform.Event) {
	s.events = append(s.events, ev)
}

// PollEvent implements platform.EventSource.
func (s *Source) PollEvent() (platform.Event, bool) {
	if s.head >= len(s.events) {
		s.events = s.events[:0]
		s.head = 0
		return platform.Event{}, false
	}
	ev := s.events[s.head]
	s.head++
	return ev, true
}

// Len returns the number of queued events.
func (s *Source) Len() int {
	return len(s.events) - s.head
}
