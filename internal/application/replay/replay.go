// Package replay records and replays platform event streams.
//
// A Recorder wraps the live event source and captures every event grouped
// by the poll pass (tick) that consumed it. A saved session can later be
// played back through Source, which implements platform.EventSource, so an
// entire run of the loop is reproducible without a window.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/apricot/internal/platform"
)

// TickEvents is the batch of events one poll pass delivered.
type TickEvents struct {
	T      int              `json:"t"`
	Events []platform.Event `json:"ev,omitempty"`
}

// Session is a recorded event stream.
type Session struct {
	Version    string       `json:"version"`
	StepMillis int64        `json:"stepMillis"`
	StartTime  string       `json:"startTime"`
	Ticks      []TickEvents `json:"ticks"`
}

// Recorder captures events flowing through an EventSource. It passes every
// event through unchanged, so it can sit between the backend and the loop.
type Recorder struct {
	src     platform.EventSource
	session Session
	current []platform.Event
	tick    int
}

// NewRecorder wraps src. step is the loop's fixed step, stored with the
// session for later sanity checks.
func NewRecorder(src platform.EventSource, step time.Duration) *Recorder {
	return &Recorder{
		src: src,
		session: Session{
			Version:    "1.0",
			StepMillis: step.Milliseconds(),
			StartTime:  time.Now().Format(time.RFC3339),
			Ticks:      make([]TickEvents, 0, 3600),
		},
	}
}

// PollEvent implements platform.EventSource. A drained pass (ok=false)
// closes the current tick's batch.
func (r *Recorder) PollEvent() (platform.Event, bool) {
	ev, ok := r.src.PollEvent()
	if !ok {
		r.session.Ticks = append(r.session.Ticks, TickEvents{T: r.tick, Events: r.current})
		r.current = nil
		r.tick++
		return platform.Event{}, false
	}
	r.current = append(r.current, ev)
	return ev, true
}

// TickCount returns the number of completed poll passes.
func (r *Recorder) TickCount() int {
	return r.tick
}

// Save writes the session to filename as JSON.
func (r *Recorder) Save(filename string) error {
	if len(r.session.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.session); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return nil
}

// LoadSession reads a recorded session from filename.
func LoadSession(filename string) (*Session, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var s Session
	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

// Source plays a recorded session back one poll pass per tick. It
// implements platform.EventSource; after the last recorded tick it keeps
// yielding empty passes.
type Source struct {
	session Session
	tick    int
	idx     int
}

// NewSource creates a playback source over session.
func NewSource(session Session) *Source {
	return &Source{session: session}
}

// PollEvent implements platform.EventSource.
func (s *Source) PollEvent() (platform.Event, bool) {
	if s.tick >= len(s.session.Ticks) {
		return platform.Event{}, false
	}
	batch := s.session.Ticks[s.tick]
	if s.idx >= len(batch.Events) {
		s.tick++
		s.idx = 0
		return platform.Event{}, false
	}
	ev := batch.Events[s.idx]
	s.idx++
	return ev, true
}

// Exhausted reports whether every recorded tick has been replayed.
func (s *Source) Exhausted() bool {
	return s.tick >= len(s.session.Ticks)
}

// CurrentTick returns the index of the tick being replayed.
func (s *Source) CurrentTick() int {
	return s.tick
}

// TotalTicks returns the number of recorded ticks.
func (s *Source) TotalTicks() int {
	return len(s.session.Ticks)
}

// Reset rewinds the source to the beginning of the session.
func (s *Source) Reset() {
	s.tick = 0
	s.idx = 0
}
