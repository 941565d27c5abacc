// Package platform defines the boundary between the engine core and the
// windowing/input layer.
//
// The core never talks to a concrete windowing library; it consumes Events
// from an EventSource and draws through whatever render target the driver
// hands it. Adapters live under internal/infrastructure/backend.
package platform

// EventKind identifies one of the closed set of platform event kinds.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventQuit
	EventMouseMotion
	EventButtonDown
	EventButtonUp
	EventWheel
	EventResize
	EventKeyDown
	EventKeyUp
)

// Button identifies a mouse button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
	ButtonAux1
	ButtonAux2

	// ButtonCount is the number of tracked mouse buttons.
	ButtonCount = 5
)

// Event is a single platform event. Only the fields relevant to Kind are
// populated. The JSON tags match the replay session format.
type Event struct {
	Kind EventKind `json:"k"`

	// Absolute pointer position (EventMouseMotion).
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Relative pointer motion (EventMouseMotion); DY doubles as the
	// vertical wheel delta for EventWheel.
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`

	Button Button `json:"b,omitempty"`
	Key    Key    `json:"key,omitempty"`

	// New client size (EventResize).
	Width  int `json:"w,omitempty"`
	Height int `json:"h,omitempty"`
}

// EventSource yields the platform events queued since the previous poll
// pass. PollEvent must never block: it returns ok=false as soon as the
// queue is drained for this pass.
type EventSource interface {
	PollEvent() (ev Event, ok bool)
}
