// Package scene defines the Scene contract and the scene stack.
//
// A Scene is one screen or mode of the embedding application (title, game,
// pause, ...). Scenes live on a stack; only the top scene is active, and
// everything beneath it is frozen but alive. The run loop drives the top
// scene's Update and Render and is the only caller of either.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/apricot/internal/application/input"
)

// Context is the view of the running application handed to scene
// callbacks. Stack mutation (Push, Pop, Replace) takes effect immediately
// and suppresses the rest of the current frame.
type Context interface {
	// Input returns this tick's input snapshot. Read-only for scenes.
	Input() *input.Snapshot

	// Push makes sc the active scene, suspending the current one.
	Push(sc Scene)
	// Pop deinitializes and removes the active scene, resuming the one
	// beneath it.
	Pop()
	// Replace swaps the active scene for sc as one atomic operation.
	Replace(sc Scene)

	// Stop requests loop termination.
	Stop()

	// Ticks is the number of fixed update ticks since the loop started.
	Ticks() uint64
	// Seconds is the wall-clock uptime of the loop.
	Seconds() float64
	// ScreenSize is the current client size in pixels.
	ScreenSize() (int, int)
}

// Scene is a unit of application state driven by the run loop.
type Scene interface {
	// Update advances the scene by exactly one fixed step. It may read
	// the input snapshot and may mutate the stack through ctx.
	Update(ctx Context)

	// Render draws the current frame. Update and render rates differ, so
	// Render must not assume an update ran earlier in the same frame.
	Render(ctx Context, screen *ebiten.Image)

	// Deinit releases everything the scene owns. It is called exactly
	// once, on pop, replace, or stack teardown. A returned error is
	// logged and never fails the shutdown sequence.
	Deinit() error
}
