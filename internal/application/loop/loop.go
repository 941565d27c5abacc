// Package loop implements the fixed-timestep run loop.
//
// Each outer iteration ("frame") has three phases: wall-clock accounting,
// zero or more fixed update ticks while accumulated lag covers the step
// size, and at most one render. Input is reset and polled once per tick, so
// every tick sees a consistent snapshot. If the active scene mutates the
// scene stack during its own update, the stack goes stale and the rest of
// the frame — remaining ticks and the render — is skipped; the next frame
// starts clean.
package loop

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/apricot/internal/application/input"
	"github.com/younwookim/apricot/internal/application/scene"
	"github.com/younwookim/apricot/internal/platform"
)

const (
	// DefaultStep is the fixed simulation step.
	DefaultStep = 16 * time.Millisecond

	// DefaultMaxCatchUp bounds how many steps of lag may accumulate.
	// After a long stall (debugger pause, machine sleep) the loop runs at
	// most this many catch-up ticks instead of spiraling.
	DefaultMaxCatchUp = 8

	reportInterval = 5 * time.Second
)

// Clock supplies the current wall-clock time. Tests inject a fake.
type Clock func() time.Time

// Backend owns the render surface for the loop's own Run driver.
// BeginFrame clears the surface and returns the frame's draw target;
// EndFrame presents it.
type Backend interface {
	BeginFrame() (*ebiten.Image, error)
	EndFrame() error
	Shutdown()
}

// Options configures a Loop. Zero values select the defaults.
type Options struct {
	Step       time.Duration
	MaxCatchUp int
	Logger     *log.Logger
	Clock      Clock

	// Initial client size, kept current by resize events afterwards.
	Width  int
	Height int
}

// Loop is the fixed-timestep scheduler. It owns the scene stack, the input
// aggregator, and all wall-clock tracking, and it implements scene.Context
// for the scenes it drives.
//
// A Loop is single-threaded: every callback runs to completion on the
// loop's goroutine before it proceeds, so the snapshot and the stack need
// no locking.
type Loop struct {
	src    platform.EventSource
	stack  *scene.Stack
	agg    *input.Aggregator
	logger *log.Logger
	clock  Clock

	step       time.Duration
	maxCatchUp int

	running    bool
	started    time.Time
	prev       time.Time
	lag        time.Duration
	ticks      uint64
	frames     int
	lastReport time.Time
}

var _ scene.Context = (*Loop)(nil)

// New creates a loop reading events from src.
func New(src platform.EventSource, opts Options) *Loop {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.MaxCatchUp <= 0 {
		opts.MaxCatchUp = DefaultMaxCatchUp
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Loop{
		src:        src,
		stack:      scene.NewStack(opts.Logger),
		agg:        input.NewAggregator(opts.Width, opts.Height),
		logger:     opts.Logger,
		clock:      opts.Clock,
		step:       opts.Step,
		maxCatchUp: opts.MaxCatchUp,
		running:    true,
	}
}

// Stack exposes the scene stack, mainly so the embedding application can
// push its initial scene before starting the loop.
func (l *Loop) Stack() *scene.Stack {
	return l.stack
}

// Running reports whether the loop will keep iterating.
func (l *Loop) Running() bool {
	return l.running
}

// Advance runs the time-accounting and update phases of one frame. It
// returns false once the loop has stopped: on a quit event, the cancel
// key, or a scene calling Stop.
func (l *Loop) Advance(now time.Time) bool {
	if !l.running {
		return false
	}
	if l.started.IsZero() {
		l.started = now
		l.prev = now
		l.lastReport = now
	}

	elapsed := now.Sub(l.prev)
	if elapsed < 0 {
		elapsed = 0
	}
	l.prev = now
	l.lag += elapsed
	if maxLag := l.step * time.Duration(l.maxCatchUp); l.lag > maxLag {
		l.lag = maxLag
	}

	l.stack.ClearStale()
	for l.lag >= l.step {
		l.agg.Reset()
		if l.agg.Poll(l.src) {
			l.running = false
			return false
		}

		// Re-read the top every tick: the previous update may have
		// mutated the stack.
		if top, ok := l.stack.Top(); ok {
			top.Update(l)
			l.ticks++
			if !l.running {
				return false
			}
			if l.stack.Stale() {
				// Abort the phase. The aborted tick's step is not
				// consumed; leftover lag carries into the next frame,
				// bounded by the catch-up clamp.
				break
			}
		}
		l.lag -= l.step
	}

	if now.Sub(l.lastReport) >= reportInterval {
		l.logger.Printf("5 seconds; fps: %d", l.frames/int(reportInterval/time.Second))
		l.lastReport = now
		l.frames = 0
	}
	return true
}

// Renderable reports whether the current frame should render: the loop is
// still running, the stack was not mutated this frame, and there is a
// scene to draw.
func (l *Loop) Renderable() bool {
	return l.running && !l.stack.Stale() && l.stack.Len() > 0
}

// RenderFrame runs the render phase onto screen. It is a no-op when the
// frame is not renderable, so a stale or empty stack never faults.
func (l *Loop) RenderFrame(screen *ebiten.Image) {
	if !l.Renderable() {
		return
	}
	top, ok := l.stack.Top()
	if !ok {
		return
	}
	top.Render(l, screen)
	l.frames++
}

// Run drives the loop against backend until it stops or the backend fails.
// Remaining scenes are deinitialized on the way out, whatever the exit
// path.
func (l *Loop) Run(backend Backend) error {
	if backend == nil {
		return &platform.StartupError{Stage: "backend", Err: errors.New("nil backend")}
	}
	defer l.stack.Unwind()

	for l.running {
		if !l.Advance(l.clock()) {
			break
		}
		if !l.Renderable() {
			continue
		}
		screen, err := backend.BeginFrame()
		if err != nil {
			return &platform.RenderError{Op: "begin frame", Err: err}
		}
		l.RenderFrame(screen)
		if err := backend.EndFrame(); err != nil {
			return &platform.RenderError{Op: "present", Err: err}
		}
	}
	return nil
}

// Shutdown tears the stack down top to bottom. Drivers that own the outer
// loop themselves (the ebiten adapter) call this after their loop exits;
// Run does it internally.
func (l *Loop) Shutdown() {
	l.running = false
	l.stack.Unwind()
}

// Input implements scene.Context.
func (l *Loop) Input() *input.Snapshot {
	return l.agg.Snapshot()
}

// Push implements scene.Context.
func (l *Loop) Push(sc scene.Scene) {
	l.stack.Push(sc)
}

// Pop implements scene.Context.
func (l *Loop) Pop() {
	l.stack.Pop()
}

// Replace implements scene.Context.
func (l *Loop) Replace(sc scene.Scene) {
	l.stack.Replace(sc)
}

// Stop implements scene.Context. The loop exits before any further update
// or render.
func (l *Loop) Stop() {
	l.running = false
}

// Ticks implements scene.Context.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Seconds implements scene.Context.
func (l *Loop) Seconds() float64 {
	if l.started.IsZero() {
		return 0
	}
	return l.prev.Sub(l.started).Seconds()
}

// ScreenSize implements scene.Context.
func (l *Loop) ScreenSize() (int, int) {
	snap := l.agg.Snapshot()
	return snap.Width, snap.Height
}
