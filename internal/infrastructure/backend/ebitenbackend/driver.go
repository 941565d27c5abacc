package ebitenbackend

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/apricot/internal/application/loop"
	"github.com/younwookim/apricot/internal/infrastructure/config"
	"github.com/younwookim/apricot/internal/platform"
)

// Driver implements ebiten.Game over an engine loop. Each ebiten tick it
// synthesizes platform events from ebiten's input deltas into src, runs
// the loop's advance phase, and renders during ebiten's draw callback.
//
// src may be nil when the loop reads events from elsewhere (replay
// playback); synthesis is skipped then.
type Driver struct {
	loop  *loop.Loop
	src   *Source
	clock loop.Clock

	screenW int
	screenH int

	prevCursorX int
	prevCursorY int
	hasCursor   bool
}

// NewDriver creates a driver for l with logical screen size w x h. A nil
// clock selects time.Now.
func NewDriver(l *loop.Loop, src *Source, w, h int, clock loop.Clock) *Driver {
	if clock == nil {
		clock = time.Now
	}
	return &Driver{
		loop:    l,
		src:     src,
		clock:   clock,
		screenW: w,
		screenH: h,
	}
}

// Update implements ebiten.Game.
func (d *Driver) Update() error {
	if d.src != nil {
		d.synthesize()
	}
	if !d.loop.Advance(d.clock()) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game. Ebiten clears the screen before every draw
// callback, and presents it after, so only the scene render sits here.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.loop.RenderFrame(screen)
}

// Layout implements ebiten.Game.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.screenW, d.screenH
}

// synthesize turns ebiten's polled input state into platform events, in a
// fixed order: quit, pointer, wheel, buttons, keys.
func (d *Driver) synthesize() {
	if ebiten.IsWindowBeingClosed() {
		d.src.Push(platform.Event{Kind: platform.EventQuit})
	}

	cx, cy := ebiten.CursorPosition()
	if !d.hasCursor {
		d.prevCursorX, d.prevCursorY = cx, cy
		d.hasCursor = true
	}
	if cx != d.prevCursorX || cy != d.prevCursorY {
		d.src.Push(platform.Event{
			Kind: platform.EventMouseMotion,
			X:    float64(cx),
			Y:    float64(cy),
			DX:   float64(cx - d.prevCursorX),
			DY:   float64(cy - d.prevCursorY),
		})
		d.prevCursorX, d.prevCursorY = cx, cy
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		d.src.Push(platform.Event{Kind: platform.EventWheel, DY: wy})
	}

	for b := platform.Button(0); b < platform.ButtonCount; b++ {
		eb := buttonTable[b]
		if inpututil.IsMouseButtonJustPressed(eb) {
			d.src.Push(platform.Event{Kind: platform.EventButtonDown, Button: b})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			d.src.Push(platform.Event{Kind: platform.EventButtonUp, Button: b})
		}
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if pk, ok := mapKey(k); ok {
			d.src.Push(platform.Event{Kind: platform.EventKeyDown, Key: pk})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if pk, ok := mapKey(k); ok {
			d.src.Push(platform.Event{Kind: platform.EventKeyUp, Key: pk})
		}
	}
}

// Run creates the window per cfg and drives l until it stops. Remaining
// scenes are deinitialized before Run returns, on every exit path.
func Run(l *loop.Loop, src *Source, cfg config.WindowConfig, clock loop.Clock) error {
	if l == nil {
		return &platform.StartupError{Stage: "loop", Err: errors.New("nil loop")}
	}

	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)

	driver := NewDriver(l, src, cfg.Width, cfg.Height, clock)
	defer l.Shutdown()

	if err := ebiten.RunGame(driver); err != nil && !errors.Is(err, ebiten.Termination) {
		return &platform.RenderError{Op: "frame", Err: fmt.Errorf("run game loop: %w", err)}
	}
	return nil
}
