package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/apricot/internal/application/scene"
	"github.com/younwookim/apricot/internal/platform"
)

// Colors for rendering
var (
	colorTitleBG = color.RGBA{26, 26, 46, 255}
	colorPlayBG  = color.RGBA{22, 33, 62, 255}
	colorSquare  = color.RGBA{100, 200, 100, 255}
	colorCursor  = color.RGBA{255, 215, 0, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// titleScene is the first scene on the stack. Enter or a click starts a
// play scene on top of it; Q stops the application.
type titleScene struct {
	prevEnter bool
}

func newTitleScene() *titleScene {
	return &titleScene{}
}

func (t *titleScene) Update(ctx scene.Context) {
	in := ctx.Input()

	enter := in.KeyDown(platform.KeyEnter)
	if (enter && !t.prevEnter) || in.ButtonClicked(platform.ButtonPrimary) {
		t.prevEnter = enter
		ctx.Push(newPlayScene())
		return
	}
	t.prevEnter = enter

	if in.KeyDown(platform.KeyQ) {
		ctx.Stop()
	}
}

func (t *titleScene) Render(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorTitleBG)
	w, h := ctx.ScreenSize()
	ebitenutil.DebugPrintAt(screen, "APRICOT DEMO", w/2-40, h/2-30)
	ebitenutil.DebugPrintAt(screen, "Enter/Click: start | Q: quit | ESC: quit", w/2-120, h/2)
}

func (t *titleScene) Deinit() error {
	return nil
}

// playScene moves a square with WASD or the arrow keys, sizes it with the
// wheel, and teleports it to the cursor on click. Enter pauses, T returns
// to the title by replacing this scene.
type playScene struct {
	x, y      float64
	size      float64
	prevEnter bool
	prevT     bool
}

func newPlayScene() *playScene {
	// prevEnter starts true: the Enter press that started this scene
	// must be released before it can pause.
	return &playScene{x: 320, y: 180, size: 24, prevEnter: true}
}

func (p *playScene) Update(ctx scene.Context) {
	in := ctx.Input()

	enter := in.KeyDown(platform.KeyEnter)
	if enter && !p.prevEnter {
		p.prevEnter = enter
		ctx.Push(newPauseScene())
		return
	}
	p.prevEnter = enter

	tKey := in.KeyDown(platform.KeyT)
	if tKey && !p.prevT {
		p.prevT = tKey
		ctx.Replace(newTitleScene())
		return
	}
	p.prevT = tKey

	// Per-tick movement: the step is fixed, so speed is constant
	// regardless of render rate.
	const speed = 3.0
	if in.KeyDown(platform.KeyA) || in.KeyDown(platform.KeyArrowLeft) {
		p.x -= speed
	}
	if in.KeyDown(platform.KeyD) || in.KeyDown(platform.KeyArrowRight) {
		p.x += speed
	}
	if in.KeyDown(platform.KeyW) || in.KeyDown(platform.KeyArrowUp) {
		p.y -= speed
	}
	if in.KeyDown(platform.KeyS) || in.KeyDown(platform.KeyArrowDown) {
		p.y += speed
	}

	p.size += in.Wheel * 2
	if p.size < 8 {
		p.size = 8
	}
	if p.size > 96 {
		p.size = 96
	}

	if in.ButtonClicked(platform.ButtonPrimary) {
		p.x = in.MouseX
		p.y = in.MouseY
	}

	w, h := ctx.ScreenSize()
	p.x = clamp(p.x, 0, float64(w)-p.size)
	p.y = clamp(p.y, 0, float64(h)-p.size)
}

func (p *playScene) Render(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorPlayBG)
	in := ctx.Input()

	ebitenutil.DrawRect(screen, p.x, p.y, p.size, p.size, colorSquare)
	ebitenutil.DrawRect(screen, in.MouseX-2, in.MouseY-2, 4, 4, colorCursor)

	ebitenutil.DebugPrint(screen, "WASD: move | Wheel: size | Click: teleport | Enter: pause | T: title")
	status := fmt.Sprintf("tick %d  %.1fs", ctx.Ticks(), ctx.Seconds())
	_, h := ctx.ScreenSize()
	ebitenutil.DebugPrintAt(screen, status, 10, h-20)
}

func (p *playScene) Deinit() error {
	return nil
}

// pauseScene sits on top of a play scene, freezing it. Enter resumes by
// popping itself; B pops both itself and the play scene, back to the
// title.
type pauseScene struct {
	prevEnter bool
	prevB     bool
}

func newPauseScene() *pauseScene {
	return &pauseScene{prevEnter: true}
}

func (p *pauseScene) Update(ctx scene.Context) {
	in := ctx.Input()

	enter := in.KeyDown(platform.KeyEnter)
	if enter && !p.prevEnter {
		ctx.Pop()
		return
	}
	p.prevEnter = enter

	b := in.KeyDown(platform.KeyB)
	if b && !p.prevB {
		// Pop the pause scene and the play scene beneath it. Both take
		// effect immediately; the loop skips the rest of this frame.
		ctx.Pop()
		ctx.Pop()
		return
	}
	p.prevB = b
}

func (p *pauseScene) Render(ctx scene.Context, screen *ebiten.Image) {
	// The play scene beneath is suspended, not rendered, so the overlay
	// draws on a cleared screen.
	w, h := ctx.ScreenSize()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-20, h/2-20)
	ebitenutil.DebugPrintAt(screen, "Enter: resume | B: back to title", w/2-90, h/2)
}

func (p *pauseScene) Deinit() error {
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
