package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/apricot/internal/platform"
)

var keyTable = map[ebiten.Key]platform.Key{
	ebiten.KeyA: platform.KeyA,
	ebiten.KeyB: platform.KeyB,
	ebiten.KeyC: platform.KeyC,
	ebiten.KeyD: platform.KeyD,
	ebiten.KeyE: platform.KeyE,
	ebiten.KeyF: platform.KeyF,
	ebiten.KeyG: platform.KeyG,
	ebiten.KeyH: platform.KeyH,
	ebiten.KeyI: platform.KeyI,
	ebiten.KeyJ: platform.KeyJ,
	ebiten.KeyK: platform.KeyK,
	ebiten.KeyL: platform.KeyL,
	ebiten.KeyM: platform.KeyM,
	ebiten.KeyN: platform.KeyN,
	ebiten.KeyO: platform.KeyO,
	ebiten.KeyP: platform.KeyP,
	ebiten.KeyQ: platform.KeyQ,
	ebiten.KeyR: platform.KeyR,
	ebiten.KeyS: platform.KeyS,
	ebiten.KeyT: platform.KeyT,
	ebiten.KeyU: platform.KeyU,
	ebiten.KeyV: platform.KeyV,
	ebiten.KeyW: platform.KeyW,
	ebiten.KeyX: platform.KeyX,
	ebiten.KeyY: platform.KeyY,
	ebiten.KeyZ: platform.KeyZ,

	ebiten.KeyDigit0: platform.Key0,
	ebiten.KeyDigit1: platform.Key1,
	ebiten.KeyDigit2: platform.Key2,
	ebiten.KeyDigit3: platform.Key3,
	ebiten.KeyDigit4: platform.Key4,
	ebiten.KeyDigit5: platform.Key5,
	ebiten.KeyDigit6: platform.Key6,
	ebiten.KeyDigit7: platform.Key7,
	ebiten.KeyDigit8: platform.Key8,
	ebiten.KeyDigit9: platform.Key9,

	ebiten.KeyEscape:     platform.KeyEscape,
	ebiten.KeySpace:      platform.KeySpace,
	ebiten.KeyEnter:      platform.KeyEnter,
	ebiten.KeyTab:        platform.KeyTab,
	ebiten.KeyBackspace:  platform.KeyBackspace,
	ebiten.KeyShift:      platform.KeyShift,
	ebiten.KeyControl:    platform.KeyControl,
	ebiten.KeyAlt:        platform.KeyAlt,
	ebiten.KeyArrowUp:    platform.KeyArrowUp,
	ebiten.KeyArrowDown:  platform.KeyArrowDown,
	ebiten.KeyArrowLeft:  platform.KeyArrowLeft,
	ebiten.KeyArrowRight: platform.KeyArrowRight,
}

var buttonTable = [platform.ButtonCount]ebiten.MouseButton{
	platform.ButtonPrimary:   ebiten.MouseButtonLeft,
	platform.ButtonMiddle:    ebiten.MouseButtonMiddle,
	platform.ButtonSecondary: ebiten.MouseButtonRight,
	platform.ButtonAux1:      ebiten.MouseButton3,
	platform.ButtonAux2:      ebiten.MouseButton4,
}

// mapKey translates an ebiten key code. Unmapped keys are dropped.
func mapKey(k ebiten.Key) (platform.Key, bool) {
	pk, ok := keyTable[k]
	return pk, ok
}
