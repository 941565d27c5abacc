package platform

// Key is an engine key code. Codes index the input snapshot's key array, so
// they must stay below KeyCount.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyShift
	KeyControl
	KeyAlt
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	// KeyCount is the size of the snapshot's key-state array.
	KeyCount = 256
)

// KeyCancel is the key that requests loop termination when pressed.
const KeyCancel = KeyEscape

// Valid reports whether k can index a key-state array.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < KeyCount
}
