package input

// Key is a logical keyboard key. Front-ends translate their own key codes.
type Key uint8

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
)

// Standard gamepad indices (W3C standard layout).
const (
	PadUp    = 12
	PadDown  = 13
	PadLeft  = 14
	PadRight = 15

	AxisLeftX = 0
	AxisLeftY = 1
)

// Device is the raw device layer polled once per tick.
// Gamepad queries refer to the active controller and return zero values
// when none is attached.
type Device interface {
	KeyPressed(k Key) bool
	GamepadButtonPressed(index int) bool
	GamepadAxis(index int) float64
}

// keyBindings lists the keys bound to each direction, arrows first.
var keyBindings = [...]struct {
	dir  Direction
	keys [2]Key
}{
	{Up, [2]Key{KeyArrowUp, KeyW}},
	{Down, [2]Key{KeyArrowDown, KeyS}},
	{Left, [2]Key{KeyArrowLeft, KeyA}},
	{Right, [2]Key{KeyArrowRight, KeyD}},
}
