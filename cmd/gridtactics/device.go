package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/burtbyproxy/gridtactics/internal/input"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyW:          ebiten.KeyW,
	input.KeyA:          ebiten.KeyA,
	input.KeyS:          ebiten.KeyS,
	input.KeyD:          ebiten.KeyD,
	input.KeySpace:      ebiten.KeySpace,
}

// device adapts Ebitengine input to input.Device. Only the first connected
// gamepad is used.
type device struct {
	pad      ebiten.GamepadID
	attached bool
	ids      []ebiten.GamepadID
}

func (d *device) KeyPressed(k input.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (d *device) GamepadButtonPressed(index int) bool {
	if !d.attached {
		return false
	}
	if ebiten.IsStandardGamepadLayoutAvailable(d.pad) {
		return ebiten.IsStandardGamepadButtonPressed(d.pad, ebiten.StandardGamepadButton(index))
	}
	return ebiten.IsGamepadButtonPressed(d.pad, ebiten.GamepadButton(index))
}

func (d *device) GamepadAxis(index int) float64 {
	if !d.attached {
		return 0
	}
	if ebiten.IsStandardGamepadLayoutAvailable(d.pad) {
		return ebiten.StandardGamepadAxisValue(d.pad, ebiten.StandardGamepadAxis(index))
	}
	if index >= ebiten.GamepadAxisCount(d.pad) {
		return 0
	}
	return ebiten.GamepadAxisValue(d.pad, index)
}

// gamepadEvent is a connect or disconnect seen this frame.
type gamepadEvent struct {
	connected bool
	identity  string
}

// poll tracks gamepad hot-plugging and returns what changed.
func (d *device) poll() []gamepadEvent {
	var events []gamepadEvent
	if d.attached && inpututil.IsGamepadJustDisconnected(d.pad) {
		d.attached = false
		events = append(events, gamepadEvent{connected: false})
	}
	if d.attached {
		return events
	}

	d.ids = inpututil.AppendJustConnectedGamepadIDs(d.ids[:0])
	if len(d.ids) == 0 {
		// A pad may already be plugged in at startup.
		d.ids = ebiten.AppendGamepadIDs(d.ids[:0])
	}
	if len(d.ids) > 0 {
		d.pad = d.ids[0]
		d.attached = true
		identity := input.IdentityFromSDL(ebiten.GamepadName(d.pad), ebiten.GamepadSDLID(d.pad))
		events = append(events, gamepadEvent{connected: true, identity: identity})
	}
	return events
}
