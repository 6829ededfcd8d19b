package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/burtbyproxy/gridtactics/internal/input"
)

// holdWindow is how long a direction key counts as held after its last
// event. Terminals report presses and autorepeat but never releases.
const holdWindow = 120 * time.Millisecond

// repeatGap separates autorepeat from separate presses of Space. Events
// closer together than this belong to one held key.
const repeatGap = 60 * time.Millisecond

// termDevice adapts tcell key events to input.Device. It has no gamepad.
//
// Direction keys use the hold window. Space is turned into one-tick pulses,
// one per press: a Space event is committed once no other Space event
// follows within repeatGap, and any run of closely spaced events is treated
// as autorepeat and dropped.
type termDevice struct {
	now  time.Time
	last map[input.Key]time.Time

	spaceAt      time.Time
	spacePending bool
	spaceQueue   int
	spaceDown    bool
}

func newTermDevice() *termDevice {
	return &termDevice{last: make(map[input.Key]time.Time)}
}

// press records a key event at t.
func (d *termDevice) press(k input.Key, t time.Time) {
	if k == input.KeySpace {
		d.pressSpace(t)
		return
	}
	d.last[k] = t
}

func (d *termDevice) pressSpace(t time.Time) {
	near := !d.spaceAt.IsZero() && t.Sub(d.spaceAt) < repeatGap
	switch {
	case d.spacePending && near:
		// A second event this soon means the key is held.
		d.spacePending = false
	case near:
	default:
		if d.spacePending {
			d.spaceQueue++
		}
		d.spacePending = true
	}
	d.spaceAt = t
}

// advance sets the time used by KeyPressed and steps the Space pulse.
func (d *termDevice) advance(now time.Time) {
	d.now = now
	if d.spacePending && now.Sub(d.spaceAt) >= repeatGap {
		d.spacePending = false
		d.spaceQueue++
	}
	switch {
	case d.spaceDown:
		d.spaceDown = false
	case d.spaceQueue > 0:
		d.spaceQueue--
		d.spaceDown = true
	}
}

func (d *termDevice) KeyPressed(k input.Key) bool {
	if k == input.KeySpace {
		return d.spaceDown
	}
	t, ok := d.last[k]
	return ok && d.now.Sub(t) < holdWindow
}

func (d *termDevice) GamepadButtonPressed(int) bool { return false }
func (d *termDevice) GamepadAxis(int) float64       { return 0 }

// translate maps a tcell key event to a logical key.
func translate(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.KeyW, true
		case 'a', 'A':
			return input.KeyA, true
		case 's', 'S':
			return input.KeyS, true
		case 'd', 'D':
			return input.KeyD, true
		case ' ':
			return input.KeySpace, true
		}
	}
	return 0, false
}
