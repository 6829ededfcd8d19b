package input

import (
	"math"
	"time"
)

// Settings tunes the normalizer.
type Settings struct {
	Throttle    time.Duration // minimum spacing between steps on one axis
	Sensitivity float64       // stick dead zone; |v| must exceed it
}

// DefaultSettings returns a 100ms window and a 0.25 dead zone.
func DefaultSettings() Settings {
	return Settings{Throttle: 100 * time.Millisecond, Sensitivity: 0.25}
}

// Normalizer merges stick, d-pad and keyboard into discrete directions.
//
// Each tick every source is polled in order (stick, d-pad, keyboard) and the
// last observation wins. A direction is emitted only if the previous emission
// is at least one throttle window old, whatever source or axis produced it,
// so holding two directions never yields a diagonal step.
type Normalizer struct {
	settings Settings
	last     time.Time
	fired    bool

	obs  Direction
	seen bool
	out  [1]Direction
}

// NewNormalizer creates a normalizer with the given settings.
func NewNormalizer(s Settings) *Normalizer {
	return &Normalizer{settings: s}
}

// Poll samples dev and returns at most one direction that passes the
// throttle. Gamepad sources are skipped unless pad is set.
// The returned slice is reused by the next call.
func (n *Normalizer) Poll(now time.Time, dev Device, pad bool) []Direction {
	n.seen = false

	if pad {
		n.pollStick(dev)
		n.pollPad(dev)
	}
	n.pollKeys(dev)

	out := n.out[:0]
	if !n.seen {
		return out
	}
	if n.fired && now.Sub(n.last) < n.settings.Throttle {
		return out
	}
	n.fired = true
	n.last = now
	return append(out, n.obs)
}

// Reset forgets throttle history.
func (n *Normalizer) Reset() {
	n.fired = false
	n.last = time.Time{}
}

func (n *Normalizer) observe(d Direction) {
	n.obs = d
	n.seen = true
}

func (n *Normalizer) pollStick(dev Device) {
	s := n.settings.Sensitivity
	if x := dev.GamepadAxis(AxisLeftX); math.Abs(x) > s {
		if x < 0 {
			n.observe(Left)
		} else {
			n.observe(Right)
		}
	}
	if y := dev.GamepadAxis(AxisLeftY); math.Abs(y) > s {
		if y < 0 {
			n.observe(Up)
		} else {
			n.observe(Down)
		}
	}
}

func (n *Normalizer) pollPad(dev Device) {
	if dev.GamepadButtonPressed(PadUp) {
		n.observe(Up)
	}
	if dev.GamepadButtonPressed(PadDown) {
		n.observe(Down)
	}
	if dev.GamepadButtonPressed(PadRight) {
		n.observe(Right)
	}
	if dev.GamepadButtonPressed(PadLeft) {
		n.observe(Left)
	}
}

func (n *Normalizer) pollKeys(dev Device) {
	for _, b := range keyBindings {
		if dev.KeyPressed(b.keys[0]) || dev.KeyPressed(b.keys[1]) {
			n.observe(b.dir)
		}
	}
}
