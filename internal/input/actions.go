package input

// faceButtons is the priority order used when several are held at once.
var faceButtons = [...]Button{ButtonA, ButtonB, ButtonX, ButtonY}

var shoulderButtons = [...]Button{ButtonL1, ButtonR1, ButtonL2, ButtonR2}

// ActionReader turns held keys and buttons into edge-triggered actions.
type ActionReader struct {
	prevSpace bool
	prev      [buttonCount]bool
	out       []Action
}

// NewActionReader creates a reader with nothing held.
func NewActionReader() *ActionReader {
	return &ActionReader{out: make([]Action, 0, 4)}
}

// Poll returns the actions started this tick. Space always confirms.
// Gamepad buttons only produce actions through a known mapping; when a face
// button goes down, the first held of A, B, X, Y decides the action.
// The returned slice is reused by the next call.
func (r *ActionReader) Poll(dev Device, c *Controller) []Action {
	r.out = r.out[:0]

	space := dev.KeyPressed(KeySpace)
	if space && !r.prevSpace {
		r.out = append(r.out, ActionConfirm)
	}
	r.prevSpace = space

	if c == nil {
		r.prev = [buttonCount]bool{}
		return r.out
	}

	var held [buttonCount]bool
	for b := Button(0); b < buttonCount; b++ {
		held[b] = dev.GamepadButtonPressed(int(b))
	}

	if c.Known {
		faceDown := false
		for _, b := range faceButtons {
			if held[b] && !r.prev[b] {
				faceDown = true
				break
			}
		}
		if faceDown {
			for _, b := range faceButtons {
				if held[b] {
					r.out = append(r.out, c.Mapping.For(b))
					break
				}
			}
		}
		for _, b := range shoulderButtons {
			if held[b] && !r.prev[b] {
				r.out = append(r.out, c.Mapping.For(b))
			}
		}
	}

	r.prev = held
	return r.out
}
