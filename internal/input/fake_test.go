package input

// fakeDevice is a scripted raw device.
type fakeDevice struct {
	keys    map[Key]bool
	buttons map[int]bool
	axes    map[int]float64
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		keys:    map[Key]bool{},
		buttons: map[int]bool{},
		axes:    map[int]float64{},
	}
}

func (f *fakeDevice) KeyPressed(k Key) bool               { return f.keys[k] }
func (f *fakeDevice) GamepadButtonPressed(index int) bool { return f.buttons[index] }
func (f *fakeDevice) GamepadAxis(index int) float64       { return f.axes[index] }

func (f *fakeDevice) release() {
	f.keys = map[Key]bool{}
	f.buttons = map[int]bool{}
	f.axes = map[int]float64{}
}
