package game

import (
	"time"

	"github.com/burtbyproxy/gridtactics/internal/input"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

type fakeDevice struct {
	keys    map[input.Key]bool
	buttons map[int]bool
	axes    map[int]float64
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{keys: map[input.Key]bool{}, buttons: map[int]bool{}, axes: map[int]float64{}}
}

func (f *fakeDevice) KeyPressed(k input.Key) bool         { return f.keys[k] }
func (f *fakeDevice) GamepadButtonPressed(index int) bool { return f.buttons[index] }
func (f *fakeDevice) GamepadAxis(index int) float64       { return f.axes[index] }

func (f *fakeDevice) release() {
	f.keys = map[input.Key]bool{}
	f.buttons = map[int]bool{}
	f.axes = map[int]float64{}
}

type recorder struct {
	spawned   []int
	ghosts    []int
	destroyed int
	anims     []string
	opened    []int
	closed    int
	cues      []Cue
}

func (r *recorder) SpawnUnit(u UnitView)  { r.spawned = append(r.spawned, u.ID) }
func (r *recorder) CloneGhost(u UnitView) { r.ghosts = append(r.ghosts, u.ID) }
func (r *recorder) DestroyGhost()         { r.destroyed++ }
func (r *recorder) PlayCursor(anim string) {
	r.anims = append(r.anims, anim)
}
func (r *recorder) Open(u UnitView) { r.opened = append(r.opened, u.ID) }
func (r *recorder) Close()          { r.closed++ }
func (r *recorder) Play(c Cue)      { r.cues = append(r.cues, c) }

func (r *recorder) lastAnim() string {
	if len(r.anims) == 0 {
		return ""
	}
	return r.anims[len(r.anims)-1]
}

// openGrid returns a 20x16 grid of 32px tiles with no walls.
func openGrid() *world.TileGrid {
	return world.NewTileGrid(20, 16, 32, 32)
}

func unitAt(id, x, y int) UnitSpec {
	return UnitSpec{
		ID:   id,
		Char: CharConfig{Name: "dude", Avatar: "dude-avatar.png", HP: HP{Left: 20, Total: 30}},
		X:    x,
		Y:    y,
	}
}

func newTestScene(grid *world.TileGrid, cursor Position, units ...UnitSpec) (*Scene, *recorder) {
	rec := &recorder{}
	s := NewScene(grid, Options{
		Units:   units,
		Cursor:  cursor,
		Visuals: rec,
		Panel:   rec,
		Cues:    rec,
	})
	return s, rec
}
