package game

import (
	"github.com/burtbyproxy/gridtactics/internal/input"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

// Delta is a validated one-tile step in world units.
type Delta struct {
	DX, DY int
}

// Tilemap answers tile lookups by world position.
type Tilemap interface {
	TileAt(worldX, worldY int, createIfMissing bool) world.TileIndex
}

// Validator decides whether a one-tile step is legal.
type Validator struct {
	tiles    Tilemap
	passable world.Passability
	tileW    int
	tileH    int
}

// NewValidator creates a validator. A nil predicate means world.DefaultPassable.
func NewValidator(tiles Tilemap, passable world.Passability, tileW, tileH int) *Validator {
	if passable == nil {
		passable = world.DefaultPassable
	}
	return &Validator{tiles: tiles, passable: passable, tileW: tileW, tileH: tileH}
}

// DeltaFor returns the candidate step for d, before any terrain check.
func (v *Validator) DeltaFor(d input.Direction) Delta {
	dx, dy := d.Unit()
	return Delta{DX: dx * v.tileW, DY: dy * v.tileH}
}

// Step checks the destination tile of a move from pos and returns the delta
// if it is passable.
func (v *Validator) Step(d input.Direction, pos Position) (Delta, bool) {
	delta := v.DeltaFor(d)
	tile := v.tiles.TileAt(pos.X+delta.DX, pos.Y+delta.DY, true)
	if !v.passable(tile) {
		return Delta{}, false
	}
	return delta, true
}
