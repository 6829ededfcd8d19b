package game

import "github.com/mlange-42/ark/ecs"

// Position is a world position in pixels, always tile aligned.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Unit is the identity and character sheet of a unit entity.
type Unit struct {
	ID     int
	Char   CharConfig
	Sprite string
}

// Path holds the steps recorded for the selected unit.
type Path struct {
	Steps []Delta
}

// Cursor marks the player-controlled selector.
type Cursor struct {
	Anim string
}

// Ghost marks the translucent preview of a selected unit.
type Ghost struct {
	Of ecs.Entity
}

// Cursor animations.
const (
	AnimIdle   = "selector_idle"
	AnimActive = "selector_active"
)
