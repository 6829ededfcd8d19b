package game

import (
	"fmt"
	"math/rand/v2"
)

// HP is a current/maximum hit point pair.
type HP struct {
	Left  int
	Total int
}

// CharConfig is the fixed-shape character sheet shown in the detail panel.
type CharConfig struct {
	Name   string
	Avatar string
	HP     HP
}

// UnitSpec describes a unit to create at scene start.
type UnitSpec struct {
	ID     int
	Char   CharConfig
	Sprite string
	X, Y   int
}

const (
	defaultAvatar = "dude-avatar.png"
	defaultSprite = "jacen1.png"
	rosterOffset  = 3
)

// DefaultRoster places count units on the diagonal starting at cell (3,3)
// with randomized hit points.
func DefaultRoster(count, tileSize int, rng *rand.Rand) []UnitSpec {
	specs := make([]UnitSpec, 0, count)
	for i := range count {
		total := rng.IntN(50) + 15
		left := min(rng.IntN(total)+15, total)
		specs = append(specs, UnitSpec{
			ID: i,
			Char: CharConfig{
				Name:   fmt.Sprintf("dude-%d", i),
				Avatar: defaultAvatar,
				HP:     HP{Left: left, Total: total},
			},
			Sprite: defaultSprite,
			X:      (i + rosterOffset) * tileSize,
			Y:      (i + rosterOffset) * tileSize,
		})
	}
	return specs
}

// UnitView is a read-only snapshot of a unit for rendering and UI.
type UnitView struct {
	ID        int
	Char      CharConfig
	Sprite    string
	Pos       Position
	Selected  bool
	Replaying bool
}
