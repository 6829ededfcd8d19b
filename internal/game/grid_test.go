package game

import (
	"testing"

	"github.com/burtbyproxy/gridtactics/internal/input"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

func TestStepDeltas(t *testing.T) {
	v := NewValidator(openGrid(), nil, 32, 32)
	from := Position{X: 96, Y: 96}
	cases := map[input.Direction]Delta{
		input.Up:    {0, -32},
		input.Down:  {0, 32},
		input.Left:  {-32, 0},
		input.Right: {32, 0},
	}
	for dir, want := range cases {
		got, ok := v.Step(dir, from)
		if !ok {
			t.Fatalf("%s: expected step to be legal", dir)
		}
		if got != want {
			t.Fatalf("%s: expected %+v, got %+v", dir, want, got)
		}
		if got.DX != 0 && got.DY != 0 {
			t.Fatalf("%s: expected no cross-axis component, got %+v", dir, got)
		}
	}
}

func TestStepIntoWallAlwaysFails(t *testing.T) {
	g := openGrid()
	g.Set(3, 3, world.TileWall)
	v := NewValidator(g, nil, 32, 32)

	approaches := map[input.Direction]Position{
		input.Right: {X: 64, Y: 96},
		input.Left:  {X: 128, Y: 96},
		input.Down:  {X: 96, Y: 64},
		input.Up:    {X: 96, Y: 128},
	}
	for i := 0; i < 3; i++ {
		for dir, from := range approaches {
			if d, ok := v.Step(dir, from); ok {
				t.Fatalf("%s from %+v: expected wall to block, got %+v", dir, from, d)
			}
		}
	}
}

func TestStepOffMapFails(t *testing.T) {
	v := NewValidator(openGrid(), nil, 32, 32)
	if _, ok := v.Step(input.Left, Position{X: 0, Y: 0}); ok {
		t.Fatal("expected left edge to block")
	}
	if _, ok := v.Step(input.Down, Position{X: 0, Y: 15 * 32}); ok {
		t.Fatal("expected bottom edge to block")
	}
}

func TestStepCustomPredicate(t *testing.T) {
	g := openGrid()
	g.Set(4, 3, 7)
	g.Set(3, 4, world.TileWall)
	v := NewValidator(g, world.Impassable(7), 32, 32)

	if _, ok := v.Step(input.Right, Position{X: 96, Y: 96}); ok {
		t.Fatal("expected tile 7 to block")
	}
	if _, ok := v.Step(input.Down, Position{X: 96, Y: 96}); !ok {
		t.Fatal("expected wall index to pass under a custom predicate")
	}
}
