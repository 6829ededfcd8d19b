package game

import (
	"math/rand/v2"
	"testing"
)

func TestDefaultRoster(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	specs := DefaultRoster(5, 32, rng)
	if len(specs) != 5 {
		t.Fatalf("expected 5 units, got %d", len(specs))
	}
	for i, u := range specs {
		if u.ID != i {
			t.Fatalf("expected id %d, got %d", i, u.ID)
		}
		if want := (i + 3) * 32; u.X != want || u.Y != want {
			t.Fatalf("unit %d: expected (%d,%d), got (%d,%d)", i, want, want, u.X, u.Y)
		}
		hp := u.Char.HP
		if hp.Total < 15 || hp.Total >= 65 {
			t.Fatalf("unit %d: total hp %d out of range", i, hp.Total)
		}
		if hp.Left < 15 || hp.Left > hp.Total {
			t.Fatalf("unit %d: hp left %d out of range for total %d", i, hp.Left, hp.Total)
		}
		if u.Char.Avatar != "dude-avatar.png" {
			t.Fatalf("unit %d: unexpected avatar %q", i, u.Char.Avatar)
		}
	}
}
