package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/burtbyproxy/gridtactics/internal/config"
	"github.com/burtbyproxy/gridtactics/internal/game"
	"github.com/burtbyproxy/gridtactics/internal/logging"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f, err := ParseFlags(fs, []string{"-seed", "7", "-map", "m.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Seed != 7 || f.Map != "m.json" || f.Config != "" {
		t.Fatalf("unexpected flags: %+v", f)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(Flags{Seed: 42, Map: "other.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scene.Seed != 42 || cfg.Scene.Map != "other.json" {
		t.Fatalf("expected overrides applied, got %+v", cfg.Scene)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Seed = 1
	s, err := NewSession(cfg, logging.Nop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	units := s.Scene.Units()
	if len(units) != 5 {
		t.Fatalf("expected 5 units, got %d", len(units))
	}
	cursor, anim := s.Scene.Cursor()
	if cursor != (game.Position{X: 96, Y: 96}) || anim != game.AnimIdle {
		t.Fatalf("expected idle cursor at (96,96), got %+v %q", cursor, anim)
	}
	if units[0].Pos != cursor {
		t.Fatalf("expected unit 0 under the cursor, got %+v", units[0].Pos)
	}
	if s.Grid.Width != 20 || s.Grid.Height != 16 {
		t.Fatalf("expected 20x16 grid, got %dx%d", s.Grid.Width, s.Grid.Height)
	}
}

func TestLoadGridChecksTileSize(t *testing.T) {
	cfg := config.Default().Scene
	cfg.TileSize = 16
	if _, err := LoadGrid(cfg); !errors.Is(err, world.ErrBadLayout) {
		t.Fatalf("expected ErrBadLayout, got %v", err)
	}

	cfg = config.Default().Scene
	cfg.Map = filepath.Join(t.TempDir(), "missing.json")
	if _, err := LoadGrid(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
