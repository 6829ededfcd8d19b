// Package config loads the YAML settings for the scene and its front-ends.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/burtbyproxy/gridtactics/internal/input"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the full settings file.
type Config struct {
	Window      WindowConfig       `yaml:"window"`
	Scene       SceneConfig        `yaml:"scene"`
	Log         LogConfig          `yaml:"log"`
	Audio       AudioConfig        `yaml:"audio"`
	Controllers []ControllerConfig `yaml:"controllers"`
}

// WindowConfig controls the graphical front-end.
type WindowConfig struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cell_size"`
}

// SceneConfig controls the scene and its input handling.
type SceneConfig struct {
	Map              string        `yaml:"map"` // empty uses the embedded map
	TileSize         int           `yaml:"tile_size"`
	UnitCount        int           `yaml:"unit_count"`
	Seed             uint64        `yaml:"seed"` // 0 seeds from the clock
	StartCell        []int         `yaml:"start_cell"`
	Throttle         time.Duration `yaml:"throttle"`
	ReplayInterval   time.Duration `yaml:"replay_interval"`
	StickSensitivity float64       `yaml:"stick_sensitivity"`
	Impassable       []int         `yaml:"impassable"`
}

// LogConfig controls the rolling log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// AudioConfig toggles sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ControllerConfig adds or overrides a vendor entry in the mapping table.
// Button fields hold action names such as "confirm" or "menu".
type ControllerConfig struct {
	Vendor string `yaml:"vendor"`
	Name   string `yaml:"name"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	X      string `yaml:"x"`
	Y      string `yaml:"y"`
	L1     string `yaml:"l1"`
	L2     string `yaml:"l2"`
	R1     string `yaml:"r1"`
	R2     string `yaml:"r2"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Grid Tactics", CellSize: 20},
		Scene: SceneConfig{
			TileSize:         32,
			UnitCount:        5,
			StartCell:        []int{3, 3},
			Throttle:         100 * time.Millisecond,
			ReplayInterval:   75 * time.Millisecond,
			StickSensitivity: 0.25,
			Impassable:       []int{int(world.TileWall)},
		},
		Log: LogConfig{
			File:       "gridtactics.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.3},
	}
}

// Load overlays YAML data onto the defaults and validates the result.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and loads the config at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

var hexVendor = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

// Validate checks ranges and names.
func (c Config) Validate() error {
	s := c.Scene
	switch {
	case c.Window.CellSize <= 0:
		return fmt.Errorf("%w: window.cell_size must be positive", ErrInvalid)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: scene.tile_size must be positive", ErrInvalid)
	case s.UnitCount < 0:
		return fmt.Errorf("%w: scene.unit_count must not be negative", ErrInvalid)
	case len(s.StartCell) != 2:
		return fmt.Errorf("%w: scene.start_cell needs two values", ErrInvalid)
	case s.Throttle <= 0:
		return fmt.Errorf("%w: scene.throttle must be positive", ErrInvalid)
	case s.ReplayInterval <= 0:
		return fmt.Errorf("%w: scene.replay_interval must be positive", ErrInvalid)
	case s.StickSensitivity <= 0 || s.StickSensitivity >= 1:
		return fmt.Errorf("%w: scene.stick_sensitivity must be in (0,1)", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0,1]", ErrInvalid)
	}
	if _, err := c.Mappings(); err != nil {
		return err
	}
	return nil
}

// Mappings returns the default controller table extended by Controllers.
func (c Config) Mappings() (input.MappingTable, error) {
	table := input.DefaultMappings()
	for i, cc := range c.Controllers {
		if !hexVendor.MatchString(cc.Vendor) {
			return nil, fmt.Errorf("%w: controllers[%d].vendor %q is not a 4-digit hex id", ErrInvalid, i, cc.Vendor)
		}
		m := input.ControllerMapping{Name: cc.Name}
		fields := []struct {
			name string
			dst  *input.Action
			val  string
		}{
			{"a", &m.A, cc.A}, {"b", &m.B, cc.B}, {"x", &m.X, cc.X}, {"y", &m.Y, cc.Y},
			{"l1", &m.L1, cc.L1}, {"l2", &m.L2, cc.L2}, {"r1", &m.R1, cc.R1}, {"r2", &m.R2, cc.R2},
		}
		for _, f := range fields {
			if f.val == "" {
				continue
			}
			a, ok := input.ParseAction(f.val)
			if !ok {
				return nil, fmt.Errorf("%w: controllers[%d].%s: unknown action %q", ErrInvalid, i, f.name, f.val)
			}
			*f.dst = a
		}
		table = table.With(cc.Vendor, m)
	}
	return table, nil
}

// Passability builds the terrain predicate from Scene.Impassable.
func (c Config) Passability() world.Passability {
	blocked := make([]world.TileIndex, len(c.Scene.Impassable))
	for i, v := range c.Scene.Impassable {
		blocked[i] = world.TileIndex(v)
	}
	return world.Impassable(blocked...)
}

// InputSettings returns the normalizer settings.
func (c Config) InputSettings() input.Settings {
	return input.Settings{Throttle: c.Scene.Throttle, Sensitivity: c.Scene.StickSensitivity}
}
