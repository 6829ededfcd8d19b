// Package app wires config, logging, the map and the scene together for
// the front-ends.
package app

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/burtbyproxy/gridtactics/assets"
	"github.com/burtbyproxy/gridtactics/internal/config"
	"github.com/burtbyproxy/gridtactics/internal/game"
	"github.com/burtbyproxy/gridtactics/internal/render"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

// Flags are the command-line overrides shared by both front-ends.
type Flags struct {
	Config string
	Map    string
	Seed   uint64
}

// ParseFlags reads Flags from args using fs.
func ParseFlags(fs *flag.FlagSet, args []string) (Flags, error) {
	var f Flags
	fs.StringVar(&f.Config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.Map, "map", "", "path to a Tiled JSON map")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for unit stats (0 uses the config)")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// LoadConfig returns the config named by f, or the embedded default,
// with flag overrides applied.
func LoadConfig(f Flags) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.Config != "" {
		cfg, err = config.LoadFile(f.Config)
	} else {
		cfg, err = config.Load(assets.DefaultConfig)
	}
	if err != nil {
		return config.Config{}, err
	}
	if f.Map != "" {
		cfg.Scene.Map = f.Map
	}
	if f.Seed != 0 {
		cfg.Scene.Seed = f.Seed
	}
	return cfg, nil
}

// LoadGrid loads the map named in cfg, or the embedded skirmish map.
func LoadGrid(cfg config.SceneConfig) (*world.TileGrid, error) {
	data := assets.SkirmishMap
	if cfg.Map != "" {
		var err error
		if data, err = os.ReadFile(cfg.Map); err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
	}
	layout, err := world.LoadMapLayout(data)
	if err != nil {
		return nil, err
	}
	if layout.TileWidth != cfg.TileSize || layout.TileHeight != cfg.TileSize {
		return nil, fmt.Errorf("%w: map tiles are %dx%d, config expects %d",
			world.ErrBadLayout, layout.TileWidth, layout.TileHeight, cfg.TileSize)
	}
	return layout.ToTileGrid(), nil
}

// Session is a running scene with its render-side collaborators.
type Session struct {
	Config   config.Config
	Logger   *zap.SugaredLogger
	Grid     *world.TileGrid
	Scene    *game.Scene
	Sprites  *render.Sprites
	Panel    *render.Panel
	Renderer *render.SceneRenderer
}

// NewSession builds a scene from cfg. cues may be nil.
func NewSession(cfg config.Config, logger *zap.SugaredLogger, cues game.Cues) (*Session, error) {
	grid, err := LoadGrid(cfg.Scene)
	if err != nil {
		return nil, err
	}
	mappings, err := cfg.Mappings()
	if err != nil {
		return nil, err
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sprites := render.NewSprites(nil)
	panel := render.NewPanel(logger)
	log := game.NewMessageLog(50, 48)
	cx, cy := grid.CellToWorld(cfg.Scene.StartCell[0], cfg.Scene.StartCell[1])

	scene := game.NewScene(grid, game.Options{
		Units:          game.DefaultRoster(cfg.Scene.UnitCount, cfg.Scene.TileSize, rng),
		Cursor:         game.Position{X: cx, Y: cy},
		Passable:       cfg.Passability(),
		Input:          cfg.InputSettings(),
		ReplayInterval: cfg.Scene.ReplayInterval,
		Mappings:       mappings,
		Visuals:        sprites,
		Panel:          panel,
		Cues:           cues,
		Logger:         logger,
		Log:            log,
	})
	logger.Infow("session started", "seed", seed, "map", mapName(cfg.Scene.Map))

	return &Session{
		Config:   cfg,
		Logger:   logger,
		Grid:     grid,
		Scene:    scene,
		Sprites:  sprites,
		Panel:    panel,
		Renderer: render.NewSceneRenderer(grid, sprites, panel, log),
	}, nil
}

// CopyPanel copies the open detail panel to the clipboard and reports the
// outcome on the status line.
func (s *Session) CopyPanel() {
	if err := s.Panel.CopyToClipboard(); err != nil {
		s.Logger.Warnw("clipboard copy failed", "err", err)
		s.Renderer.Status = "copy failed"
		return
	}
	s.Renderer.Status = "unit copied"
}

// Close tears the scene down and flushes the log.
func (s *Session) Close() {
	s.Scene.Close()
	_ = s.Logger.Sync()
}

func mapName(path string) string {
	if path == "" {
		return "embedded:skirmish"
	}
	return path
}
