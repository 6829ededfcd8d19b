package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/burtbyproxy/gridtactics/internal/app"
	"github.com/burtbyproxy/gridtactics/internal/audio"
	"github.com/burtbyproxy/gridtactics/internal/game"
	"github.com/burtbyproxy/gridtactics/internal/logging"
	"github.com/burtbyproxy/gridtactics/internal/render"
	"github.com/burtbyproxy/gridtactics/internal/render/glyph"
)

// Game is the Ebitengine game struct. It owns the window, raw input and
// drawing. All scene state lives in sess.
type Game struct {
	sess     *app.Session
	renderer *glyph.Renderer
	buffer   *render.CellBuffer
	dev      *device
}

func NewGame(sess *app.Session, cellSize int) *Game {
	return &Game{
		sess:     sess,
		renderer: glyph.NewRenderer(glyph.NewAtlas(), cellSize, cellSize),
		buffer:   sess.Renderer.NewBuffer(),
		dev:      &device{},
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	scene := g.sess.Scene
	for _, ev := range g.dev.poll() {
		if ev.connected {
			scene.ConnectController(ev.identity)
		} else {
			scene.DisconnectController()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.CopyPanel()
	}

	scene.Tick(time.Now(), g.dev)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sess.Renderer.Draw(g.buffer, g.sess.Scene, time.Now())
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size(g.buffer)
}

func main() {
	flags, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("flags: %v", err)
	}
	cfg, err := app.LoadConfig(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	var cues game.Cues
	if cfg.Audio.Enabled {
		c := audio.NewCues(cfg.Audio.Volume)
		if err := c.Initialize(); err != nil {
			logger.Warnw("audio disabled", "err", err)
		} else {
			defer c.Close()
			cues = c
		}
	}

	sess, err := app.NewSession(cfg, logger, cues)
	if err != nil {
		logger.Fatalf("start scene: %v", err)
	}
	defer sess.Close()

	g := NewGame(sess, cfg.Window.CellSize)
	w, h := g.renderer.Size(g.buffer)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorw("game exited", "err", err)
	}
}
