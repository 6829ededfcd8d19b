package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/burtbyproxy/gridtactics/internal/app"
	"github.com/burtbyproxy/gridtactics/internal/logging"
	"github.com/burtbyproxy/gridtactics/internal/render"
)

const tickRate = 16 * time.Millisecond

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

	// Terminal sessions run silent.
	sess, err := app.NewSession(cfg, logger, nil)
	if err != nil {
		logger.Fatalf("start scene: %v", err)
	}
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("terminal init: %v", err)
	}
	defer screen.Fini()

	if err := run(screen, sess); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the scene from a ticker. Terminal events are read on their own
// goroutine and handed over through a channel, so only this loop touches
// the scene.
func run(screen tcell.Screen, sess *app.Session) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	dev := newTermDevice()
	buf := sess.Renderer.NewBuffer()
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C') {
					sess.CopyPanel()
					continue
				}
				if k, ok := translate(ev); ok {
					dev.press(k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dev.advance(now)
			sess.Scene.Tick(now, dev)
			sess.Renderer.Draw(buf, sess.Scene, now)
			blit(screen, buf)
			screen.Show()
		}
	}
}

// blit copies buf to the terminal.
func blit(screen tcell.Screen, buf *render.CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			c := buf.Cells[y*buf.Cols+x]
			r := render.CP437ToUnicode[c.Glyph]
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(paletteColor(c.FG)).
		Background(paletteColor(c.BG)).
		Dim(c.Dim)
}

func paletteColor(i uint8) tcell.Color {
	p := render.Palette[i&0x0f]
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}
