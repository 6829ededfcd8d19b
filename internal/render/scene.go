package render

import (
	"fmt"
	"time"

	"github.com/burtbyproxy/gridtactics/internal/game"
	"github.com/burtbyproxy/gridtactics/internal/world"
)

// SceneView is the read side of a scene.
type SceneView interface {
	Units() []game.UnitView
	Cursor() (game.Position, string)
	Ghost() (game.Position, bool)
	State() game.State
}

// Layout places the map, the detail panel and the log on screen.
type Layout struct {
	Cols, Rows     int
	MapX, MapY     int
	PanelX, PanelY int
	PanelW         int
	LogX, LogY     int
	LogRows        int
}

const (
	panelWidth = 28
	logRows    = 5
)

// NewLayout sizes the screen around a map of the given cell dimensions.
func NewLayout(mapW, mapH int) Layout {
	l := Layout{
		MapX:    1,
		MapY:    1,
		PanelW:  panelWidth,
		LogRows: logRows,
	}
	l.PanelX = l.MapX + mapW + 2
	l.PanelY = l.MapY
	l.LogX = l.MapX
	l.LogY = l.MapY + mapH + 1
	l.Cols = l.PanelX + l.PanelW + 1
	l.Rows = l.LogY + l.LogRows + 1
	return l
}

// SceneRenderer draws a scene into a CellBuffer.
type SceneRenderer struct {
	Layout  Layout
	Grid    *world.TileGrid
	Sprites *Sprites
	Panel   *Panel
	Log     *game.MessageLog
	Status  string
}

// NewSceneRenderer creates a renderer laid out for grid.
func NewSceneRenderer(grid *world.TileGrid, sprites *Sprites, panel *Panel, log *game.MessageLog) *SceneRenderer {
	return &SceneRenderer{
		Layout:  NewLayout(grid.Width, grid.Height),
		Grid:    grid,
		Sprites: sprites,
		Panel:   panel,
		Log:     log,
	}
}

// NewBuffer allocates a buffer that fits the layout.
func (r *SceneRenderer) NewBuffer() *CellBuffer {
	return NewCellBuffer(r.Layout.Cols, r.Layout.Rows)
}

// Draw renders view at time now.
func (r *SceneRenderer) Draw(buf *CellBuffer, view SceneView, now time.Time) {
	l := r.Layout
	buf.Clear()
	buf.Box(l.MapX-1, l.MapY-1, r.Grid.Width+2, r.Grid.Height+2, ColorDarkGray)
	RenderTileGrid(buf, r.Grid, l.MapX, l.MapY)

	for _, u := range view.Units() {
		sp := r.Sprites.Unit(u.ID)
		fg := sp.FG
		switch {
		case u.Selected:
			fg = ColorYellow
		case u.Replaying:
			fg = ColorLightCyan
		}
		r.put(buf, u.Pos, sp.Glyph, fg, false)
	}

	if pos, ok := view.Ghost(); ok {
		if sp, ok := r.Sprites.Ghost(); ok {
			r.put(buf, pos, sp.Glyph, sp.FG, true)
		}
	}

	cursor, _ := view.Cursor()
	r.highlight(buf, cursor, r.cursorColor(now))

	if r.Panel != nil {
		r.Panel.Draw(buf, l.PanelX, l.PanelY, l.PanelW)
	}
	r.drawStatus(buf, view)
	r.drawLog(buf)
}

func (r *SceneRenderer) cursorColor(now time.Time) uint8 {
	frame := r.Sprites.CursorFrame(now)
	if frame >= 0 && frame < len(cursorFrames) {
		return cursorFrames[frame]
	}
	return ColorDarkGray
}

// cell converts a world position to a screen cell.
func (r *SceneRenderer) cell(p game.Position) (int, int) {
	cx, cy := r.Grid.WorldToCell(p.X, p.Y)
	if !r.Grid.InBounds(cx, cy) {
		return -1, -1
	}
	return r.Layout.MapX + cx, r.Layout.MapY + cy
}

func (r *SceneRenderer) put(buf *CellBuffer, p game.Position, glyph byte, fg uint8, dim bool) {
	x, y := r.cell(p)
	if x < 0 {
		return
	}
	c := buf.Get(x, y)
	c.Glyph, c.FG, c.Dim = glyph, fg, dim
	buf.SetCell(x, y, c)
}

func (r *SceneRenderer) highlight(buf *CellBuffer, p game.Position, bg uint8) {
	x, y := r.cell(p)
	if x < 0 {
		return
	}
	c := buf.Get(x, y)
	c.BG = bg
	if c.Glyph == ' ' {
		c.Glyph = '+'
		c.FG = ColorBlack
	}
	buf.SetCell(x, y, c)
}

func (r *SceneRenderer) drawStatus(buf *CellBuffer, view SceneView) {
	l := r.Layout
	y := l.PanelY + 8
	cursor, anim := view.Cursor()
	cx, cy := r.Grid.WorldToCell(cursor.X, cursor.Y)
	buf.WriteString(l.PanelX, y, fmt.Sprintf("state  %s", view.State()), ColorLightGray, ColorBlack)
	buf.WriteString(l.PanelX, y+1, fmt.Sprintf("cursor %d,%d", cx, cy), ColorLightGray, ColorBlack)
	buf.WriteString(l.PanelX, y+2, clip(fmt.Sprintf("terrain %s", world.TerrainName(r.Grid.Get(cx, cy))), l.PanelW), ColorLightGray, ColorBlack)
	buf.WriteString(l.PanelX, y+3, clip(anim, l.PanelW), ColorDarkGray, ColorBlack)
	if r.Status != "" {
		buf.WriteString(l.PanelX, y+5, clip(r.Status, l.PanelW), ColorCyan, ColorBlack)
	}
}

func (r *SceneRenderer) drawLog(buf *CellBuffer) {
	if r.Log == nil {
		return
	}
	l := r.Layout
	for i, msg := range r.Log.Recent(l.LogRows) {
		buf.WriteString(l.LogX, l.LogY+i, clip(msg.Text, l.Cols-l.LogX-1), msgColor(msg.Priority), ColorBlack)
	}
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return ColorYellow
	case game.MsgAction:
		return ColorLightGreen
	case game.MsgSystem:
		return ColorLightGray
	default:
		return ColorLightCyan
	}
}
