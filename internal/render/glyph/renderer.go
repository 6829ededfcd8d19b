package glyph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/burtbyproxy/gridtactics/internal/render"
)

// dimAlpha is the opacity of dimmed cells, such as the ghost preview.
const dimAlpha = 0.5

// Renderer draws a render.CellBuffer to an Ebitengine screen.
type Renderer struct {
	Atlas *Atlas
	CellW int
	CellH int
	pixel *ebiten.Image
}

// NewRenderer creates a renderer with the given atlas and cell size in pixels.
func NewRenderer(atlas *Atlas, cellW, cellH int) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{Atlas: atlas, CellW: cellW, CellH: cellH, pixel: pixel}
}

// Size returns the pixel size needed for buf.
func (r *Renderer) Size(buf *render.CellBuffer) (int, int) {
	return buf.Cols * r.CellW, buf.Rows * r.CellH
}

// Draw renders every cell of buf.
func (r *Renderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	sx := float64(r.CellW) / float64(GlyphWidth)
	sy := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != render.ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.BG])
				screen.DrawImage(r.pixel, &op)
			}

			if cell.Glyph == ' ' || cell.Glyph == 0 {
				continue
			}
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(render.Palette[cell.FG])
			if cell.Dim {
				op.ColorScale.ScaleAlpha(dimAlpha)
			}
			screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
		}
	}
}
