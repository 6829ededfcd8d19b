package render

import "github.com/burtbyproxy/gridtactics/internal/world"

// RenderTileGrid writes one cell per map tile into buf at the given offset.
func RenderTileGrid(buf *CellBuffer, grid *world.TileGrid, offsetX, offsetY int) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			glyph, fg, bg := tileVisuals(grid.Get(x, y))
			buf.Set(offsetX+x, offsetY+y, glyph, fg, bg)
		}
	}
}

func tileVisuals(t world.TileIndex) (glyph byte, fg, bg uint8) {
	switch t {
	case world.TileWall:
		return '#', ColorLightGray, ColorDarkGray
	case world.TileFloor:
		return 250, ColorDarkGray, ColorBlack // · flagstone
	case world.TileNone:
		return ' ', ColorBlack, ColorBlack
	case world.TileBoundary:
		return 176, ColorDarkGray, ColorBlack
	default:
		return '"', ColorGreen, ColorBlack // painted decor
	}
}
