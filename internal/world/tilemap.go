package world

// TileIndex is the tileset index stored in a map cell.
type TileIndex int

const (
	TileNone     TileIndex = -1 // in bounds, no tile painted
	TileBoundary TileIndex = -2 // outside the map
	TileFloor    TileIndex = 1
	TileWall     TileIndex = 2 // the obstacle tile in the default tileset
)

// TileGrid is a 2D grid of tile indices with a fixed tile size in world units.
type TileGrid struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Tiles      []TileIndex
}

// NewTileGrid creates a grid of w x h cells filled with TileNone.
func NewTileGrid(w, h, tileW, tileH int) *TileGrid {
	g := &TileGrid{
		Width:      w,
		Height:     h,
		TileWidth:  tileW,
		TileHeight: tileH,
		Tiles:      make([]TileIndex, w*h),
	}
	for i := range g.Tiles {
		g.Tiles[i] = TileNone
	}
	return g
}

// InBounds reports whether cell (x, y) is on the map.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at cell (x, y). Out-of-bounds returns TileBoundary.
func (g *TileGrid) Get(x, y int) TileIndex {
	if !g.InBounds(x, y) {
		return TileBoundary
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at cell (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t TileIndex) {
	if g.InBounds(x, y) {
		g.Tiles[y*g.Width+x] = t
	}
}

// WorldToCell converts a world position to a cell, flooring negative values.
func (g *TileGrid) WorldToCell(worldX, worldY int) (int, int) {
	return floorDiv(worldX, g.TileWidth), floorDiv(worldY, g.TileHeight)
}

// CellToWorld returns the world position of the top-left corner of cell (x, y).
func (g *TileGrid) CellToWorld(x, y int) (int, int) {
	return x * g.TileWidth, y * g.TileHeight
}

// TileAt returns the tile under world position (worldX, worldY).
// With createIfMissing set, an empty in-bounds cell reports TileNone and an
// out-of-bounds position reports TileBoundary. Without it, both report TileNone.
func (g *TileGrid) TileAt(worldX, worldY int, createIfMissing bool) TileIndex {
	t := g.Get(g.WorldToCell(worldX, worldY))
	if t == TileBoundary && !createIfMissing {
		return TileNone
	}
	return t
}

// Count returns the number of cells holding tile t.
func (g *TileGrid) Count(t TileIndex) int {
	n := 0
	for _, v := range g.Tiles {
		if v == t {
			n++
		}
	}
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
