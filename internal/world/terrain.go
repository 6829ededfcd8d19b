package world

// Passability decides whether a tile may be occupied by the cursor or a unit.
type Passability func(TileIndex) bool

// DefaultPassable blocks the wall tile and anything outside the map.
// Every other index, including TileNone, is passable.
func DefaultPassable(t TileIndex) bool {
	return t != TileWall && t != TileBoundary
}

// Impassable builds a predicate that blocks the listed tile indices plus
// the map boundary.
func Impassable(blocked ...TileIndex) Passability {
	set := make(map[TileIndex]bool, len(blocked)+1)
	for _, b := range blocked {
		set[b] = true
	}
	set[TileBoundary] = true
	return func(t TileIndex) bool {
		return !set[t]
	}
}

var terrainNames = map[TileIndex]string{
	TileNone:     "Open ground",
	TileFloor:    "Floor",
	TileWall:     "Wall",
	TileBoundary: "Edge",
}

// TerrainName returns the display name for t.
func TerrainName(t TileIndex) string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "Unknown"
}
