package world

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadLayout is returned when a map layout is structurally invalid.
var ErrBadLayout = errors.New("bad map layout")

// MapLayout is the JSON definition of a tile map, in the Tiled export shape.
// Tile data holds one global tile id per cell, 0 meaning empty.
type MapLayout struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	TileWidth  int         `json:"tilewidth"`
	TileHeight int         `json:"tileheight"`
	Layers     []LayerData `json:"layers"`
}

// LayerData is one tile layer.
type LayerData struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// MovementLayer is the layer name used for passability when present.
const MovementLayer = "Tile Layer 1"

// LoadMapLayout parses a MapLayout from JSON bytes.
func LoadMapLayout(data []byte) (*MapLayout, error) {
	var layout MapLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse map layout: %w", err)
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadLayout, layout.Width, layout.Height)
	}
	if layout.TileWidth <= 0 || layout.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrBadLayout, layout.TileWidth, layout.TileHeight)
	}
	if len(layout.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrBadLayout)
	}
	for _, l := range layout.Layers {
		if len(l.Data) != layout.Width*layout.Height {
			return nil, fmt.Errorf("%w: layer %q has %d cells, want %d",
				ErrBadLayout, l.Name, len(l.Data), layout.Width*layout.Height)
		}
	}
	return &layout, nil
}

// Layer returns the movement layer, or the first layer if none is named so.
func (l *MapLayout) Layer() LayerData {
	for _, layer := range l.Layers {
		if layer.Name == MovementLayer {
			return layer
		}
	}
	return l.Layers[0]
}

// ToTileGrid converts the movement layer into a TileGrid.
// Empty cells become TileNone; every other gid is kept as its index.
func (l *MapLayout) ToTileGrid() *TileGrid {
	grid := NewTileGrid(l.Width, l.Height, l.TileWidth, l.TileHeight)
	for i, gid := range l.Layer().Data {
		grid.Set(i%l.Width, i/l.Width, gidToTile(gid))
	}
	return grid
}

func gidToTile(gid int) TileIndex {
	if gid <= 0 {
		return TileNone
	}
	return TileIndex(gid)
}
