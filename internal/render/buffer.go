package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
	Dim   bool  // drawn at half alpha (ghost preview)
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	b.SetCell(x, y, Cell{Glyph: glyph, FG: fg, BG: bg})
}

// SetCell writes c at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) SetCell(x, y int, c Cell) {
	if b.inBounds(x, y) {
		b.Cells[y*b.Cols+x] = c
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.inBounds(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y), one cell per rune, and returns
// the number of cells written. Runes outside CP437 become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, UnicodeToCP437(r), fg, bg)
		n++
	}
	return n
}

// Fill paints a rectangle with one cell value.
func (b *CellBuffer) Fill(x, y, w, h int, c Cell) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetCell(col, row, c)
		}
	}
}

// Box draws a single-line frame around the rectangle.
func (b *CellBuffer) Box(x, y, w, h int, fg uint8) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, 196, fg, ColorBlack)
		b.Set(col, y+h-1, 196, fg, ColorBlack)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, 179, fg, ColorBlack)
		b.Set(x+w-1, row, 179, fg, ColorBlack)
	}
	b.Set(x, y, 218, fg, ColorBlack)
	b.Set(x+w-1, y, 191, fg, ColorBlack)
	b.Set(x, y+h-1, 192, fg, ColorBlack)
	b.Set(x+w-1, y+h-1, 217, fg, ColorBlack)
}
