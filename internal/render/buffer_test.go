package render

import "testing"

func TestCellBufferBounds(t *testing.T) {
	b := NewCellBuffer(4, 2)
	b.Set(-1, 0, 'x', ColorRed, ColorBlack)
	b.Set(4, 1, 'x', ColorRed, ColorBlack)
	for _, c := range b.Cells {
		if c != blank {
			t.Fatalf("expected out-of-bounds writes to be ignored, got %+v", c)
		}
	}
	if got := b.Get(9, 9); got != (Cell{}) {
		t.Fatalf("expected zero cell out of bounds, got %+v", got)
	}
}

func TestWriteStringMapsRunes(t *testing.T) {
	b := NewCellBuffer(8, 1)
	n := b.WriteString(0, 0, "a·│€", ColorWhite, ColorBlack)
	if n != 4 {
		t.Fatalf("expected 4 cells, got %d", n)
	}
	want := []byte{'a', 250, 179, '?'}
	for i, w := range want {
		if got := b.Get(i, 0).Glyph; got != w {
			t.Fatalf("cell %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewCellBuffer(5, 4)
	b.Box(0, 0, 5, 4, ColorLightGray)
	if b.Get(0, 0).Glyph != 218 || b.Get(4, 3).Glyph != 217 {
		t.Fatal("expected box corners")
	}
	if b.Get(2, 0).Glyph != 196 || b.Get(0, 2).Glyph != 179 {
		t.Fatal("expected box edges")
	}
	if b.Get(2, 2).Glyph != ' ' {
		t.Fatal("expected box interior untouched")
	}
}

func TestCP437RoundTrip(t *testing.T) {
	for code := 1; code < 256; code++ {
		r := CP437ToUnicode[code]
		if got := UnicodeToCP437(r); int(got) != code {
			t.Fatalf("code %d: rune %U maps back to %d", code, r, got)
		}
	}
}
