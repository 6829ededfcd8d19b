package glyph

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/burtbyproxy/gridtactics/internal/render"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Atlas holds the CP437 glyph atlas and cached sub-images.
type Atlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewAtlas rasterises the CP437 glyphs used by the scene.
// Printable ASCII comes from basicfont.Face7x13; box, shade and dot glyphs
// are drawn by hand.
func NewAtlas() *Atlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))

	for code := 0; code < 256; code++ {
		cx, cy := origin(code)
		r := render.CP437ToUnicode[code]
		switch bc, box := boxChars[byte(code)]; {
		case r >= 32 && r <= 126:
			drawFontGlyph(img, basicfont.Face7x13, cx, cy, r)
		case box:
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
		default:
			drawBlockGlyph(img, cx, cy, byte(code))
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &Atlas{image: eimg}
	for code := 0; code < 256; code++ {
		x, y := origin(code)
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// origin returns the top-left pixel of code's cell in the atlas.
func origin(code int) (int, int) {
	return (code % AtlasCols) * GlyphWidth, (code / AtlasCols) * GlyphHeight
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *Atlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}

// boxChars maps CP437 codes to single-line box connection flags: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true}, // │
	180: {true, false, true, true},  // ┤
	191: {true, false, false, true}, // ┐
	192: {false, true, true, false}, // └
	193: {true, true, true, false},  // ┴
	194: {true, true, false, true},  // ┬
	195: {false, true, true, true},  // ├
	196: {true, true, false, false}, // ─
	197: {true, true, true, true},   // ┼
	217: {true, false, true, false}, // ┘
	218: {false, true, false, true}, // ┌
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	const mid = 7
	if left {
		fillRect(img, cellX, cellY, 0, mid, mid+2, mid+2)
	}
	if right {
		fillRect(img, cellX, cellY, mid, mid, GlyphWidth, mid+2)
	}
	if top {
		fillRect(img, cellX, cellY, mid, 0, mid+2, mid+2)
	}
	if bottom {
		fillRect(img, cellX, cellY, mid, mid, mid+2, GlyphHeight)
	}
}

// shades maps shade glyphs to the dither test for a pixel.
var shades = map[byte]func(x, y int) bool{
	176: func(x, y int) bool { return (x+y)%4 == 0 }, // ░
	177: func(x, y int) bool { return (x+y)%2 == 0 }, // ▒
	178: func(x, y int) bool { return (x+y)%4 != 0 }, // ▓
}

// blocks maps solid block glyphs to their filled rectangle {x0, y0, x1, y1}.
var blocks = map[byte][4]int{
	219: {0, 0, GlyphWidth, GlyphHeight},               // █
	220: {0, GlyphHeight / 2, GlyphWidth, GlyphHeight}, // ▄
	221: {0, 0, GlyphWidth / 2, GlyphHeight},           // ▌
	222: {GlyphWidth / 2, 0, GlyphWidth, GlyphHeight},  // ▐
	223: {0, 0, GlyphWidth, GlyphHeight / 2},           // ▀
	254: {4, 4, 12, 12},                                // ■
	250: {7, 7, 9, 9},                                  // ·
}

// drawBlockGlyph draws block, shade and dot glyphs. Other codes stay empty.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	if b, ok := blocks[code]; ok {
		fillRect(img, cellX, cellY, b[0], b[1], b[2], b[3])
		return
	}
	if on, ok := shades[code]; ok {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if on(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, white)
				}
			}
		}
	}
}

var white = color.NRGBA{255, 255, 255, 255}

// fillRect sets the pixels [x0,x1) x [y0,y1) relative to the cell origin.
func fillRect(img *image.NRGBA, cellX, cellY, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(cellX+x, cellY+y, white)
		}
	}
}
