package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/omnirun/omnirun/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph sheet and one sub-image per code.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas paints the glyph sheet and uploads it to the GPU.
func NewFontAtlas() *FontAtlas {
	sheet := ebiten.NewImageFromImage(paintAtlas())
	a := &FontAtlas{image: sheet}
	for code := range a.glyphs {
		a.glyphs[code] = sheet.SubImage(glyphRect(byte(code))).(*ebiten.Image)
	}
	return a
}

// Glyph returns the sub-image for a CP437 code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func glyphRect(code byte) image.Rectangle {
	x := int(code) % AtlasCols * GlyphWidth
	y := int(code) / AtlasCols * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// paintAtlas draws all 256 glyphs white on transparent. Printable ASCII
// comes from basicfont; line, block and the few symbols the world and HUD
// use are painted by hand. Everything else stays blank.
func paintAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13
	for code := 0; code < 256; code++ {
		c := glyphCell{img: img, origin: glyphRect(byte(code)).Min}
		r := render.CP437ToUnicode[code]
		switch {
		case r >= 32 && r <= 126:
			c.text(face, r)
		case lineJoins[byte(code)] != 0:
			c.lines(lineJoins[byte(code)])
		default:
			if paint, ok := symbols[byte(code)]; ok {
				paint(c)
			}
		}
	}
	return img
}

var ink = color.NRGBA{255, 255, 255, 255}

// glyphCell paints into one 16x16 slot of the sheet.
type glyphCell struct {
	img    *image.NRGBA
	origin image.Point
}

// text centers a 7x13 basicfont glyph in the cell.
func (c glyphCell) text(face font.Face, r rune) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(c.origin.X+4, c.origin.Y+13),
	}
	d.DrawString(string(r))
}

// fill paints the half-open cell-relative rectangle [x0,x1)x[y0,y1).
func (c glyphCell) fill(x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.img.SetNRGBA(c.origin.X+x, c.origin.Y+y, ink)
		}
	}
}

// pattern paints every pixel on reports.
func (c glyphCell) pattern(on func(x, y int) bool) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				c.img.SetNRGBA(c.origin.X+x, c.origin.Y+y, ink)
			}
		}
	}
}

// join is a bitmask of the cell edges a line glyph reaches.
type join uint8

const (
	joinW join = 1 << iota
	joinE
	joinN
	joinS
)

// lineJoins lists the single-line box glyphs.
var lineJoins = map[byte]join{
	179: joinN | joinS,                 // │
	180: joinW | joinN | joinS,         // ┤
	191: joinW | joinS,                 // ┐
	192: joinE | joinN,                 // └
	193: joinW | joinE | joinN,         // ┴
	194: joinW | joinE | joinS,         // ┬
	195: joinE | joinN | joinS,         // ├
	196: joinW | joinE,                 // ─
	197: joinW | joinE | joinN | joinS, // ┼
	217: joinW | joinN,                 // ┘
	218: joinE | joinS,                 // ┌
}

// lines draws 2px strokes from the cell center out to each joined edge.
func (c glyphCell) lines(j join) {
	const mid = 7
	if j&joinW != 0 {
		c.fill(0, mid, mid+2, mid+2)
	}
	if j&joinE != 0 {
		c.fill(mid, mid, GlyphWidth, mid+2)
	}
	if j&joinN != 0 {
		c.fill(mid, 0, mid+2, mid+2)
	}
	if j&joinS != 0 {
		c.fill(mid, mid, mid+2, GlyphHeight)
	}
}

// symbols paints block, shade and marker glyphs.
var symbols = map[byte]func(glyphCell){
	176: func(c glyphCell) { c.pattern(func(x, y int) bool { return (x+y)%4 == 0 }) }, // ░
	177: func(c glyphCell) { c.pattern(func(x, y int) bool { return (x+y)%2 == 0 }) }, // ▒
	178: func(c glyphCell) { c.pattern(func(x, y int) bool { return (x+y)%4 != 0 }) }, // ▓
	219: func(c glyphCell) { c.fill(0, 0, GlyphWidth, GlyphHeight) },                // █
	220: func(c glyphCell) { c.fill(0, GlyphHeight/2, GlyphWidth, GlyphHeight) },    // ▄
	221: func(c glyphCell) { c.fill(0, 0, GlyphWidth/2, GlyphHeight) },              // ▌
	222: func(c glyphCell) { c.fill(GlyphWidth/2, 0, GlyphWidth, GlyphHeight) },     // ▐
	223: func(c glyphCell) { c.fill(0, 0, GlyphWidth, GlyphHeight/2) },              // ▀
	254: func(c glyphCell) { c.fill(4, 4, 12, 12) },                                  // ■
	250: func(c glyphCell) { c.fill(7, 7, 9, 9) },                                    // ·
	186: func(c glyphCell) { // ║ laser beam
		c.fill(5, 0, 7, GlyphHeight)
		c.fill(9, 0, 11, GlyphHeight)
	},
	2: func(c glyphCell) { // ☻ runner face
		c.pattern(func(x, y int) bool {
			dx, dy := x-7, y-7
			if dx*dx+dy*dy > 42 {
				return false
			}
			eye := y == 5 && (x == 5 || x == 10)
			mouth := y == 10 && x >= 5 && x <= 10
			return !eye && !mouth
		})
	},
}
