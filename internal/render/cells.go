package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

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

// Resize changes the grid size and clears it. Used when a terminal resizes.
func (b *CellBuffer) Resize(cols, rows int) {
	if cols*rows > cap(b.Cells) {
		b.Cells = make([]Cell, cols*rows)
	}
	b.Cols, b.Rows = cols, rows
	b.Cells = b.Cells[:cols*rows]
	b.Clear()
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteCentered writes s horizontally centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len(s))/2, y, s, fg, bg)
}

// Fill sets every cell in the rectangle.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg uint8) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, glyph, fg, bg)
		}
	}
}

// DrawBox draws a single-line frame and blanks its interior.
func (b *CellBuffer) DrawBox(x, y, w, h int, fg, bg uint8) {
	if w < 2 || h < 2 {
		return
	}
	b.Fill(x+1, y+1, w-2, h-2, ' ', fg, bg)
	for xx := x + 1; xx < x+w-1; xx++ {
		b.Set(xx, y, 196, fg, bg)     // ─
		b.Set(xx, y+h-1, 196, fg, bg) // ─
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		b.Set(x, yy, 179, fg, bg)     // │
		b.Set(x+w-1, yy, 179, fg, bg) // │
	}
	b.Set(x, y, 218, fg, bg)         // ┌
	b.Set(x+w-1, y, 191, fg, bg)     // ┐
	b.Set(x, y+h-1, 192, fg, bg)     // └
	b.Set(x+w-1, y+h-1, 217, fg, bg) // ┘
}

// RowText returns row y as a string of runes, mostly for tests and logs.
func (b *CellBuffer) RowText(y int) string {
	out := make([]rune, b.Cols)
	for x := range out {
		out[x] = CP437ToUnicode[b.Get(x, y).Glyph]
	}
	return string(out)
}
