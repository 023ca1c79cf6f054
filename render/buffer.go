package render

// CellBuffer is a row-major cell grid exported as-is to terminal.Flush
type CellBuffer struct {
	cells  []Cell
	blank  Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer filled with blank cells on bg
func NewCellBuffer(width, height int, bg RGB) *CellBuffer {
	b := &CellBuffer{blank: Cell{Rune: ' ', Bg: bg}}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out of bounds writes are dropped
func (b *CellBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Get returns the cell at x, y or a blank cell out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Bounds returns the buffer dimensions
func (b *CellBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Cells exposes the backing slice for Flush
func (b *CellBuffer) Cells() []Cell {
	return b.cells
}
