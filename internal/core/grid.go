package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). The coordinates must be in bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y). The coordinates must be in bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// GrowColumns inserts left zeroed columns before column 0 and right zeroed
// columns after the last one. Existing values keep their row and shift right
// by left columns. The backing slice is reallocated, so slices previously
// returned by Cells must not be retained.
func (g *ByteGrid) GrowColumns(left, right int) {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	if left == 0 && right == 0 {
		return
	}
	w := g.W + left + right
	data := make([]uint8, w*g.H)
	for y := 0; y < g.H; y++ {
		copy(data[y*w+left:y*w+left+g.W], g.data[y*g.W:(y+1)*g.W])
	}
	g.W = w
	g.data = data
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
