package core

import (
	"encoding/binary"
	"hash/fnv"
)

// Grid stores an N×N matrix of boolean cells in row-major order. The
// dimension is fixed at construction.
type Grid struct {
	n    int
	data []bool
}

// NewGrid allocates an all-dead grid with n rows and n columns.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]bool, n*n)}
}

// N returns the grid dimension.
func (g *Grid) N() int { return g.n }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.n, H: g.n} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// At returns the state of the cell at (row, col).
func (g *Grid) At(row, col int) bool { return g.data[row*g.n+col] }

// Set assigns the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.data[row*g.n+col] = alive }

// Toggle flips the cell at (row, col). Coordinates outside the grid are
// ignored and reported as false.
func (g *Grid) Toggle(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	idx := g.Index(row, col)
	g.data[idx] = !g.data[idx]
	return true
}

// Clamp pulls the provided coordinates to the nearest in-range index.
func (g *Grid) Clamp(row, col int) (int, int) {
	return clampIndex(row, g.n), clampIndex(col, g.n)
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.n + g.n) % g.n
	col = (col%g.n + g.n) % g.n
	return row, col
}

// Clear sets every cell to dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// CopyFrom overwrites g with the contents of src. Grids of a different
// dimension are left untouched.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.n != g.n {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.n)
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimension and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || other.n != g.n {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts the living cells.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.data {
		if v {
			count++
		}
	}
	return count
}

// Hash returns a fingerprint of the grid contents suitable for cycle
// detection.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var word [8]byte
	var bits uint64
	filled := 0
	for _, v := range g.data {
		bits <<= 1
		if v {
			bits |= 1
		}
		filled++
		if filled == 64 {
			binary.LittleEndian.PutUint64(word[:], bits)
			h.Write(word[:])
			bits, filled = 0, 0
		}
	}
	if filled > 0 {
		binary.LittleEndian.PutUint64(word[:], bits)
		h.Write(word[:])
	}
	return h.Sum64()
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
