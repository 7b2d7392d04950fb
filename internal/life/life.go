package life

import (
	"lifegrid/internal/core"
)

// Life runs Conway's Game of Life over a fixed N×N grid using two
// alternating buffers.
type Life struct {
	boundary   Boundary
	cur        *core.Grid
	nxt        *core.Grid
	generation int
}

// New returns an all-dead Life simulation of dimension n.
func New(n int, boundary Boundary) *Life {
	return &Life{boundary: boundary, cur: core.NewGrid(n), nxt: core.NewGrid(n)}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. The pointer changes after Step.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation reports how many steps have run since the last Clear or Fill.
func (l *Life) Generation() int { return l.generation }

// Toggle flips the cell at (row, col); out-of-range coordinates are ignored.
func (l *Life) Toggle(row, col int) bool { return l.cur.Toggle(row, col) }

// Clear kills every cell in place.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Fill seeds the board randomly, marking each cell alive with probability
// density.
func (l *Life) Fill(seed int64, density float64) {
	core.NewRNG(seed).FillDensity(l.cur.Cells(), density)
	l.generation = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	AdvanceWith(l.nxt, l.cur, l.boundary)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
