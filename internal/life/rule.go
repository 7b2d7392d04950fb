package life

import (
	"strings"

	"lifegrid/internal/core"
)

// Boundary selects how neighbor lookups outside the grid are resolved.
type Boundary uint8

const (
	// Clamp pulls out-of-range neighbors to the nearest in-range index, so
	// border cells count their edge neighbors (and themselves) more than once.
	Clamp Boundary = iota
	// Wrap treats the grid as a torus.
	Wrap
	// Dead treats every position outside the grid as a dead cell.
	Dead
)

var boundaryNames = map[Boundary]string{
	Clamp: "clamp",
	Wrap:  "wrap",
	Dead:  "dead",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBoundary resolves a boundary policy by name.
func ParseBoundary(name string) (Boundary, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range boundaryNames {
		if n == name {
			return b, true
		}
	}
	return Clamp, false
}

// Rule applies the Game of Life transition to one cell.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Neighbors counts the living cells among the eight positions around
// (row, col) under the given boundary policy.
func Neighbors(g *core.Grid, row, col int, b Boundary) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			switch b {
			case Wrap:
				r, c = g.Wrap(r, c)
			case Dead:
				if !g.InBounds(r, c) {
					continue
				}
			default:
				r, c = g.Clamp(r, c)
			}
			if g.At(r, c) {
				count++
			}
		}
	}
	return count
}

// Advance writes the generation following src into dst using the clamped
// boundary policy.
func Advance(dst, src *core.Grid) {
	AdvanceWith(dst, src, Clamp)
}

// AdvanceWith writes the generation following src into dst. Every cell is
// computed from src alone; dst and src must share a dimension. Passing the
// same grid for both is allowed and behaves as if src were snapshotted first.
func AdvanceWith(dst, src *core.Grid, b Boundary) {
	if dst == nil || src == nil || dst.N() != src.N() {
		return
	}
	if dst == src {
		src = src.Clone()
	}
	n := src.N()
	out := dst.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out[row*n+col] = Rule(src.At(row, col), Neighbors(src, row, col, b))
		}
	}
}

// Next returns a freshly allocated grid holding the generation after src.
func Next(src *core.Grid) *core.Grid {
	dst := core.NewGrid(src.N())
	Advance(dst, src)
	return dst
}
