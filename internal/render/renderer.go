//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws the grid as filled (alive) or outlined (dead) squares.
type GridPainter struct {
	cellSize   int
	on         color.Color
	background color.Color
}

// NewGridPainter allocates a painter for cells of the given pixel size.
func NewGridPainter(cellSize int) *GridPainter {
	return &GridPainter{cellSize: cellSize, on: color.White, background: color.Black}
}

// Draw clears dst and paints every cell of g. hover marks the cell under the
// pointer when ok is true.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *core.Grid, hover core.Cell, ok bool) {
	dst.Fill(gp.background)
	size := float32(gp.cellSize)
	n := g.N()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			hovered := ok && hover.Row == row && hover.Col == col
			style := StyleFor(g.At(row, col), hovered)
			clr := style.Color(gp.on)
			x := float32(col * gp.cellSize)
			y := float32(row * gp.cellSize)
			if style.Fill {
				vector.DrawFilledRect(dst, x, y, size, size, clr, false)
				continue
			}
			vector.StrokeRect(dst, x+0.5, y+0.5, size-1, size-1, 1, clr, false)
		}
	}
}

// CellSize returns the pixel edge length of one cell.
func (gp *GridPainter) CellSize() int { return gp.cellSize }
