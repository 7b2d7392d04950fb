//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the run-state label on top of the grid.
type Overlay struct {
	windowSize int
}

// NewOverlay constructs an overlay for a square window of the given size.
func NewOverlay(windowSize int) *Overlay {
	return &Overlay{windowSize: windowSize}
}

// Draw renders the label onto screen when running.
func (o *Overlay) Draw(screen *ebiten.Image, running bool) {
	label, ok := StatusLabel(running)
	if !ok {
		return
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	glyphHeight := metrics.Height.Ceil()
	scale := LabelScale(o.windowSize, glyphHeight)
	origin := LabelOrigin(o.windowSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(metrics.Ascent.Ceil()))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	op.ColorScale.ScaleWithColor(StatusColor)
	text.DrawWithOptions(screen, label, face, op)
}
