package render

import "image/color"

const (
	// HoverAlpha is the opacity of the outline under the pointer.
	HoverAlpha = 1.0
	// IdleAlpha is the opacity of dead cell outlines elsewhere.
	IdleAlpha = 0.3
)

// CellStyle decides how a single cell is painted.
type CellStyle struct {
	Fill  bool
	Alpha float64
}

// StyleFor returns the style for a cell. Living cells are always filled at
// full opacity; hovering only brightens dead outlines.
func StyleFor(alive, hovered bool) CellStyle {
	if alive {
		return CellStyle{Fill: true, Alpha: 1}
	}
	if hovered {
		return CellStyle{Alpha: HoverAlpha}
	}
	return CellStyle{Alpha: IdleAlpha}
}

// Color applies the style's opacity to base, returning a non-premultiplied
// color.
func (s CellStyle) Color(base color.Color) color.NRGBA {
	c := color.NRGBAModel.Convert(base).(color.NRGBA)
	a := s.Alpha
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
