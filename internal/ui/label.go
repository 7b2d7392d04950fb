package ui

import (
	"image"
	"image/color"
)

// StatusText is shown while generations are advancing.
const StatusText = "Simulating"

// StatusColor is the label tint.
var StatusColor = color.RGBA{R: 255, G: 161, B: 0, A: 255}

const (
	// labelReference is the window size the label position is laid out for.
	labelReference = 1000
	labelX         = 890
	labelY         = 940
	labelHeight    = 20
)

// StatusLabel returns the text to draw for the current run state.
func StatusLabel(running bool) (string, bool) {
	if !running {
		return "", false
	}
	return StatusText, true
}

// LabelOrigin returns the top-left corner of the status label in a square
// window of the given size.
func LabelOrigin(windowSize int) image.Point {
	return image.Pt(windowSize*labelX/labelReference, windowSize*labelY/labelReference)
}

// LabelScale returns the factor applied to a font of glyphHeight pixels so
// the label keeps its proportion to the window.
func LabelScale(windowSize, glyphHeight int) float64 {
	if glyphHeight <= 0 || windowSize <= 0 {
		return 1
	}
	return float64(labelHeight*windowSize) / float64(labelReference*glyphHeight)
}
