package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceMeasurer adapts a font.Face to snake.TextMeasurer.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the overlay's font.
func DefaultMeasurer() FaceMeasurer { return FaceMeasurer{Face: basicfont.Face7x13} }

// Width returns the advance of s in pixels.
func (m FaceMeasurer) Width(s string) int { return font.MeasureString(m.Face, s).Ceil() }

// LineHeight returns the recommended baseline-to-baseline distance.
func (m FaceMeasurer) LineHeight() int { return m.Face.Metrics().Height.Ceil() }
