//go:build ebiten

package ui

import (
	"image/color"

	"snake/internal/core"
	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var (
	scoreColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gameOverColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Overlay draws the score while playing and the game-over message after.
type Overlay struct {
	measure FaceMeasurer
	fade    *Fade
}

// NewOverlay constructs an overlay using the default font.
func NewOverlay() *Overlay {
	return &Overlay{measure: DefaultMeasurer(), fade: NewFade()}
}

// Update advances the game-over fade by one frame.
func (o *Overlay) Update(state core.State) {
	o.fade.Update(state, 1/float32(ebiten.TPS()))
}

// Draw renders the frame's text lines onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, f snake.Frame) {
	clr := scoreColor
	if f.State == core.GameOver {
		clr = gameOverColor
		clr.A = uint8(255 * o.fade.Alpha())
		// text.Draw expects premultiplied colour.
		clr.R = uint8(uint16(clr.R) * uint16(clr.A) / 255)
	}
	for _, line := range f.Layout(o.measure) {
		text.Draw(screen, line.Text, o.measure.Face, line.X, line.Y, clr)
	}
}
