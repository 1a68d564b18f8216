//go:build ebiten

package render

import (
	"image"
	"image/color"

	"snake/internal/core"
	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter draws a snake.Frame as bevelled cells.
type BoardPainter struct {
	pixel      *ebiten.Image
	background color.Color
}

// NewBoardPainter allocates the 1x1 source image used for all fills.
func NewBoardPainter() *BoardPainter {
	p := &BoardPainter{background: color.Black}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Draw clears dst and paints the food followed by the snake, head first.
func (p *BoardPainter) Draw(dst *ebiten.Image, f snake.Frame) {
	dst.Fill(p.background)
	p.drawCell(dst, f.Board, f.Food, snake.FoodColor)
	for _, seg := range f.Snake {
		p.drawCell(dst, f.Board, seg.Cell, seg.Color)
	}
}

func (p *BoardPainter) drawCell(dst *ebiten.Image, b core.Board, c core.Cell, col color.RGBA) {
	x, y := b.Origin(c)
	r := image.Rect(x, y, x+b.CellSize, y+b.CellSize)
	for _, f := range Bevel(r, col) {
		p.fill(dst, f.Rect, f.Color)
	}
}

func (p *BoardPainter) fill(dst *ebiten.Image, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	dst.DrawImage(p.pixel, op)
}
