package snake

import (
	"fmt"
	"image/color"

	"snake/internal/core"
)

var (
	// HeadColor is the colour of the head; the body darkens towards the tail.
	HeadColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	// FoodColor is the colour of the food cell.
	FoodColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// tailDim is how much of the head's green channel the tail loses.
const tailDim = 0.3

// Segment is one snake cell with its display colour.
type Segment struct {
	Cell  core.Cell
	Color color.RGBA
}

// Frame is a read-only description of everything a host draws.
type Frame struct {
	Board core.Board
	Snake []Segment
	Food  core.Cell
	Score int
	State core.State
	Tick  uint64
}

// TextLine is a string positioned at a baseline in board pixels.
type TextLine struct {
	Text string
	X, Y int
}

// TextMeasurer reports font metrics for layout.
type TextMeasurer interface {
	Width(s string) int
	LineHeight() int
}

// Frame snapshots the current state.
func (e *Engine) Frame() Frame {
	n := e.body.Len()
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{Cell: e.body.At(i), Color: SegmentColor(i, n)}
	}
	return Frame{
		Board: e.board,
		Snake: segs,
		Food:  e.food,
		Score: e.Score(),
		State: e.state,
		Tick:  e.tick,
	}
}

// SegmentColor interpolates the green channel from full at the head to 70%
// at the tail of an n-cell snake.
func SegmentColor(i, n int) color.RGBA {
	factor := 0.0
	if n > 1 {
		factor = float64(i) / float64(n-1)
	}
	return color.RGBA{
		R: HeadColor.R,
		G: uint8(float64(HeadColor.G) * (1 - tailDim*factor)),
		B: HeadColor.B,
		A: 255,
	}
}

// Lines returns the overlay text for the current state.
func (f Frame) Lines() []string {
	if f.State == core.GameOver {
		return []string{
			fmt.Sprintf("Game Over: %d", f.Score),
			"Press Space Key For Reset",
		}
	}
	return []string{fmt.Sprintf("Score: %d", f.Score)}
}

// Layout positions Lines. While running the score sits in the top-left
// corner; after game over each line is centred horizontally, starting at the
// vertical centre of the board.
func (f Frame) Layout(m TextMeasurer) []TextLine {
	lines := f.Lines()
	out := make([]TextLine, len(lines))
	if f.State != core.GameOver {
		for i, s := range lines {
			out[i] = TextLine{Text: s, X: f.Board.CellSize / 2, Y: f.Board.CellSize + i*m.LineHeight()}
		}
		return out
	}

	cx, cy := f.Board.Width/2, f.Board.Height/2
	for i, s := range lines {
		out[i] = TextLine{Text: s, X: cx - m.Width(s)/2, Y: cy + i*m.LineHeight()}
	}
	return out
}
