package core

// Board holds the pixel extent of the play area and the grid derived from it.
// The grid is always NumCells x NumCells; the pixel height only matters for
// the bounds check.
type Board struct {
	Width, Height int
	CellSize      int
	NumCells      int
}

// NewBoard derives the cell geometry from the board width.
func NewBoard(width, height int) Board {
	b := Board{Width: width, Height: height}
	b.CellSize = (width / 60) * 2
	if b.CellSize > 0 {
		b.NumCells = width / b.CellSize
	}
	return b
}

// Valid reports whether the board has at least one cell and a usable height.
func (b Board) Valid() bool {
	return b.CellSize > 0 && b.NumCells > 0 && b.Height > 0
}

// Size returns the pixel dimensions.
func (b Board) Size() Size { return Size{W: b.Width, H: b.Height} }

// Cells returns the number of grid cells.
func (b Board) Cells() int { return b.NumCells * b.NumCells }

// InBounds reports whether c lies on the board. The test is done in pixels
// so a non-square board clips rows by its height.
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X*b.CellSize < b.Width && c.Y*b.CellSize < b.Height
}

// Index returns the linear row-major index of c in the grid.
func (b Board) Index(c Cell) int { return c.Y*b.NumCells + c.X }

// Origin returns the top-left pixel of c.
func (b Board) Origin(c Cell) (int, int) {
	return c.X * b.CellSize, c.Y * b.CellSize
}
