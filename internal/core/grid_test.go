package core

import "testing"

func TestNewBoardGeometry(t *testing.T) {
	cases := []struct {
		width, height int
		cellSize      int
		numCells      int
		valid         bool
	}{
		{600, 600, 20, 30, true},
		{60, 60, 2, 30, true},
		{119, 119, 2, 59, true},
		{800, 600, 26, 30, true},
		{59, 59, 0, 0, false},
		{600, 0, 20, 30, false},
	}
	for _, tc := range cases {
		b := NewBoard(tc.width, tc.height)
		if b.CellSize != tc.cellSize || b.NumCells != tc.numCells {
			t.Fatalf("NewBoard(%d,%d) = cell %d num %d, want %d %d", tc.width, tc.height, b.CellSize, b.NumCells, tc.cellSize, tc.numCells)
		}
		if b.Valid() != tc.valid {
			t.Fatalf("NewBoard(%d,%d).Valid() = %v, want %v", tc.width, tc.height, b.Valid(), tc.valid)
		}
	}
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(600, 600)
	in := []Cell{{0, 0}, {29, 29}, {0, 29}, {15, 3}}
	out := []Cell{{-1, 0}, {0, -1}, {30, 0}, {0, 30}, {-1, -1}}
	for _, c := range in {
		if !b.InBounds(c) {
			t.Fatalf("%v should be in bounds", c)
		}
	}
	for _, c := range out {
		if b.InBounds(c) {
			t.Fatalf("%v should be out of bounds", c)
		}
	}
}

func TestBoardInBoundsUsesPixelHeight(t *testing.T) {
	b := NewBoard(600, 300)
	if !b.InBounds(Cell{X: 29, Y: 14}) {
		t.Fatal("row 14 fits in 300px")
	}
	if b.InBounds(Cell{X: 0, Y: 15}) {
		t.Fatal("row 15 starts at 300px and must be clipped")
	}
}
