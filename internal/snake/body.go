package snake

import (
	"github.com/gammazero/deque"

	"snake/internal/core"
)

// Body is the snake's cells, head first. It keeps an occupancy count per cell
// so membership and duplicate checks do not walk the whole body.
type Body struct {
	cells deque.Deque[core.Cell]
	count map[core.Cell]int
	dups  int
}

// Len returns the number of cells.
func (b *Body) Len() int { return b.cells.Len() }

// Head returns the first cell. It panics on an empty body.
func (b *Body) Head() core.Cell { return b.cells.Front() }

// Tail returns the last cell. It panics on an empty body.
func (b *Body) Tail() core.Cell { return b.cells.Back() }

// At returns the i-th cell counted from the head.
func (b *Body) At(i int) core.Cell { return b.cells.At(i) }

// PushFront inserts a new head.
func (b *Body) PushFront(c core.Cell) {
	b.cells.PushFront(c)
	b.add(c)
}

// PushBack appends a tail cell.
func (b *Body) PushBack(c core.Cell) {
	b.cells.PushBack(c)
	b.add(c)
}

// PopFront removes and returns the head.
func (b *Body) PopFront() core.Cell {
	c := b.cells.PopFront()
	b.remove(c)
	return c
}

// PopBack removes and returns the tail.
func (b *Body) PopBack() core.Cell {
	c := b.cells.PopBack()
	b.remove(c)
	return c
}

// Contains reports whether c is part of the body.
func (b *Body) Contains(c core.Cell) bool { return b.count[c] > 0 }

// HasDuplicate reports whether any cell occurs more than once.
func (b *Body) HasDuplicate() bool { return b.dups > 0 }

// Clear empties the body.
func (b *Body) Clear() {
	b.cells.Clear()
	b.count = nil
	b.dups = 0
}

// Cells returns a copy of the cells, head first.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, b.cells.Len())
	for i := range out {
		out[i] = b.cells.At(i)
	}
	return out
}

func (b *Body) add(c core.Cell) {
	if b.count == nil {
		b.count = make(map[core.Cell]int)
	}
	b.count[c]++
	if b.count[c] == 2 {
		b.dups++
	}
}

func (b *Body) remove(c core.Cell) {
	n := b.count[c]
	if n == 2 {
		b.dups--
	}
	if n <= 1 {
		delete(b.count, c)
		return
	}
	b.count[c] = n - 1
}
