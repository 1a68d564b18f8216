package snake

import (
	"slices"
	"testing"

	"snake/internal/core"
)

func TestBodyOrderAndMembership(t *testing.T) {
	var b Body
	b.PushFront(core.Cell{X: 1, Y: 1})
	b.PushFront(core.Cell{X: 2, Y: 1})
	b.PushBack(core.Cell{X: 0, Y: 1})

	want := []core.Cell{{2, 1}, {1, 1}, {0, 1}}
	if got := b.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	if b.Head() != want[0] || b.Tail() != want[2] {
		t.Fatalf("head/tail = %v/%v", b.Head(), b.Tail())
	}
	if !b.Contains(core.Cell{X: 1, Y: 1}) || b.Contains(core.Cell{X: 5, Y: 5}) {
		t.Fatal("membership mismatch")
	}

	if got := b.PopBack(); got != (core.Cell{X: 0, Y: 1}) {
		t.Fatalf("PopBack() = %v", got)
	}
	if b.Contains(core.Cell{X: 0, Y: 1}) {
		t.Fatal("popped tail still reported as present")
	}
	if got := b.PopFront(); got != (core.Cell{X: 2, Y: 1}) {
		t.Fatalf("PopFront() = %v", got)
	}
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
}

func TestBodyDuplicateTracking(t *testing.T) {
	var b Body
	c := core.Cell{X: 3, Y: 3}
	b.PushBack(c)
	b.PushBack(core.Cell{X: 4, Y: 3})
	if b.HasDuplicate() {
		t.Fatal("no duplicates yet")
	}
	b.PushFront(c)
	if !b.HasDuplicate() {
		t.Fatal("expected duplicate after pushing an occupied cell")
	}
	b.PopFront()
	if b.HasDuplicate() {
		t.Fatal("duplicate should clear once the extra copy is removed")
	}
	if !b.Contains(c) {
		t.Fatal("remaining copy must still be present")
	}

	b.PushFront(c)
	b.Clear()
	if b.Len() != 0 || b.HasDuplicate() || b.Contains(c) {
		t.Fatal("Clear must reset cells and counts")
	}
}
