package core

import "testing"

func TestDirectionVelocityAndReverse(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		v := d.Velocity()
		if !v.Valid() {
			t.Fatalf("%s velocity %v is not a unit vector", d, v)
		}
	}
	if Up.Velocity().Reverse() != Down.Velocity() {
		t.Fatal("up reversed should be down")
	}
	if Left.Velocity().Reverse() != Right.Velocity() {
		t.Fatal("left reversed should be right")
	}
}

func TestVelocityValid(t *testing.T) {
	invalid := []Velocity{{0, 0}, {1, 1}, {-1, 1}, {2, 0}, {0, -2}}
	for _, v := range invalid {
		if v.Valid() {
			t.Fatalf("%v should be invalid", v)
		}
	}
}

func TestInputDirection(t *testing.T) {
	if _, ok := InputReset.Direction(); ok {
		t.Fatal("reset is not a direction")
	}
	if d, ok := InputLeft.Direction(); !ok || d != Left {
		t.Fatalf("InputLeft.Direction() = %v, %v", d, ok)
	}
}
