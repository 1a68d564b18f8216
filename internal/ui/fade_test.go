package ui

import (
	"testing"

	"snake/internal/core"
)

func TestFadeRunsOnGameOver(t *testing.T) {
	f := NewFade()
	if a := f.Update(core.Running, 0.1); a != 1 {
		t.Fatalf("running alpha = %v, want 1", a)
	}

	first := f.Update(core.GameOver, 0.1)
	if first <= 0 || first >= 1 {
		t.Fatalf("alpha after first game-over frame = %v, want strictly between 0 and 1", first)
	}
	second := f.Update(core.GameOver, 0.1)
	if second <= first {
		t.Fatalf("fade not increasing: %v then %v", first, second)
	}
	if a := f.Update(core.GameOver, 1); a != 1 {
		t.Fatalf("alpha after fade = %v, want 1", a)
	}
	if a := f.Update(core.GameOver, 0.1); a != 1 {
		t.Fatalf("alpha stays at %v after fade, want 1", a)
	}
}

func TestFadeResetsWhenPlayResumes(t *testing.T) {
	f := NewFade()
	f.Update(core.GameOver, 0.05)
	if a := f.Update(core.Running, 0.05); a != 1 {
		t.Fatalf("running alpha = %v, want 1", a)
	}
	if a := f.Update(core.GameOver, 0); a != 0 {
		t.Fatalf("second game over starts at %v, want 0", a)
	}
}
