package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs := NewFixedStep(90 * time.Millisecond)
	start := time.Unix(0, 0)
	if fs.tick(start) {
		t.Fatal("first call must only latch the clock")
	}
	if fs.tick(start.Add(60 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.tick(start.Add(90 * time.Millisecond)) {
		t.Fatal("expected a step at 90ms")
	}
	if fs.tick(start.Add(100 * time.Millisecond)) {
		t.Fatal("stepped twice within one interval")
	}
	if !fs.tick(start.Add(180 * time.Millisecond)) {
		t.Fatal("expected a step at 180ms")
	}
}

func TestFixedStepStopAndRestart(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.tick(start)
	fs.Stop()
	if fs.Running() {
		t.Fatal("Running after Stop")
	}
	if fs.tick(start.Add(time.Second)) {
		t.Fatal("stopped timer must not step")
	}

	fs.Start()
	restart := start.Add(2 * time.Second)
	if fs.tick(restart) {
		t.Fatal("restart must not carry over time spent stopped")
	}
	if !fs.tick(restart.Add(10 * time.Millisecond)) {
		t.Fatal("expected a step one interval after restart")
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultTickInterval {
		t.Fatalf("interval = %v, want %v", fs.Interval(), DefaultTickInterval)
	}
}
