package core

import "time"

// DefaultTickInterval is the simulation period of the game.
const DefaultTickInterval = 90 * time.Millisecond

// FixedStep turns a frame-rate driven loop into steps of a fixed interval.
// A stopped FixedStep never reports a step.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
}

// NewFixedStep constructs a running FixedStep with the given period.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.Start()
	return fs
}

// SetInterval changes the step period. Non-positive values select the default.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval returns the step period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Start (re)arms the timer. The first step fires one interval later.
func (f *FixedStep) Start() {
	f.running = true
	f.accumulator = 0
	f.last = time.Time{}
}

// Stop halts stepping until the next Start.
func (f *FixedStep) Stop() { f.running = false }

// Running reports whether the timer is armed.
func (f *FixedStep) Running() bool { return f.running }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.tick(time.Now())
}

func (f *FixedStep) tick(now time.Time) bool {
	if !f.running {
		return false
	}
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
