package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"snake/internal/core"
)

// fadeSeconds is how long the game-over text takes to appear.
const fadeSeconds = 0.4

// Fade tracks the opacity of the overlay text. It restarts from transparent
// every time the game enters GameOver and is fully opaque otherwise.
type Fade struct {
	tween *gween.Tween
	last  core.State
	alpha float32
}

// NewFade returns a Fade for a running game.
func NewFade() *Fade { return &Fade{last: core.Running, alpha: 1} }

// Update advances the fade by dt seconds and returns the current opacity.
func (f *Fade) Update(state core.State, dt float32) float32 {
	if state != f.last {
		f.last = state
		if state == core.GameOver {
			f.tween = gween.New(0, 1, fadeSeconds, ease.OutQuad)
			f.alpha = 0
		} else {
			f.tween = nil
			f.alpha = 1
		}
	}
	if f.tween != nil {
		alpha, done := f.tween.Update(dt)
		f.alpha = alpha
		if done {
			f.tween = nil
			f.alpha = 1
		}
	}
	return f.alpha
}

// Alpha returns the last computed opacity.
func (f *Fade) Alpha() float32 { return f.alpha }
