package app

import (
	"io"

	log "github.com/sirupsen/logrus"

	"snake/internal/core"
	"snake/internal/snake"
)

// Session drives an Engine on behalf of a host and logs game transitions.
// Hosts call Input for key presses and Tick on every timer step, both from
// the same goroutine.
type Session struct {
	engine *snake.Engine
	log    log.FieldLogger
}

// NewSession wraps e. A nil logger discards output.
func NewSession(e *snake.Engine, logger log.FieldLogger) *Session {
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Session{engine: e, log: logger}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *snake.Engine { return s.engine }

// Input applies a key press. It returns true when the press restarted a
// finished game, which tells the host to resume its timer.
func (s *Session) Input(in core.Input) bool {
	changed, err := s.engine.HandleInput(in)
	if err != nil {
		s.log.WithError(err).Error("reset failed")
		return false
	}
	if !changed {
		return false
	}
	if in == core.InputReset {
		s.log.WithFields(log.Fields{
			"head":     s.engine.Snake()[0],
			"food":     s.engine.Food(),
			"velocity": s.engine.Velocity(),
		}).Info("game reset")
		return true
	}
	if d, ok := in.Direction(); ok {
		s.log.WithField("direction", d).Debug("heading changed")
	}
	return false
}

// Tick advances the game by one step and reports whether the host should
// keep ticking.
func (s *Session) Tick() bool {
	if !s.engine.Running() {
		return false
	}
	err := s.engine.Advance()
	if err != nil {
		s.log.WithError(err).Warn("advance")
	}
	if s.engine.Running() {
		return true
	}
	s.log.WithFields(log.Fields{
		"score":  s.engine.Score(),
		"length": s.engine.Len(),
		"tick":   s.engine.Tick(),
		"cause":  s.engine.Cause().String(),
	}).Info("game over")
	return false
}
