// Package snake implements the rules of the game: movement, growth,
// collisions, input and the per-frame render description. It has no
// knowledge of windows or terminals; hosts call Advance on a fixed interval
// and feed key presses through HandleInput.
package snake

import (
	"errors"
	"fmt"
	"time"

	"snake/internal/core"
)

var (
	// ErrInvalidBoard is returned when the board is too small to hold a cell.
	ErrInvalidBoard = errors.New("snake: board too small")
	// ErrBoardFull is returned when no free cell is left for food or the head.
	ErrBoardFull = errors.New("snake: no free cell on board")
)

// sampleFactor bounds the rejection sampler at sampleFactor*cells draws
// before it falls back to scanning for free cells.
const sampleFactor = 4

// Cause records why a game ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseSelf
	CauseWall
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self collision"
	case CauseWall:
		return "wall collision"
	case CauseBoardFull:
		return "board full"
	}
	return "none"
}

// Engine owns the snake, the food, the heading and the game state.
// It is not safe for concurrent use; hosts drive it from one goroutine.
type Engine struct {
	board core.Board
	rng   *core.RNG

	body  Body
	food  core.Cell
	vel   core.Velocity
	state core.State
	cause Cause
	tick  uint64
}

// New validates the board, seeds the generator and starts a fresh game.
func New(cfg Config) (*Engine, error) {
	board := core.NewBoard(cfg.BoardWidth, cfg.BoardHeight)
	if !board.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, cfg.BoardWidth, cfg.BoardHeight)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{board: board, rng: core.NewRNG(seed)}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset clears the snake, places food, spawns a single head away from the
// food and picks a random heading.
func (e *Engine) Reset() error {
	e.body.Clear()
	e.tick = 0
	e.cause = CauseNone

	food, err := e.randomFreeCell(e.body.Contains)
	if err != nil {
		e.end(CauseBoardFull)
		return fmt.Errorf("place food: %w", err)
	}
	e.food = food

	head, err := e.randomFreeCell(func(c core.Cell) bool { return c == e.food })
	if err != nil {
		e.end(CauseBoardFull)
		return fmt.Errorf("spawn head: %w", err)
	}
	e.body.PushFront(head)

	e.vel = e.randomVelocity()
	e.state = core.Running
	return nil
}

// Advance runs one tick. The checks run in a fixed order: self collision
// keeps the new head, eating keeps the tail, a wall hit drops the new head,
// and otherwise the tail is dropped. It is a no-op once the game is over.
func (e *Engine) Advance() error {
	if e.state != core.Running {
		return nil
	}
	e.tick++

	head := e.body.Head().Add(e.vel)
	e.body.PushFront(head)

	switch {
	case e.body.HasDuplicate():
		e.end(CauseSelf)
	case head == e.food:
		food, err := e.randomFreeCell(e.body.Contains)
		if err != nil {
			e.end(CauseBoardFull)
			return fmt.Errorf("respawn food: %w", err)
		}
		e.food = food
	case !e.board.InBounds(head):
		e.end(CauseWall)
		e.body.PopFront()
	default:
		e.body.PopBack()
	}
	return nil
}

// ApplyDirection changes the heading unless d points straight back along the
// current velocity. It reports whether the heading was accepted.
func (e *Engine) ApplyDirection(d core.Direction) bool {
	if e.state != core.Running {
		return false
	}
	v := d.Velocity()
	if v == e.vel.Reverse() {
		return false
	}
	e.vel = v
	return true
}

// HandleInput applies a key event. Reset only acts after the game is over.
// The bool reports whether the input changed anything.
func (e *Engine) HandleInput(in core.Input) (bool, error) {
	if in == core.InputReset {
		if e.state != core.GameOver {
			return false, nil
		}
		if err := e.Reset(); err != nil {
			return false, err
		}
		return true, nil
	}
	if d, ok := in.Direction(); ok {
		return e.ApplyDirection(d), nil
	}
	return false, nil
}

// Place replaces the game with an explicit arrangement and resumes play.
// body is head first, must not be empty, and is taken as given, duplicates
// included.
func (e *Engine) Place(body []core.Cell, food core.Cell, v core.Velocity) {
	e.body.Clear()
	for _, c := range body {
		e.body.PushBack(c)
	}
	e.food = food
	e.vel = v
	e.state = core.Running
	e.cause = CauseNone
	e.tick = 0
}

func (e *Engine) end(cause Cause) {
	e.state = core.GameOver
	e.cause = cause
}

// randomFreeCell draws uniform cells until one is not excluded. After
// sampleFactor*cells misses it picks uniformly among the remaining free
// cells, or fails with ErrBoardFull when there are none.
func (e *Engine) randomFreeCell(excluded func(core.Cell) bool) (core.Cell, error) {
	n := e.board.NumCells
	for i := 0; i < sampleFactor*e.board.Cells(); i++ {
		c := core.Cell{X: e.rng.IntN(n), Y: e.rng.IntN(n)}
		if !excluded(c) {
			return c, nil
		}
	}

	var free []core.Cell
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c := (core.Cell{X: x, Y: y}); !excluded(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrBoardFull
	}
	return free[e.rng.IntN(len(free))], nil
}

func (e *Engine) randomVelocity() core.Velocity {
	for {
		x, y := e.rng.Signed(), 0
		if x == 0 {
			y = e.rng.Signed()
		}
		if x != 0 || y != 0 {
			return core.Velocity{VX: x, VY: y}
		}
	}
}

// Board returns the board geometry.
func (e *Engine) Board() core.Board { return e.board }

// Snake returns a copy of the snake cells, head first.
func (e *Engine) Snake() []core.Cell { return e.body.Cells() }

// Len returns the snake length.
func (e *Engine) Len() int { return e.body.Len() }

// Food returns the food cell.
func (e *Engine) Food() core.Cell { return e.food }

// Velocity returns the current heading.
func (e *Engine) Velocity() core.Velocity { return e.vel }

// State returns the game phase.
func (e *Engine) State() core.State { return e.state }

// Running reports whether the host should keep ticking.
func (e *Engine) Running() bool { return e.state == core.Running }

// Cause returns why the last game ended.
func (e *Engine) Cause() Cause { return e.cause }

// Score is the snake length minus one.
func (e *Engine) Score() int {
	if e.body.Len() == 0 {
		return 0
	}
	return e.body.Len() - 1
}

// Tick returns the number of ticks since the last reset.
func (e *Engine) Tick() uint64 { return e.tick }
