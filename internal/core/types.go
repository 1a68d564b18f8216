package core

// Size describes the pixel dimensions of a board.
type Size struct {
	W int
	H int
}

// Cell is an integer coordinate on the board grid.
type Cell struct {
	X, Y int
}

// Add returns the cell reached by moving one step along v.
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.VX, Y: c.Y + v.VY}
}

// Velocity is a grid direction vector. A valid velocity has exactly one
// nonzero component, each component in {-1, 0, 1}.
type Velocity struct {
	VX, VY int
}

// Valid reports whether v is a unit, non-diagonal direction.
func (v Velocity) Valid() bool {
	if v.VX < -1 || v.VX > 1 || v.VY < -1 || v.VY > 1 {
		return false
	}
	return (v.VX == 0) != (v.VY == 0)
}

// Reverse returns the opposite direction.
func (v Velocity) Reverse() Velocity { return Velocity{VX: -v.VX, VY: -v.VY} }

// Direction is one of the four movement keys.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionVelocity = [...]Velocity{
	Up:    {VX: 0, VY: -1},
	Down:  {VX: 0, VY: 1},
	Left:  {VX: -1, VY: 0},
	Right: {VX: 1, VY: 0},
}

// Velocity returns the unit vector for d.
func (d Direction) Velocity() Velocity {
	if int(d) >= len(directionVelocity) {
		return Velocity{}
	}
	return directionVelocity[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Input is a discrete key event understood by the engine.
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputReset
)

// Direction maps a directional input to its Direction.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return Up, true
	case InputDown:
		return Down, true
	case InputLeft:
		return Left, true
	case InputRight:
		return Right, true
	}
	return 0, false
}

// State is the coarse game phase.
type State uint8

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}
