package model

// CellState is the binary state of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

const (
	symbolAlive = "x"
	symbolDead  = "o"
)

func (s CellState) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// Symbol returns the token used for the state in text notation.
func (s CellState) Symbol() string {
	if s == Alive {
		return symbolAlive
	}
	return symbolDead
}

// StateFromToken maps a text notation token to a state: "x" is alive, anything else dead.
func StateFromToken(token string) CellState {
	if token == symbolAlive {
		return Alive
	}
	return Dead
}

// StateOf converts a boolean alive flag to a CellState.
func StateOf(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// Cell is an immutable alive/dead value.
type Cell struct {
	state CellState
}

// NewCell creates a cell holding the given state
func NewCell(state CellState) Cell {
	return Cell{state: state}
}

func (c Cell) State() CellState { return c.state }

func (c Cell) IsAlive() bool { return c.state == Alive }

func (c Cell) IsDead() bool { return c.state != Alive }
