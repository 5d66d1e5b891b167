package rules

// Outcome names the rule that decided a cell's next state.
type Outcome int

const (
	// Barren is a dead cell that stays dead.
	Barren Outcome = iota
	// Underpopulation kills a live cell with fewer than two live neighbors.
	Underpopulation
	// Survival keeps a live cell with two or three live neighbors.
	Survival
	// Overcrowding kills a live cell with more than three live neighbors.
	Overcrowding
	// Reproduction brings a dead cell with exactly three live neighbors to life.
	Reproduction
)

var outcomeNames = [...]string{
	Barren:          "barren",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overcrowding:    "overcrowding",
	Reproduction:    "reproduction",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Alive reports whether the outcome leaves the cell alive.
func (o Outcome) Alive() bool {
	return o == Survival || o == Reproduction
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Classify reports which rule applies to a cell with the given live neighbor count.
func Classify(neighbors int, alive bool) Outcome {
	switch {
	case !alive && neighbors == 3:
		return Reproduction
	case !alive:
		return Barren
	case neighbors < 2:
		return Underpopulation
	case neighbors > 3:
		return Overcrowding
	default:
		return Survival
	}
}
