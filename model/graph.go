package model

import "github.com/sheikhrachel/lifegrid/rules"

// Graph is a mutable arena of cell states with index-based adjacency. Step updates every
// cell in two phases: all next states are computed from the current states, then committed
// together, so no cell observes a neighbor that already moved to the next generation.
//
// A Graph owns its storage; it never shares memory with the Grid it was built from or the
// Grids returned by Snapshot.
type Graph struct {
	width     int
	height    int
	states    []CellState
	adjacency [][]int
}

// NewGraph builds an arena from g, resolving every cell's neighbors once.
func NewGraph(g *Grid) *Graph {
	states := make([]CellState, len(g.cells))
	copy(states, g.cells)

	adjacency := make([][]int, len(g.cells))
	for i, c := range g.Coordinates() {
		neighbors := NeighborsOf(g, c)
		adjacency[i] = make([]int, len(neighbors))
		for j, n := range neighbors {
			adjacency[i][j] = g.index(n)
		}
	}

	return &Graph{
		width:     g.width,
		height:    g.height,
		states:    states,
		adjacency: adjacency,
	}
}

// NeighborCount returns the number of neighbors linked to the cell at c.
func (gr *Graph) NeighborCount(c Coordinate) int {
	if c.Row < 0 || c.Row >= gr.height || c.Col < 0 || c.Col >= gr.width {
		return 0
	}
	return len(gr.adjacency[c.Row*gr.width+c.Col])
}

func (gr *Graph) liveNeighbors(i int) int {
	count := 0
	for _, n := range gr.adjacency[i] {
		if gr.states[n] == Alive {
			count++
		}
	}
	return count
}

// pretick computes every cell's next state into next without touching the current states.
func (gr *Graph) pretick(next []CellState) {
	for i, s := range gr.states {
		next[i] = StateOf(rules.ApplyConwayRules(gr.liveNeighbors(i), s == Alive))
	}
}

// tick commits the states computed by pretick.
func (gr *Graph) tick(next []CellState) {
	copy(gr.states, next)
}

// Step advances the arena by one generation.
func (gr *Graph) Step() {
	buf := scratchStates.Get(len(gr.states))
	defer scratchStates.Put(buf)

	gr.pretick(*buf)
	gr.tick(*buf)
}

// Snapshot copies the current states into a new immutable Grid.
func (gr *Graph) Snapshot() *Grid {
	g := newGrid(gr.width, gr.height)
	copy(g.cells, gr.states)
	return g
}

// GraphEngine advances a grid through a throwaway Graph.
type GraphEngine struct{}

func (GraphEngine) Advance(g *Grid) *Grid {
	gr := NewGraph(g)
	gr.Step()
	return gr.Snapshot()
}
