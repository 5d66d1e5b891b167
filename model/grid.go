package model

import (
	"crypto/md5"
	"fmt"
)

// RandSource supplies the randomness used to seed a grid. *math/rand/v2.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Grid is an immutable, fully populated rectangle of cells stored in row-major order
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// newGrid allocates an all-dead grid. Callers are responsible for validating dimensions.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

// FromStates builds a grid from a height x width matrix of states. The matrix is copied.
func FromStates(states [][]CellState) (*Grid, error) {
	if len(states) == 0 {
		return nil, dimensionError("no rows")
	}
	width := len(states[0])
	if width == 0 {
		return nil, dimensionError("no columns")
	}
	for i, row := range states {
		if len(row) != width {
			return nil, raggedRowError(i, width, len(row))
		}
	}

	g := newGrid(width, len(states))
	for y, row := range states {
		copy(g.cells[y*width:(y+1)*width], row)
	}
	return g, nil
}

// Blank creates an all-dead grid with the specified dimensions
func Blank(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return newGrid(width, height), nil
}

// Random creates a grid where every cell is independently alive with probability 0.5.
func Random(width, height int, src RandSource) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := newGrid(width, height)
	for i := range g.cells {
		g.cells[i] = StateOf(src.IntN(2) == 1)
	}
	return g, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 {
		return dimensionError(fmt.Sprintf("width must be positive, got %d", width))
	}
	if height <= 0 {
		return dimensionError(fmt.Sprintf("height must be positive, got %d", height))
	}
	return nil
}

// Stamp returns a copy of base with the live cells of pattern written at the given offset.
// Parts of the pattern falling outside base are clipped.
func Stamp(base, pattern *Grid, at Coordinate) *Grid {
	next := base.clone()
	for y := range pattern.height {
		for x := range pattern.width {
			if pattern.cells[y*pattern.width+x] != Alive {
				continue
			}
			target := at.Offset(y, x)
			if next.InBounds(target) {
				next.cells[next.index(target)] = Alive
			}
		}
	}
	return next
}

func (g *Grid) clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

func (g *Grid) index(c Coordinate) int {
	return c.Row*g.width + c.Col
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells, always width * height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// State returns the state at c, or Dead when c is out of range.
func (g *Grid) State(c Coordinate) CellState {
	if !g.InBounds(c) {
		return Dead
	}
	return g.cells[g.index(c)]
}

// Cell returns the cell at c.
func (g *Grid) Cell(c Coordinate) Cell {
	return NewCell(g.State(c))
}

// States returns a copy of the grid as a row-major matrix.
func (g *Grid) States() [][]CellState {
	rows := make([][]CellState, g.height)
	for y := range rows {
		rows[y] = make([]CellState, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Coordinates lists every coordinate of the grid in row-major order.
func (g *Grid) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(g.cells))
	for y := range g.height {
		for x := range g.width {
			coords = append(coords, At(y, x))
		}
	}
	return coords
}

// Equal reports whether both grids have the same dimensions and the same state in every cell.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, s := range g.cells {
		if s == Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	h.Write([]byte(fmt.Sprintf("%dx%d:", g.width, g.height)))
	for _, s := range g.cells {
		h.Write([]byte{byte(s)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// CompareGenerations counts the cells born and the cells that died between two generations
// of the same dimensions.
func CompareGenerations(prev, next *Grid) (births, deaths int) {
	for i, s := range prev.cells {
		switch {
		case s == Dead && next.cells[i] == Alive:
			births++
		case s == Alive && next.cells[i] == Dead:
			deaths++
		}
	}
	return
}
