package model

import "fmt"

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Offset returns the coordinate shifted by the given deltas.
func (c Coordinate) Offset(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
