package model

// Neighbor is a neighboring coordinate labelled with its direction from the reference cell.
type Neighbor struct {
	Coordinate Coordinate
	Direction  RelativePosition
}

// neighborhood returns the clamped bounds of the 3x3 block centred on c.
func (g *Grid) neighborhood(c Coordinate) (minRow, maxRow, minCol, maxCol int) {
	return max(0, c.Row-1), min(g.height-1, c.Row+1), max(0, c.Col-1), min(g.width-1, c.Col+1)
}

// NeighborsOf returns the coordinates of the Moore neighbors of c in row-major order.
// Neighbors falling outside the grid are omitted; there is no wraparound.
// It returns nil when c itself is outside the grid.
func NeighborsOf(g *Grid, c Coordinate) []Coordinate {
	if !g.InBounds(c) {
		return nil
	}
	minRow, maxRow, minCol, maxCol := g.neighborhood(c)

	neighbors := make([]Coordinate, 0, 8)
	for y := minRow; y <= maxRow; y++ {
		for x := minCol; x <= maxCol; x++ {
			if y == c.Row && x == c.Col {
				continue
			}
			neighbors = append(neighbors, At(y, x))
		}
	}
	return neighbors
}

// LabeledNeighborsOf is NeighborsOf with each neighbor's compass direction attached.
func LabeledNeighborsOf(g *Grid, c Coordinate) []Neighbor {
	coords := NeighborsOf(g, c)
	if coords == nil {
		return nil
	}
	labeled := make([]Neighbor, len(coords))
	for i, n := range coords {
		// Resolved neighbors are always adjacent, so the error is impossible here.
		dir, _ := DirectionOf(c, n)
		labeled[i] = Neighbor{Coordinate: n, Direction: dir}
	}
	return labeled
}

// CountLiveNeighbors counts living neighbors of c using clamped bounds
func CountLiveNeighbors(g *Grid, c Coordinate) int {
	if !g.InBounds(c) {
		return 0
	}
	minRow, maxRow, minCol, maxCol := g.neighborhood(c)

	count := 0
	for y := minRow; y <= maxRow; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x := minCol; x <= maxCol; x++ {
			if y == c.Row && x == c.Col {
				continue // skip the cell itself
			}
			if row[x] == Alive {
				count++
			}
		}
	}
	return count
}
