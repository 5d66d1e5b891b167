package model

// Bounds is an inclusive rectangle of rows and columns.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Area returns the number of cells covered by the bounds.
func (b Bounds) Area() int {
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// ActiveBounds returns the bounding box of the living cells. ok is false when nothing is alive.
func ActiveBounds(g *Grid) (b Bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] != Alive {
				continue
			}
			if !ok {
				b = Bounds{MinRow: y, MaxRow: y, MinCol: x, MaxCol: x}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, y)
			b.MaxRow = max(b.MaxRow, y)
			b.MinCol = min(b.MinCol, x)
			b.MaxCol = max(b.MaxCol, x)
		}
	}
	return b, ok
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := ActiveBounds(g)
	if !ok {
		return 0
	}
	return b.Area()
}

// BoundedEngine only evaluates the live bounding box plus a one cell margin. A dead cell
// outside that margin has no live neighbors, so it stays dead.
type BoundedEngine struct{}

func (BoundedEngine) Advance(g *Grid) *Grid {
	next := newGrid(g.width, g.height)

	b, ok := ActiveBounds(g)
	if !ok {
		return next
	}

	// Process only the active region + 1 margin
	minRow := max(0, b.MinRow-1)
	maxRow := min(g.height-1, b.MaxRow+1)
	minCol := max(0, b.MinCol-1)
	maxCol := min(g.width-1, b.MaxCol+1)

	for y := minRow; y <= maxRow; y++ {
		for x := minCol; x <= maxCol; x++ {
			c := At(y, x)
			next.cells[next.index(c)] = g.nextState(c)
		}
	}
	return next
}
