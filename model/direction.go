package model

import "github.com/pkg/errors"

// RelativePosition is the compass direction from one cell to an adjacent one.
type RelativePosition int

const (
	North RelativePosition = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	// Central marks two equal coordinates. It is never a neighbor direction.
	Central
)

var positionLabels = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
	Central:   "C",
}

// compass is indexed by [rowDelta+1][colDelta+1].
var compass = [3][3]RelativePosition{
	{NorthWest, North, NorthEast},
	{West, Central, East},
	{SouthWest, South, SouthEast},
}

func (p RelativePosition) String() string {
	if p < 0 || int(p) >= len(positionLabels) {
		return "?"
	}
	return positionLabels[p]
}

// IsNeighbor reports whether p names one of the eight neighbor directions.
func (p RelativePosition) IsNeighbor() bool {
	return p >= North && p <= NorthWest
}

// DirectionOf returns the direction of to as seen from from. The coordinates must be equal
// or Moore neighbors; anything further apart is rejected with ErrNotAdjacent.
func DirectionOf(from, to Coordinate) (RelativePosition, error) {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 {
		return Central, errors.Wrapf(ErrNotAdjacent, "[DirectionOf] %v -> %v", from, to)
	}
	return compass[dRow+1][dCol+1], nil
}
