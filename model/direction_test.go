package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDirectionOf(t *testing.T) {
	from := At(5, 5)
	tests := []struct {
		to   Coordinate
		want RelativePosition
		str  string
	}{
		{At(4, 5), North, "N"},
		{At(4, 6), NorthEast, "NE"},
		{At(5, 6), East, "E"},
		{At(6, 6), SouthEast, "SE"},
		{At(6, 5), South, "S"},
		{At(6, 4), SouthWest, "SW"},
		{At(5, 4), West, "W"},
		{At(4, 4), NorthWest, "NW"},
		{At(5, 5), Central, "C"},
	}
	for _, tt := range tests {
		got, err := DirectionOf(from, tt.to)
		if err != nil {
			t.Fatalf("DirectionOf(%v, %v): %v", from, tt.to, err)
		}
		if got != tt.want {
			t.Errorf("DirectionOf(%v, %v) = %v, want %v", from, tt.to, got, tt.want)
		}
		if got.String() != tt.str {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.str)
		}
		if got.IsNeighbor() == (tt.want == Central) {
			t.Errorf("%v.IsNeighbor() = %v", got, got.IsNeighbor())
		}
	}
}

func TestDirectionOfRejectsNonAdjacent(t *testing.T) {
	for _, to := range []Coordinate{At(0, 2), At(2, 0), At(-2, -2), At(3, 1)} {
		_, err := DirectionOf(At(0, 0), to)
		if !errors.Is(err, ErrNotAdjacent) {
			t.Errorf("DirectionOf((0,0), %v) error = %v, want ErrNotAdjacent", to, err)
		}
	}
}

func TestDirectionOfIsSymmetric(t *testing.T) {
	opposite := map[RelativePosition]RelativePosition{
		North: South, NorthEast: SouthWest, East: West, SouthEast: NorthWest,
		South: North, SouthWest: NorthEast, West: East, NorthWest: SouthEast,
	}
	center := At(1, 1)
	g := mustParse(t, "o o o", "o o o", "o o o")
	for _, n := range NeighborsOf(g, center) {
		there, _ := DirectionOf(center, n)
		back, _ := DirectionOf(n, center)
		if opposite[there] != back {
			t.Errorf("%v -> %v is %v but the way back is %v", center, n, there, back)
		}
	}
}
