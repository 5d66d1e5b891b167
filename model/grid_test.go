package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := FromText(lines)
	if err != nil {
		t.Fatalf("FromText(%q): %v", lines, err)
	}
	return g
}

// sequenceSource replays a fixed sequence of draws, wrapping around at the end.
type sequenceSource struct {
	draws []int
	next  int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.draws[s.next%len(s.draws)] % n
	s.next++
	return v
}

func TestFromStatesDimensionInvariant(t *testing.T) {
	states := [][]CellState{
		{Alive, Dead, Alive, Dead},
		{Dead, Dead, Dead, Alive},
		{Alive, Alive, Dead, Dead},
	}
	g, err := FromStates(states)
	if err != nil {
		t.Fatalf("FromStates: %v", err)
	}
	if g.GetWidth() != 4 || g.GetHeight() != 3 {
		t.Fatalf("got %dx%d, want 4x3", g.GetWidth(), g.GetHeight())
	}
	if g.Len() != g.GetWidth()*g.GetHeight() {
		t.Fatalf("Len() = %d, want %d", g.Len(), g.GetWidth()*g.GetHeight())
	}
	seen := 0
	for _, c := range g.Coordinates() {
		if got, want := g.State(c), states[c.Row][c.Col]; got != want {
			t.Errorf("state at %v = %v, want %v", c, got, want)
		}
		seen++
	}
	if seen != g.Len() {
		t.Fatalf("Coordinates() yielded %d coordinates, want %d", seen, g.Len())
	}

	// The grid must not alias the caller's matrix.
	states[0][0] = Dead
	if g.State(At(0, 0)) != Alive {
		t.Fatal("grid changed after mutating the input matrix")
	}
}

func TestFromStatesErrors(t *testing.T) {
	tests := []struct {
		name   string
		states [][]CellState
		row    int
	}{
		{"no rows", nil, -1},
		{"no columns", [][]CellState{{}, {}}, -1},
		{"ragged", [][]CellState{{Alive, Dead}, {Alive}}, 1},
		{"ragged longer", [][]CellState{{Alive}, {Dead}, {Alive, Alive}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromStates(tt.states)
			if err == nil {
				t.Fatal("expected an error")
			}
			if g != nil {
				t.Fatal("a grid was returned alongside the error")
			}
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("error %v is not a *DimensionError", err)
			}
			if dimErr.Row != tt.row {
				t.Fatalf("Row = %d, want %d", dimErr.Row, tt.row)
			}
		})
	}
}

func TestRandomUsesInjectedSource(t *testing.T) {
	src := &sequenceSource{draws: []int{1, 0, 0, 1, 1, 1}}
	g, err := Random(3, 2, src)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	want := []string{"x o o", "x x x"}
	got := Render(g)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if src.next != 6 {
		t.Fatalf("source drawn %d times, want 6", src.next)
	}
}

func TestRandomDeterministicForSeed(t *testing.T) {
	a, err := Random(20, 15, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	b, err := Random(20, 15, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("grids seeded identically differ")
	}
	if a.Len() != 300 {
		t.Fatalf("Len() = %d, want 300", a.Len())
	}
}

func TestRandomRejectsBadDimensions(t *testing.T) {
	src := &sequenceSource{draws: []int{0}}
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		g, err := Random(dims[0], dims[1], src)
		var dimErr *DimensionError
		if !errors.As(err, &dimErr) || g != nil {
			t.Errorf("Random(%d, %d) = %v, %v; want DimensionError", dims[0], dims[1], g, err)
		}
	}
}

func TestBlank(t *testing.T) {
	g, err := Blank(4, 2)
	if err != nil {
		t.Fatalf("Blank: %v", err)
	}
	if g.CountLivingCells() != 0 || g.Len() != 8 {
		t.Fatalf("Blank(4, 2) has %d living of %d cells", g.CountLivingCells(), g.Len())
	}
}

func TestStateOutOfRangeIsDead(t *testing.T) {
	g := mustParse(t, "x x", "x x")
	for _, c := range []Coordinate{At(-1, 0), At(0, -1), At(2, 0), At(0, 2)} {
		if g.State(c) != Dead {
			t.Errorf("State(%v) = %v, want DEAD", c, g.State(c))
		}
		if g.Cell(c).IsAlive() {
			t.Errorf("Cell(%v) is alive", c)
		}
	}
}

func TestStatesReturnsCopy(t *testing.T) {
	g := mustParse(t, "x o", "o x")
	states := g.States()
	states[0][0] = Dead
	if g.State(At(0, 0)) != Alive {
		t.Fatal("mutating States() changed the grid")
	}
}

func TestStamp(t *testing.T) {
	base, err := Blank(4, 3)
	if err != nil {
		t.Fatalf("Blank: %v", err)
	}
	block, err := Pattern("block")
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}

	stamped := Stamp(base, block, At(2, 3))
	want := []string{
		"o o o o",
		"o o o o",
		"o o o x",
	}
	got := Render(stamped)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if base.CountLivingCells() != 0 {
		t.Fatal("Stamp mutated its base grid")
	}
}

func TestEqualAndHash(t *testing.T) {
	a := mustParse(t, "x o", "o x")
	b := mustParse(t, "x o", "o x")
	c := mustParse(t, "x o", "o o")
	wide := mustParse(t, "x o o x")

	if !a.Equal(b) || a.GetGridHash() != b.GetGridHash() {
		t.Fatal("equal grids compare unequal")
	}
	if a.Equal(c) || a.GetGridHash() == c.GetGridHash() {
		t.Fatal("different grids compare equal")
	}
	if a.Equal(wide) || a.GetGridHash() == wide.GetGridHash() {
		t.Fatal("grids of different shapes compare equal")
	}
}

func TestCompareGenerations(t *testing.T) {
	prev := mustParse(t, "x x o", "o o o")
	next := mustParse(t, "x o x", "o x o")
	births, deaths := CompareGenerations(prev, next)
	if births != 2 || deaths != 1 {
		t.Fatalf("births, deaths = %d, %d; want 2, 1", births, deaths)
	}
}

func TestCell(t *testing.T) {
	if !NewCell(Alive).IsAlive() || NewCell(Alive).IsDead() {
		t.Fatal("alive cell misreported")
	}
	if NewCell(Dead).IsAlive() || !NewCell(Dead).IsDead() {
		t.Fatal("dead cell misreported")
	}
	var zero Cell
	if zero.State() != Dead {
		t.Fatal("zero Cell should be dead")
	}
}
