package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Errorf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}
		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		want      Outcome
	}{
		{0, true, Underpopulation},
		{1, true, Underpopulation},
		{2, true, Survival},
		{3, true, Survival},
		{4, true, Overcrowding},
		{8, true, Overcrowding},
		{2, false, Barren},
		{3, false, Reproduction},
		{4, false, Barren},
	}
	for _, tt := range tests {
		got := Classify(tt.neighbors, tt.alive)
		if got != tt.want {
			t.Errorf("Classify(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
		}
		if got.Alive() != ApplyConwayRules(tt.neighbors, tt.alive) {
			t.Errorf("Classify(%d, %v).Alive() disagrees with ApplyConwayRules", tt.neighbors, tt.alive)
		}
	}
}
