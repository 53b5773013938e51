package tableau

import "testing"

func TestCatalogConsistency(t *testing.T) {
	tableaus := []Tableau{Euler(), Midpoint(), Heun(), Ralston(), RK4()}

	for _, tb := range tableaus {
		if !tb.Consistent() {
			t.Errorf("%s: weights do not sum to 1", tb.Name)
		}
	}
}

func TestCatalogShapes(t *testing.T) {
	tests := []struct {
		tb     Tableau
		stages int
	}{
		{Euler(), 1},
		{Midpoint(), 2},
		{Heun(), 2},
		{Ralston(), 2},
		{RK4(), 4},
	}

	for _, tt := range tests {
		if tt.tb.Stages() != tt.stages {
			t.Errorf("%s: expected %d stages, got %d", tt.tb.Name, tt.stages, tt.tb.Stages())
		}
		if len(tt.tb.A) != tt.stages || len(tt.tb.C) != tt.stages {
			t.Errorf("%s: A and C must have one row per stage", tt.tb.Name)
		}
	}
}

func TestCatalogStrictlyLowerTriangular(t *testing.T) {
	tableaus := []Tableau{Euler(), Midpoint(), Heun(), Ralston(), RK4()}

	for _, tb := range tableaus {
		for i, row := range tb.A {
			for j := i; j < len(row); j++ {
				if row[j] != 0 {
					t.Errorf("%s: A[%d][%d] = %f on or above the diagonal", tb.Name, i, j, row[j])
				}
			}
		}
	}
}

func TestConsistentRejectsBadWeights(t *testing.T) {
	tb := Heun()
	tb.B = []float64{0.5, 0.6}
	if tb.Consistent() {
		t.Error("expected inconsistent tableau to be reported")
	}
}
