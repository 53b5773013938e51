package tableau

import "math"

// Tableau holds the Butcher coefficients (A, B, C) of an explicit
// Runge-Kutta method. Only the strictly lower triangle of A is ever
// read by the solver; entries on or above the diagonal are ignored.
type Tableau struct {
	Name string
	A    [][]float64
	B    []float64
	C    []float64
}

func (tb Tableau) Stages() int {
	return len(tb.B)
}

// Consistent reports whether the weights sum to 1. The solver does not
// enforce this; an inconsistent tableau silently produces a wrong
// integrator.
func (tb Tableau) Consistent() bool {
	sum := 0.0
	for _, b := range tb.B {
		sum += b
	}
	return math.Abs(sum-1.0) < 1e-12
}
