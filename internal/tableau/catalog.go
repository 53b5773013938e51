package tableau

// Euler is the explicit Euler method (order 1).
func Euler() Tableau {
	return Tableau{
		Name: "euler",
		A:    [][]float64{{0}},
		B:    []float64{1},
		C:    []float64{0},
	}
}

// Midpoint is the explicit midpoint method (order 2).
func Midpoint() Tableau {
	return Tableau{
		Name: "midpoint",
		A: [][]float64{
			{0, 0},
			{0.5, 0},
		},
		B: []float64{0, 1},
		C: []float64{0, 0.5},
	}
}

// Heun is the trapezoidal predictor-corrector (order 2).
func Heun() Tableau {
	return Tableau{
		Name: "heun",
		A: [][]float64{
			{0, 0},
			{1, 0},
		},
		B: []float64{0.5, 0.5},
		C: []float64{0, 1},
	}
}

// Ralston is the minimum-truncation-error two-stage method (order 2).
func Ralston() Tableau {
	return Tableau{
		Name: "ralston",
		A: [][]float64{
			{0, 0},
			{2.0 / 3.0, 0},
		},
		B: []float64{0.25, 0.75},
		C: []float64{0, 2.0 / 3.0},
	}
}

// RK4 is the classical fourth-order method.
func RK4() Tableau {
	return Tableau{
		Name: "rk4",
		A: [][]float64{
			{0, 0, 0, 0},
			{0.5, 0, 0, 0},
			{0, 0.5, 0, 0},
			{0, 0, 1, 0},
		},
		B: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
		C: []float64{0, 0.5, 0.5, 1},
	}
}
