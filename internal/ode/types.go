package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Func is a right-hand side dy/dt = f(t, y).
type Func func(t float64, y State) State

type System interface {
	Derive(t float64, y State) State
	Dim() int
}

// Hamiltonian is implemented by systems with a conserved energy.
type Hamiltonian interface {
	Energy(y State) float64
}

type funcSystem struct {
	f   Func
	dim int
}

func (fs funcSystem) Derive(t float64, y State) State { return fs.f(t, y) }
func (fs funcSystem) Dim() int                        { return fs.dim }

// NewSystem wraps a plain function as a System of the given dimension.
func NewSystem(dim int, f Func) System {
	return funcSystem{f: f, dim: dim}
}

// Stats counts the work performed during one solve.
type Stats struct {
	Accepted int
	Rejected int
	Evals    int
}

// Result holds a discrete trajectory. Times and States are parallel and
// always start at (0, y0). Steps is populated by the adaptive stepper
// only: Steps[0] is the caller's initial guess and Steps[i] for i > 0 is
// the step size that produced sample i.
type Result struct {
	Times  []float64
	States []State
	Steps  []float64
	Stats  Stats
}

// Samples returns the number of trajectory samples, including the
// initial condition.
func (r *Result) Samples() int {
	return len(r.Times)
}

// Component extracts one state component across the whole trajectory,
// for plotting.
func (r *Result) Component(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}
