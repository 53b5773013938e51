package integrators

import (
	"fmt"

	"github.com/skalyan/odekit/internal/ode"
	"github.com/skalyan/odekit/internal/tableau"
)

// Fixed advances an ODE by a constant step size using an arbitrary
// explicit Butcher tableau. The loop runs while the last recorded time
// is below the horizon, so the final sample may overshoot the horizon
// by up to one step; no clipping is applied.
type Fixed struct {
	Tableau tableau.Tableau

	// Validate aborts the solve with ErrNonFinite when a step produces
	// NaN or Inf instead of letting it propagate into the trajectory.
	Validate bool
}

func NewFixed(tb tableau.Tableau) *Fixed {
	return &Fixed{Tableau: tb, Validate: true}
}

func (f *Fixed) Solve(sys ode.System, y0 ode.State, horizon, h float64) (*ode.Result, error) {
	if h <= 0 {
		return nil, fmt.Errorf("step size must be positive, got %f", h)
	}
	if horizon < 0 {
		return nil, fmt.Errorf("horizon must be non-negative, got %f", horizon)
	}
	if sys.Dim() != len(y0) {
		return nil, ode.ErrDimensionMismatch
	}

	s := f.Tableau.Stages()
	n := len(y0)
	k := make([]ode.State, s)
	stage := make(ode.State, n)

	result := &ode.Result{
		Times:  []float64{0},
		States: []ode.State{y0.Clone()},
	}

	t := 0.0
	y := y0.Clone()

	for t < horizon {
		for i := 0; i < s; i++ {
			copy(stage, y)
			for j := 0; j < i; j++ {
				a := f.Tableau.A[i][j]
				if a == 0 {
					continue
				}
				for d := 0; d < n; d++ {
					stage[d] += h * a * k[j][d]
				}
			}
			k[i] = sys.Derive(t+f.Tableau.C[i]*h, stage)
			result.Stats.Evals++
			if len(k[i]) != n {
				return result, &ode.StepError{Step: result.Stats.Accepted, Time: t, Wrapped: ode.ErrDimensionMismatch}
			}
		}

		next := y.Clone()
		for i := 0; i < s; i++ {
			b := f.Tableau.B[i]
			if b == 0 {
				continue
			}
			for d := 0; d < n; d++ {
				next[d] += h * b * k[i][d]
			}
		}

		t += h
		y = next
		result.Stats.Accepted++

		if f.Validate && !y.IsValid() {
			return result, &ode.StepError{Step: result.Stats.Accepted, Time: t, Wrapped: ode.ErrNonFinite}
		}

		result.Times = append(result.Times, t)
		result.States = append(result.States, y.Clone())
	}

	return result, nil
}
