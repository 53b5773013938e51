package sweep

import (
	"context"
	"sync"

	"github.com/skalyan/odekit/internal/integrators"
	"github.com/skalyan/odekit/internal/ode"
)

// Sweep runs independent adaptive solves of the same problem across a
// set of tolerances. Each solve is stateless, so they run concurrently.
type Sweep struct {
	sys     ode.System
	y0      ode.State
	horizon float64
}

func New(sys ode.System, y0 ode.State, horizon float64) *Sweep {
	return &Sweep{sys: sys, y0: y0, horizon: horizon}
}

// Tolerances solves once per entry of tols, with the remaining control
// parameters taken from base. Results are indexed like tols.
func (s *Sweep) Tolerances(ctx context.Context, base integrators.Control, tols []float64) ([]*ode.Result, error) {
	results := make([]*ode.Result, len(tols))
	errs := make([]error, len(tols))

	stepper := integrators.NewHeunEuler()

	var wg sync.WaitGroup
	for i, tol := range tols {
		wg.Add(1)
		go func(idx int, tol float64) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			ctrl := base
			ctrl.Tol = tol
			results[idx], errs[idx] = stepper.Solve(s.sys, s.y0.Clone(), s.horizon, ctrl)
		}(i, tol)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// StepSizes solves the fixed-step problem once per entry of steps using
// the supplied integrator.
func (s *Sweep) StepSizes(ctx context.Context, fixed *integrators.Fixed, steps []float64) ([]*ode.Result, error) {
	results := make([]*ode.Result, len(steps))
	errs := make([]error, len(steps))

	var wg sync.WaitGroup
	for i, h := range steps {
		wg.Add(1)
		go func(idx int, h float64) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			results[idx], errs[idx] = fixed.Solve(s.sys, s.y0.Clone(), s.horizon, h)
		}(i, h)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
