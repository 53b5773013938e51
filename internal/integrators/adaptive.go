package integrators

import (
	"fmt"
	"math"

	"github.com/skalyan/odekit/internal/ode"
)

// ShrinkRule selects the step-size update applied on rejection.
type ShrinkRule int

const (
	// ShrinkLegacy halves the product h*shrink*(tol/est). This matches
	// the literal operator-precedence reading of the reference
	// controller and is the default.
	ShrinkLegacy ShrinkRule = iota

	// ShrinkSqrt is the conventional controller h*shrink*sqrt(tol/est).
	ShrinkSqrt
)

// Control holds the step-size control parameters for one adaptive
// solve. All values are constant across the solve.
type Control struct {
	H0     float64 // initial step-size guess
	Tol    float64 // absolute error tolerance
	Shrink float64 // rejection factor, expected in (0,1)
	Growth float64 // acceptance factor, expected > 1
	Rule   ShrinkRule

	// MaxRejects bounds consecutive rejections of a single step; 0
	// disables the guard and restores the unbounded rejection loop.
	MaxRejects int

	// Validate aborts with ErrNonFinite when the right-hand side or the
	// error estimate produces NaN or Inf. Without it a NaN estimate is
	// rejected forever.
	Validate bool
}

func DefaultControl() Control {
	return Control{
		H0:         0.01,
		Tol:        1e-4,
		Shrink:     0.9,
		Growth:     1.1,
		Rule:       ShrinkLegacy,
		MaxRejects: 10000,
		Validate:   true,
	}
}

// HeunEuler is an embedded order 2(1) stepper. Each proposed step
// shares its two derivative evaluations between an Euler estimate and a
// Heun estimate; their scaled difference is the local error estimate.
type HeunEuler struct{}

func NewHeunEuler() *HeunEuler {
	return &HeunEuler{}
}

// Solve integrates from (0, y0) to the horizon with accept/reject step
// control. The returned trajectory has strictly increasing times, its
// final time equals the horizon exactly, and Steps records the step
// size behind every accepted sample (Steps[0] is the initial guess).
func (he *HeunEuler) Solve(sys ode.System, y0 ode.State, horizon float64, ctrl Control) (*ode.Result, error) {
	if err := validateControl(ctrl); err != nil {
		return nil, err
	}
	if horizon < 0 {
		return nil, fmt.Errorf("horizon must be non-negative, got %f", horizon)
	}
	if sys.Dim() != len(y0) {
		return nil, ode.ErrDimensionMismatch
	}

	n := len(y0)
	euler := make(ode.State, n)

	result := &ode.Result{
		Times:  []float64{0},
		States: []ode.State{y0.Clone()},
		Steps:  []float64{ctrl.H0},
	}

	t := 0.0
	y := y0.Clone()
	h := ctrl.H0
	rejects := 0

	for t < horizon {
		k1 := sys.Derive(t, y)
		for d := 0; d < n; d++ {
			euler[d] = y[d] + h*k1[d]
		}
		k2 := sys.Derive(t+h, euler)
		result.Stats.Evals += 2

		if ctrl.Validate && (!k1.IsValid() || !k2.IsValid()) {
			return result, &ode.StepError{Step: result.Stats.Accepted, Time: t, Wrapped: ode.ErrNonFinite}
		}

		est := 0.0
		for d := 0; d < n; d++ {
			diff := 0.5 * h * (k2[d] - k1[d])
			est += diff * diff
		}
		est = math.Sqrt(est)

		if ctrl.Validate && (math.IsNaN(est) || math.IsInf(est, 0)) {
			return result, &ode.StepError{Step: result.Stats.Accepted, Time: t, Wrapped: ode.ErrNonFinite}
		}

		if est <= ctrl.Tol {
			last := horizon - t
			if h > last {
				// Landing step: shrink to hit the horizon and re-propose
				// with the corrected size. No trajectory growth here.
				h = last
				continue
			}

			for d := 0; d < n; d++ {
				y[d] += 0.5 * h * (k1[d] + k2[d])
			}
			if h == last {
				t = horizon
			} else {
				t += h
			}
			result.Stats.Accepted++
			rejects = 0

			result.Times = append(result.Times, t)
			result.States = append(result.States, y.Clone())
			result.Steps = append(result.Steps, h)

			h *= ctrl.Growth
			continue
		}

		result.Stats.Rejected++
		rejects++
		if ctrl.MaxRejects > 0 && rejects >= ctrl.MaxRejects {
			return result, &ode.StepError{Step: result.Stats.Accepted, Time: t, Wrapped: ode.ErrNoConvergence}
		}

		switch ctrl.Rule {
		case ShrinkSqrt:
			h = h * ctrl.Shrink * math.Sqrt(ctrl.Tol/est)
		default:
			h = h * ctrl.Shrink * (ctrl.Tol / est) / 2
		}
	}

	return result, nil
}

func validateControl(ctrl Control) error {
	if ctrl.H0 <= 0 {
		return fmt.Errorf("initial step size must be positive, got %f", ctrl.H0)
	}
	if ctrl.Tol <= 0 {
		return fmt.Errorf("tolerance must be positive, got %f", ctrl.Tol)
	}
	if ctrl.Shrink <= 0 || ctrl.Shrink >= 1 {
		return fmt.Errorf("shrink factor must be in (0,1), got %f", ctrl.Shrink)
	}
	if ctrl.Growth <= 1 {
		return fmt.Errorf("growth factor must be greater than 1, got %f", ctrl.Growth)
	}
	return nil
}
