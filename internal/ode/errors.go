package ode

import "errors"

// Domain errors for solver operations.
var (
	// ErrNonFinite indicates the right-hand side or the error estimate
	// produced NaN or Inf.
	ErrNonFinite = errors.New("ode: non-finite value (NaN or Inf detected)")

	// ErrNoConvergence indicates the step controller rejected too many
	// consecutive proposals without meeting tolerance.
	ErrNoConvergence = errors.New("ode: step control failed to meet tolerance")

	// ErrDimensionMismatch indicates the right-hand side returned a
	// vector of a different dimension than the state.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and system")
)

// StepError wraps an error with the step context it occurred in.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
