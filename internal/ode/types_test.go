package ode

import (
	"errors"
	"math"
	"testing"
)

func TestState_Clone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("clone must not share backing storage")
	}
}

func TestState_IsValid(t *testing.T) {
	if !(State{1, -2, 0}).IsValid() {
		t.Error("finite state reported invalid")
	}
	if (State{1, math.NaN()}).IsValid() {
		t.Error("NaN state reported valid")
	}
	if (State{math.Inf(1)}).IsValid() {
		t.Error("Inf state reported valid")
	}
}

func TestState_Norm(t *testing.T) {
	if got := (State{3, 4}).Norm(); math.Abs(got-5) > 1e-15 {
		t.Errorf("expected 5, got %f", got)
	}
	if got := (State{}).Norm(); got != 0 {
		t.Errorf("empty state should have zero norm, got %f", got)
	}
}

func TestState_SubScale(t *testing.T) {
	a := State{3, 4}
	b := State{1, 1}

	d := a.Sub(b)
	if d[0] != 2 || d[1] != 3 {
		t.Errorf("unexpected difference: %v", d)
	}

	s := a.Scale(0.5)
	if s[0] != 1.5 || s[1] != 2 {
		t.Errorf("unexpected scaling: %v", s)
	}
}

func TestNewSystem(t *testing.T) {
	sys := NewSystem(1, func(tm float64, y State) State {
		return State{-y[0]}
	})

	if sys.Dim() != 1 {
		t.Errorf("expected dim 1, got %d", sys.Dim())
	}
	if got := sys.Derive(0, State{2})[0]; got != -2 {
		t.Errorf("expected -2, got %f", got)
	}
}

func TestResult_Component(t *testing.T) {
	r := &Result{
		Times:  []float64{0, 1},
		States: []State{{1, 10}, {2, 20}},
	}

	c := r.Component(1)
	if len(c) != 2 || c[0] != 10 || c[1] != 20 {
		t.Errorf("unexpected component slice: %v", c)
	}

	if r.Samples() != 2 {
		t.Errorf("expected 2 samples, got %d", r.Samples())
	}
}

func TestStepError_Unwrap(t *testing.T) {
	err := &StepError{Step: 3, Time: 0.5, Wrapped: ErrNonFinite}

	if !errors.Is(err, ErrNonFinite) {
		t.Error("StepError should unwrap to its sentinel")
	}
	if err.Error() != ErrNonFinite.Error() {
		t.Error("StepError message should come from the wrapped error")
	}
}
