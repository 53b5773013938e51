package models

import (
	"math"
	"testing"

	"github.com/skalyan/odekit/internal/ode"
)

// exactMatchesDerivative checks d/dt of the closed form against the
// right-hand side with a central difference.
func exactMatchesDerivative(t *testing.T, name string, sys ode.System, exact func(float64) float64, at float64) {
	t.Helper()

	const eps = 1e-6
	numeric := (exact(at+eps) - exact(at-eps)) / (2 * eps)
	analytic := sys.Derive(at, ode.State{exact(at)})[0]

	if math.Abs(numeric-analytic) > 1e-4 {
		t.Errorf("%s: closed form disagrees with rhs at t=%.2f: %.6f vs %.6f", name, at, numeric, analytic)
	}
}

func TestFreeFall(t *testing.T) {
	ff := NewFreeFall()

	if ff.Dim() != 1 {
		t.Fatalf("expected dim 1, got %d", ff.Dim())
	}

	alpha := ff.Alpha()
	if math.Abs(alpha-0.2252) > 1e-3 {
		t.Errorf("expected alpha near 0.2252, got %.4f", alpha)
	}

	if ff.Exact(0) != 0 {
		t.Error("a body released from rest starts at zero velocity")
	}

	// Terminal velocity: the derivative vanishes there.
	vT := math.Sqrt(ff.Gravity / alpha)
	dv := ff.Derive(0, ode.State{vT})[0]
	if math.Abs(dv) > 1e-9 {
		t.Errorf("derivative at terminal velocity should vanish, got %.3e", dv)
	}

	for _, at := range []float64{0.1, 0.5, 1.0, 1.4} {
		exactMatchesDerivative(t, "freefall", ff, ff.Exact, at)
	}
}

func TestDecay(t *testing.T) {
	d := NewDecay()
	d.Lambda = 2.0

	if got := d.Derive(0, ode.State{3.0})[0]; got != -6.0 {
		t.Errorf("expected -6, got %f", got)
	}

	if math.Abs(d.Exact(1.0, 1.0)-math.Exp(-2.0)) > 1e-15 {
		t.Error("exact solution mismatch")
	}

	exact := func(tm float64) float64 { return d.Exact(1.0, tm) }
	exactMatchesDerivative(t, "decay", d, exact, 0.5)
}

func TestOscillator(t *testing.T) {
	o := NewOscillator()

	dy := o.Derive(0, ode.State{1.0, 0.0})
	if dy[0] != 0.0 || dy[1] != -1.0 {
		t.Errorf("unexpected derivative: %v", dy)
	}

	if math.Abs(o.Exact(1.0, math.Pi)-(-1.0)) > 1e-12 {
		t.Error("expected position -1 at half period")
	}

	e0 := o.Energy(ode.State{1.0, 0.0})
	e1 := o.Energy(ode.State{0.0, 1.0})
	if math.Abs(e0-e1) > 1e-15 {
		t.Error("energy should be the same at turning point and equilibrium crossing")
	}
}

func TestLogistic(t *testing.T) {
	l := NewLogistic()

	if got := l.Exact(0, 1.0); got != 0 {
		t.Errorf("zero stays zero, got %f", got)
	}

	// The carrying capacity is a fixed point.
	if dv := l.Derive(0, ode.State{l.Capacity})[0]; dv != 0 {
		t.Errorf("derivative at capacity should vanish, got %f", dv)
	}

	if math.Abs(l.Exact(0.1, 0)-0.1) > 1e-15 {
		t.Error("exact solution must pass through the initial value")
	}

	exact := func(tm float64) float64 { return l.Exact(0.1, tm) }
	exactMatchesDerivative(t, "logistic", l, exact, 1.0)
}
