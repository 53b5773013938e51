package sweep

import (
	"context"
	"testing"

	"github.com/skalyan/odekit/internal/integrators"
	"github.com/skalyan/odekit/internal/models"
	"github.com/skalyan/odekit/internal/ode"
	"github.com/skalyan/odekit/internal/tableau"
)

func baseControl() integrators.Control {
	return integrators.Control{
		H0:         0.025,
		Tol:        1e-2,
		Shrink:     0.9,
		Growth:     1.1,
		MaxRejects: 10000,
		Validate:   true,
	}
}

func TestSweep_Tolerances(t *testing.T) {
	sys := models.NewFreeFall()
	sw := New(sys, ode.State{0}, 1.5)

	tols := []float64{1e-1, 1e-2, 1e-3}
	results, err := sw.Tolerances(context.Background(), baseControl(), tols)
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != len(tols) {
		t.Fatalf("expected %d results, got %d", len(tols), len(results))
	}

	for i, res := range results {
		final := res.Times[len(res.Times)-1]
		if final != 1.5 {
			t.Errorf("tol %g: final time %.17f != horizon", tols[i], final)
		}
	}

	// A tighter tolerance can only demand more accepted steps.
	if results[2].Samples() < results[0].Samples() {
		t.Errorf("expected tol %g to take at least as many steps as tol %g (%d vs %d)",
			tols[2], tols[0], results[2].Samples(), results[0].Samples())
	}
}

func TestSweep_StepSizes(t *testing.T) {
	sys := models.NewDecay()
	sw := New(sys, ode.State{1}, 1.0)
	fixed := integrators.NewFixed(tableau.Heun())

	steps := []float64{0.1, 0.05, 0.025}
	results, err := sw.StepSizes(context.Background(), fixed, steps)
	if err != nil {
		t.Fatal(err)
	}

	for i, res := range results {
		want := int(1.0/steps[i]) + 1
		if res.Samples() < want {
			t.Errorf("h=%g: expected at least %d samples, got %d", steps[i], want, res.Samples())
		}
	}
}

func TestSweep_Canceled(t *testing.T) {
	sys := models.NewFreeFall()
	sw := New(sys, ode.State{0}, 1.5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sw.Tolerances(ctx, baseControl(), []float64{1e-2}); err == nil {
		t.Error("expected error from canceled context")
	}
}
