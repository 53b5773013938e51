package models

import (
	"math"

	"github.com/skalyan/odekit/internal/ode"
)

// Decay is the linear test equation y' = -lambda*y.
type Decay struct {
	Lambda float64
}

func NewDecay() *Decay {
	return &Decay{Lambda: 1.0}
}

func (d *Decay) Dim() int { return 1 }

func (d *Decay) Derive(t float64, y ode.State) ode.State {
	return ode.State{-d.Lambda * y[0]}
}

// Exact is y0 * exp(-lambda*t).
func (d *Decay) Exact(y0, t float64) float64 {
	return y0 * math.Exp(-d.Lambda*t)
}
