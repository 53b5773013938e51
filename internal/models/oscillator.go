package models

import (
	"math"

	"github.com/skalyan/odekit/internal/ode"
)

// Oscillator is the undamped harmonic oscillator
// x'' = -omega^2 * x, written as the first-order pair (x, v).
type Oscillator struct {
	Omega float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{Omega: 1.0}
}

func (o *Oscillator) Dim() int { return 2 }

func (o *Oscillator) Derive(t float64, y ode.State) ode.State {
	return ode.State{y[1], -o.Omega * o.Omega * y[0]}
}

func (o *Oscillator) Energy(y ode.State) float64 {
	return 0.5 * (y[1]*y[1] + o.Omega*o.Omega*y[0]*y[0])
}

// Exact is the position at time t for initial state (x0, 0).
func (o *Oscillator) Exact(x0, t float64) float64 {
	return x0 * math.Cos(o.Omega*t)
}
