package models

import (
	"math"

	"github.com/skalyan/odekit/internal/ode"
)

// FreeFall models a falling body with quadratic air drag,
// v' = g - alpha*v^2, where alpha is derived from the drag coefficient,
// air density, cross-section radius and mass.
type FreeFall struct {
	Drag    float64 // drag coefficient k
	Density float64 // air density rho
	Radius  float64
	Mass    float64
	Gravity float64
}

func NewFreeFall() *FreeFall {
	return &FreeFall{
		Drag:    0.235,
		Density: 1.22,
		Radius:  1.0,
		Mass:    1.0,
		Gravity: 9.81,
	}
}

// Alpha is the lumped drag parameter k*rho*pi*R^2 / (4*m).
func (f *FreeFall) Alpha() float64 {
	return f.Drag * f.Density * math.Pi * f.Radius * f.Radius / (4 * f.Mass)
}

func (f *FreeFall) Dim() int { return 1 }

func (f *FreeFall) Derive(t float64, y ode.State) ode.State {
	v := y[0]
	return ode.State{f.Gravity - f.Alpha()*v*v}
}

// Exact is the closed-form velocity for a body released from rest:
// v(t) = vT * tanh(g*t / vT) with terminal velocity vT = sqrt(g/alpha).
func (f *FreeFall) Exact(t float64) float64 {
	vT := math.Sqrt(f.Gravity / f.Alpha())
	return vT * math.Tanh(f.Gravity*t/vT)
}
