package models

import (
	"math"

	"github.com/skalyan/odekit/internal/ode"
)

// Logistic is the logistic growth equation y' = r*y*(1 - y/K).
type Logistic struct {
	Rate     float64
	Capacity float64
}

func NewLogistic() *Logistic {
	return &Logistic{Rate: 1.0, Capacity: 1.0}
}

func (l *Logistic) Dim() int { return 1 }

func (l *Logistic) Derive(t float64, y ode.State) ode.State {
	return ode.State{l.Rate * y[0] * (1 - y[0]/l.Capacity)}
}

// Exact is the logistic curve through y(0) = y0.
func (l *Logistic) Exact(y0, t float64) float64 {
	if y0 == 0 {
		return 0
	}
	return l.Capacity / (1 + (l.Capacity/y0-1)*math.Exp(-l.Rate*t))
}
