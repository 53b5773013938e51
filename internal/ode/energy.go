package ode

import "math"

// EnergyDrift reports the relative change of a conserved energy between
// the first and last trajectory samples. The second return is false
// when the system exposes no energy or the initial energy is zero.
func EnergyDrift(sys System, r *Result) (float64, bool) {
	h, ok := sys.(Hamiltonian)
	if !ok || len(r.States) == 0 {
		return 0, false
	}

	initial := h.Energy(r.States[0])
	if initial == 0 {
		return 0, false
	}

	final := h.Energy(r.States[len(r.States)-1])
	return math.Abs(final-initial) / math.Abs(initial), true
}
