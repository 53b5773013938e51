// Package ode provides the core types for explicit Runge-Kutta
// integration of ordinary differential equations.
//
// The package defines the fundamental vocabulary shared by the solvers:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE right-hand sides (dy/dt = f(t, y))
//   - [Result]: discrete trajectory produced by one solve
//   - [Stats]: step and evaluation counters for one solve
//
// # Example
//
//	sys := models.NewFreeFall()
//	fixed := integrators.NewFixed(tableau.Heun())
//	res, _ := fixed.Solve(sys, ode.State{0}, 1.5, 0.025)
//
// # Thread Safety
//
// Solvers are pure functions of their inputs and keep no state between
// calls; independent solves may run on separate goroutines (see the
// sweep package).
package ode
