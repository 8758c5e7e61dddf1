// Package integrators provides fixed-step numerical integrators over flat
// state vectors.
package integrators

import "fmt"

// Derivative evaluates the time derivative of a state at time t.
type Derivative func(t float64, state []float64) []float64

// Integrator advances a state vector by one time step.
type Integrator interface {
	Step(f Derivative, state []float64, t, dt float64) []float64
	Name() string
}

// New returns the integrator registered under name.
func New(name string) (Integrator, error) {
	switch name {
	case "rk4", "":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}
