package physics

import (
	"errors"
	"fmt"
)

// Body is one simulated point mass.
type Body struct {
	Name     string
	Mass     float64
	Position Vec3
	Velocity Vec3
}

var ErrNonPositiveMass = errors.New("mass of a body must be strictly positive")

// NewBody validates the invariants a body must hold before it enters a
// system: strictly positive mass and a non-empty name.
func NewBody(name string, mass float64, position, velocity Vec3) (Body, error) {
	if mass <= 0 {
		return Body{}, fmt.Errorf("body %q: %w", name, ErrNonPositiveMass)
	}
	if name == "" {
		return Body{}, errors.New("body name must not be empty")
	}
	return Body{Name: name, Mass: mass, Position: position, Velocity: velocity}, nil
}

// Flatten appends the state of each body as a (px, py, pz, vx, vy, vz)
// 6-tuple and returns the masses split out alongside. The integrator works
// on this flat representation.
func Flatten(bodies []Body) (state []float64, masses []float64) {
	state = make([]float64, 0, len(bodies)*6)
	masses = make([]float64, 0, len(bodies))
	for _, b := range bodies {
		state = append(state,
			b.Position.X, b.Position.Y, b.Position.Z,
			b.Velocity.X, b.Velocity.Y, b.Velocity.Z)
		masses = append(masses, b.Mass)
	}
	return state, masses
}

// Unflatten rebuilds bodies from a flat state vector. Names are not carried
// in the state and stay empty.
func Unflatten(state, masses []float64) []Body {
	bodies := make([]Body, len(masses))
	for i := range masses {
		j := i * 6
		bodies[i] = Body{
			Mass:     masses[i],
			Position: Vec3{state[j], state[j+1], state[j+2]},
			Velocity: Vec3{state[j+3], state[j+4], state[j+5]},
		}
	}
	return bodies
}
