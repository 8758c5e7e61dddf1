package physics

// G is the gravitational constant in m^3 kg^-1 s^-2.
const G = 6.6743015e-11

// Derivative computes the time derivative of a flat n-body state under
// Newtonian gravitation: d(position)/dt is the velocity, d(velocity)/dt the
// acceleration from every other body. Coincident bodies are rejected before
// a simulation starts, so distances here are never zero.
func Derivative(t float64, state, masses []float64) []float64 {
	_ = t // gravity is time-independent; the signature matches the integrator
	n := len(masses)
	next := make([]float64, len(state))

	for i := 0; i < n; i++ {
		j := i * 6
		next[j] = state[j+3]
		next[j+1] = state[j+4]
		next[j+2] = state[j+5]

		pi := Vec3{state[j], state[j+1], state[j+2]}
		var acc Vec3
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			m := k * 6
			pk := Vec3{state[m], state[m+1], state[m+2]}
			r := pi.Dist(pk)
			acc = acc.Add(pk.Sub(pi).Scale(G * masses[k] / (r * r * r)))
		}
		next[j+3] = acc.X
		next[j+4] = acc.Y
		next[j+5] = acc.Z
	}
	return next
}

// KineticEnergy is the sum of m*v^2/2 over all bodies.
func KineticEnergy(bodies []Body) float64 {
	var t float64
	for _, b := range bodies {
		v := b.Velocity.Norm()
		t += 0.5 * b.Mass * v * v
	}
	return t
}

// PotentialEnergy is the pairwise gravitational potential, always negative
// for a set of separated masses.
func PotentialEnergy(bodies []Body) float64 {
	var u float64
	for i, b := range bodies {
		for _, other := range bodies[i+1:] {
			u += G * b.Mass * other.Mass / b.Position.Dist(other.Position)
		}
	}
	return -u
}

// Hamiltonian is the total mechanical energy of the system. It is conserved
// by the exact dynamics, so its drift over a run measures integration error.
func Hamiltonian(bodies []Body) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies)
}
