package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBodies() []Body {
	return []Body{
		{Name: "a", Mass: 1e24, Position: Vec3{0, 0, 0}, Velocity: Vec3{0, 0, 0}},
		{Name: "b", Mass: 1e24, Position: Vec3{1e9, 0, 0}, Velocity: Vec3{0, 100, 0}},
	}
}

func TestDerivativePositionPartIsVelocity(t *testing.T) {
	state, masses := Flatten(twoBodies())
	d := Derivative(0, state, masses)
	require.Len(t, d, len(state))

	// d(position)/dt of body b must be its velocity.
	assert.Equal(t, 0.0, d[6])
	assert.Equal(t, 100.0, d[7])
	assert.Equal(t, 0.0, d[8])
}

func TestDerivativeEqualMassesPullSymmetrically(t *testing.T) {
	state, masses := Flatten(twoBodies())
	d := Derivative(0, state, masses)

	// Accelerations along x are equal and opposite for equal masses.
	assert.InEpsilon(t, -d[9], d[3], 1e-12)
	assert.Positive(t, d[3])
	assert.Negative(t, d[9])

	// Magnitude matches G*m/r^2.
	want := G * 1e24 / (1e9 * 1e9)
	assert.InEpsilon(t, want, d[3], 1e-12)
}

func TestKineticEnergy(t *testing.T) {
	bodies := []Body{
		{Mass: 2, Velocity: Vec3{3, 0, 4}},
	}
	// |v| = 5, so T = 0.5*2*25.
	assert.InDelta(t, 25.0, KineticEnergy(bodies), 1e-12)
}

func TestPotentialEnergyIsNegativeAndPairwise(t *testing.T) {
	bodies := twoBodies()
	u := PotentialEnergy(bodies)
	assert.Negative(t, u)
	want := -G * 1e24 * 1e24 / 1e9
	assert.InEpsilon(t, want, u, 1e-12)
}

func TestHamiltonianIsSumOfEnergies(t *testing.T) {
	bodies := twoBodies()
	h := Hamiltonian(bodies)
	assert.InDelta(t, KineticEnergy(bodies)+PotentialEnergy(bodies), h, math.Abs(h)*1e-12)
}
