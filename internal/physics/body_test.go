package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodyRejectsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{0, -1, -1e30} {
		_, err := NewBody("x", mass, Vec3{}, Vec3{})
		assert.ErrorIs(t, err, ErrNonPositiveMass)
	}
}

func TestNewBodyRejectsEmptyName(t *testing.T) {
	_, err := NewBody("", 1, Vec3{}, Vec3{})
	assert.Error(t, err)
}

func TestFlattenRoundTrip(t *testing.T) {
	bodies := []Body{
		{Name: "a", Mass: 2, Position: Vec3{1, 2, 3}, Velocity: Vec3{4, 5, 6}},
		{Name: "b", Mass: 7, Position: Vec3{-1, -2, -3}, Velocity: Vec3{0, 0, 9}},
	}

	state, masses := Flatten(bodies)
	require.Len(t, state, 12)
	require.Equal(t, []float64{2, 7}, masses)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, -1, -2, -3, 0, 0, 9}, state)

	back := Unflatten(state, masses)
	require.Len(t, back, 2)
	for i := range back {
		assert.Equal(t, bodies[i].Mass, back[i].Mass)
		assert.Equal(t, bodies[i].Position, back[i].Position)
		assert.Equal(t, bodies[i].Velocity, back[i].Velocity)
	}
}
