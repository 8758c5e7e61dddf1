package integrators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harmonic is the oscillator x'' = -x; its exact solution from (1, 0) is
// (cos t, -sin t).
func harmonic(t float64, state []float64) []float64 {
	return []float64{state[1], -state[0]}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	state := []float64{1, 0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		state = integ.Step(harmonic, state, float64(i)*dt, dt)
	}

	elapsed := float64(steps) * dt
	assert.InDelta(t, math.Cos(elapsed), state[0], 1e-6)
	assert.InDelta(t, -math.Sin(elapsed), state[1], 1e-6)
}

func TestEulerConvergesWithSmallerSteps(t *testing.T) {
	errAt := func(dt float64) float64 {
		integ := NewEuler()
		state := []float64{1, 0}
		steps := int(1.0 / dt)
		for i := 0; i < steps; i++ {
			state = integ.Step(harmonic, state, float64(i)*dt, dt)
		}
		return math.Abs(state[0] - math.Cos(1.0))
	}

	coarse := errAt(0.01)
	fine := errAt(0.001)
	assert.Less(t, fine, coarse)
}

func TestRK4MuchMoreAccurateThanEuler(t *testing.T) {
	run := func(integ Integrator) []float64 {
		state := []float64{1, 0}
		dt := 0.05
		for i := 0; i < 200; i++ {
			state = integ.Step(harmonic, state, float64(i)*dt, dt)
		}
		return state
	}

	exact := math.Cos(10.0)
	rk4Err := math.Abs(run(NewRK4())[0] - exact)
	eulerErr := math.Abs(run(NewEuler())[0] - exact)
	assert.Less(t, rk4Err, eulerErr/100)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"rk4", "rk4", false},
		{"", "rk4", false},
		{"euler", "euler", false},
		{"leapfrog", "", true},
	}
	for _, tt := range tests {
		integ, err := New(tt.name)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, integ.Name())
	}
}
