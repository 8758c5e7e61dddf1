package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsim/internal/physics"
)

func TestStandardizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Solar system", "solar_system"},
		{" I am a name ", "i_am_a_name"},
		{"ALREADY_STANDARD", "already_standard"},
		{"a  b", "a__b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StandardizeName(tt.in))
	}
}

func TestNewPresetRoundTrip(t *testing.T) {
	bodies := []physics.Body{
		{Name: "sun", Mass: 2e30},
		{Name: "earth", Mass: 6e24,
			Position: physics.Vec3{Y: 149.6e9},
			Velocity: physics.Vec3{X: 29800}},
	}
	p := NewPreset("My System", bodies)
	assert.Equal(t, "My System", p.Name)
	assert.Equal(t, "my_system", p.StandardizedName)
	require.Len(t, p.System, 2)

	got, err := p.Bodies()
	require.NoError(t, err)
	assert.Equal(t, bodies, got)
}

func TestPresetBodiesRejectsBadRecord(t *testing.T) {
	p := Preset{
		Name:             "bad",
		StandardizedName: "bad",
		System:           []BodyRecord{{Name: "ghost", Mass: 0}},
	}
	_, err := p.Bodies()
	assert.ErrorIs(t, err, physics.ErrNonPositiveMass)
}

func TestBuiltinSolarSystem(t *testing.T) {
	p := BuiltinSolarSystem()
	assert.Equal(t, "Solar system", p.Name)
	assert.Equal(t, "solar_system", p.StandardizedName)
	require.Len(t, p.System, 10)

	bodies, err := p.Bodies()
	require.NoError(t, err)
	assert.Equal(t, "sun", bodies[0].Name)
	for _, b := range bodies {
		assert.Positive(t, b.Mass, b.Name)
	}
}
