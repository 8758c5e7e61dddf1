package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solarsim/internal/physics"
)

func TestClamped(t *testing.T) {
	tests := []struct {
		name         string
		step         int
		duration     int
		wantStep     int
		wantDuration int
	}{
		{"in range", 10, 7200, 10, 7200},
		{"step below minimum", 0, 7200, StepMinHours, 7200},
		{"step above maximum", 9000, 26280, StepMaxHours, 26280},
		{"duration below minimum", 10, 100, 10, DurationMinHours},
		{"duration above maximum", 10, 30000, 10, DurationMaxHours},
		{"step capped at duration", 8760, 720, 720, 720},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := System{StepHours: tt.step, DurationHours: tt.duration}.Clamped()
			assert.Equal(t, tt.wantStep, sys.StepHours)
			assert.Equal(t, tt.wantDuration, sys.DurationHours)
		})
	}
}

func TestClampedKeepsBodies(t *testing.T) {
	sys := System{
		Bodies:        []physics.Body{{Name: "a", Mass: 1}},
		StepHours:     10,
		DurationHours: 7200,
	}
	assert.Equal(t, sys.Bodies, sys.Clamped().Bodies)
}

func TestSteps(t *testing.T) {
	assert.Equal(t, 720, System{StepHours: 10, DurationHours: 7200}.Steps())
	assert.Equal(t, 1, System{StepHours: 720, DurationHours: 720}.Steps())
	// truncating division, partial trailing steps are dropped
	assert.Equal(t, 2, System{StepHours: 300, DurationHours: 720}.Steps())
	assert.Equal(t, 0, System{StepHours: 0, DurationHours: 720}.Steps())
}
