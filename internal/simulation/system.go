package simulation

import "solarsim/internal/physics"

// Slider bounds for the time parameters, in hours. The duration slider is
// presented in days (30 to 1095) and stored in hours.
const (
	StepMinHours     = 1
	StepMaxHours     = 8760
	DurationMinHours = 720
	DurationMaxHours = 26280
)

// System is an in-memory collection of bodies plus the two time parameters,
// assembled from the editor or a preset and not yet persisted.
type System struct {
	Bodies        []physics.Body
	StepHours     int
	DurationHours int
}

// Clamped returns a copy of the system with both time parameters forced into
// their slider ranges and the step capped at the duration, mirroring the
// coupling between the two sliders.
func (s System) Clamped() System {
	out := s
	out.StepHours = clamp(out.StepHours, StepMinHours, StepMaxHours)
	out.DurationHours = clamp(out.DurationHours, DurationMinHours, DurationMaxHours)
	if out.StepHours > out.DurationHours {
		out.StepHours = out.DurationHours
	}
	return out
}

// Steps is the number of integration steps a run of this system performs.
func (s System) Steps() int {
	if s.StepHours <= 0 {
		return 0
	}
	return s.DurationHours / s.StepHours
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
