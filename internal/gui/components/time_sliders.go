package components

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/simulation"
)

const hoursPerDay = 24

// TimeSliders is the coupled pair of sliders for the two scalar simulation
// parameters: step size in hours and total duration in days. Moving one
// slider never lets the step exceed the duration.
type TimeSliders struct {
	step     *widget.Slider
	duration *widget.Slider

	stepLabel     *widget.Label
	durationLabel *widget.Label

	container *fyne.Container
	updating  bool
}

func NewTimeSliders() *TimeSliders {
	ts := &TimeSliders{}

	ts.step = widget.NewSlider(simulation.StepMinHours, simulation.StepMaxHours)
	ts.step.Step = 1
	ts.duration = widget.NewSlider(
		simulation.DurationMinHours/hoursPerDay,
		simulation.DurationMaxHours/hoursPerDay)
	ts.duration.Step = 1

	ts.stepLabel = widget.NewLabel("")
	ts.durationLabel = widget.NewLabel("")

	ts.step.OnChanged = ts.onStepMoved
	ts.duration.OnChanged = ts.onDurationMoved

	ts.step.SetValue(10)
	ts.duration.SetValue(300)

	ts.container = container.NewVBox(
		ts.stepLabel, ts.step,
		ts.durationLabel, ts.duration,
	)
	return ts
}

func (ts *TimeSliders) Container() fyne.CanvasObject {
	return ts.container
}

// StepHours returns the selected step size in hours.
func (ts *TimeSliders) StepHours() int {
	return int(ts.step.Value)
}

// DurationHours returns the selected total duration in hours.
func (ts *TimeSliders) DurationHours() int {
	return int(ts.duration.Value) * hoursPerDay
}

// onStepMoved caps the step at the current duration.
func (ts *TimeSliders) onStepMoved(value float64) {
	if ts.updating {
		return
	}
	ts.updating = true
	if value > float64(ts.DurationHours()) {
		ts.step.SetValue(float64(ts.DurationHours()))
	}
	ts.refreshLabels()
	ts.updating = false
}

// onDurationMoved keeps the duration at or above the current step.
func (ts *TimeSliders) onDurationMoved(value float64) {
	if ts.updating {
		return
	}
	ts.updating = true
	minDays := math.Ceil(ts.step.Value / hoursPerDay)
	if value < minDays {
		ts.duration.SetValue(minDays)
	}
	ts.refreshLabels()
	ts.updating = false
}

func (ts *TimeSliders) refreshLabels() {
	ts.stepLabel.SetText(fmt.Sprintf("Simulation step: %d h", ts.StepHours()))
	ts.durationLabel.SetText(fmt.Sprintf("Simulation duration: %d days", int(ts.duration.Value)))
}
