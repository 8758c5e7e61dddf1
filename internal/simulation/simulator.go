// Package simulation runs N-body systems through a fixed-step integrator and
// records trajectories plus an energy-conservation diagnostic.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"solarsim/internal/integrators"
	"solarsim/internal/physics"
)

const secondsPerHour = 3600.0

var (
	ErrEmptySystem      = errors.New("system has no bodies")
	ErrCoincidentBodies = errors.New("all bodies must have distinct positions")
	ErrInvalidDuration  = errors.New("duration must be strictly positive")
	ErrInvalidStep      = errors.New("step must be in the range ]0, duration]")
	ErrAlreadyRun       = errors.New("simulator has already produced a result")
)

// Trajectory is the sampled path of one body over a run.
type Trajectory struct {
	Name    string
	X, Y, Z []float64
}

// Result holds everything a run produces: per-body trajectories, the sample
// times in hours, and the total-energy series with its per-step drift.
type Result struct {
	RunID        string
	Times        []float64
	Trajectories []Trajectory
	Energy       []float64
	Drift        []float64
}

// Simulator owns one validated system and produces at most one Result.
type Simulator struct {
	system     System
	integrator integrators.Integrator
	runID      string
	done       bool
}

// NewSimulator validates the system up front so that a run cannot fail
// mid-flight on bad input: at least one body, pairwise distinct positions,
// positive duration and a step within ]0, duration].
func NewSimulator(sys System, integ integrators.Integrator) (*Simulator, error) {
	if len(sys.Bodies) == 0 {
		return nil, ErrEmptySystem
	}
	for i, b := range sys.Bodies {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("body %q: %w", b.Name, physics.ErrNonPositiveMass)
		}
		for _, other := range sys.Bodies[i+1:] {
			if b.Position == other.Position {
				return nil, fmt.Errorf("%w: %q and %q", ErrCoincidentBodies, b.Name, other.Name)
			}
		}
	}
	if sys.DurationHours <= 0 {
		return nil, ErrInvalidDuration
	}
	if sys.StepHours <= 0 || sys.StepHours > sys.DurationHours {
		return nil, ErrInvalidStep
	}
	if integ == nil {
		integ = integrators.NewRK4()
	}
	return &Simulator{
		system:     sys,
		integrator: integ,
		runID:      uuid.NewString(),
	}, nil
}

// RunID identifies this run in logs and exported results.
func (s *Simulator) RunID() string { return s.runID }

// Run integrates the system from t=0 to the configured duration. onProgress,
// when non-nil, receives the completed fraction after every step.
// Cancellation goes through ctx and is checked once per step; a cancelled
// run returns ctx.Err() and no partial result.
func (s *Simulator) Run(ctx context.Context, onProgress func(fraction float64)) (*Result, error) {
	if s.done {
		return nil, ErrAlreadyRun
	}
	s.done = true

	state, masses := physics.Flatten(s.system.Bodies)
	deriv := func(t float64, st []float64) []float64 {
		return physics.Derivative(t, st, masses)
	}

	steps := s.system.Steps()
	dt := float64(s.system.StepHours) * secondsPerHour

	result := &Result{
		RunID:        s.runID,
		Times:        make([]float64, 0, steps+1),
		Trajectories: make([]Trajectory, len(s.system.Bodies)),
		Energy:       make([]float64, 0, steps+1),
		Drift:        make([]float64, 0, steps+1),
	}
	for i, b := range s.system.Bodies {
		result.Trajectories[i].Name = b.Name
	}

	record := func(hours float64, st []float64) {
		bodies := physics.Unflatten(st, masses)
		for i, b := range bodies {
			result.Trajectories[i].X = append(result.Trajectories[i].X, b.Position.X)
			result.Trajectories[i].Y = append(result.Trajectories[i].Y, b.Position.Y)
			result.Trajectories[i].Z = append(result.Trajectories[i].Z, b.Position.Z)
		}
		h := physics.Hamiltonian(bodies)
		result.Times = append(result.Times, hours)
		if n := len(result.Energy); n > 0 {
			result.Drift = append(result.Drift, h-result.Energy[n-1])
		} else {
			result.Drift = append(result.Drift, 0)
		}
		result.Energy = append(result.Energy, h)
	}

	record(0, state)
	t := 0.0
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		state = s.integrator.Step(deriv, state, t, dt)
		t += dt
		record(float64(i*s.system.StepHours), state)
		if onProgress != nil {
			onProgress(float64(i) / float64(steps))
		}
	}
	return result, nil
}
