// Package models holds shared mutable state the GUI and the simulation
// worker both observe.
package models

import (
	"sync"
	"time"
)

// RunState is a snapshot of the simulation currently in flight.
type RunState struct {
	IsActive  bool
	RunID     string
	Progress  float64
	StartTime time.Time
}

// RunStateRepository tracks the active simulation run. The GUI reads it to
// drive the progress dialog and to refuse starting a second run while one is
// active.
type RunStateRepository struct {
	mu    sync.RWMutex
	state RunState
}

func NewRunStateRepository() *RunStateRepository {
	return &RunStateRepository{}
}

// Start marks a run as active. Returns false when another run is already in
// flight.
func (r *RunStateRepository) Start(runID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.IsActive {
		return false
	}
	r.state = RunState{
		IsActive:  true,
		RunID:     runID,
		StartTime: time.Now(),
	}
	return true
}

// UpdateProgress records the completed fraction of the active run.
func (r *RunStateRepository) UpdateProgress(fraction float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.IsActive {
		r.state.Progress = fraction
	}
}

// Finish clears the active run.
func (r *RunStateRepository) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = RunState{}
}

// Current returns a copy of the present state.
func (r *RunStateRepository) Current() RunState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// IsRunning reports whether a run is active.
func (r *RunStateRepository) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.IsActive
}
