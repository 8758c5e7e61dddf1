package app

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"

	"solarsim/internal/gui"
	"solarsim/internal/integrators"
	"solarsim/internal/physics"
	"solarsim/internal/presets"
	"solarsim/internal/simulation"
)

var errRunActive = errors.New("a simulation is already running")

// handlers binds the view's operations to the store and the simulation
// runner.
func (a *Application) handlers() gui.Handlers {
	return gui.Handlers{
		RunSimulation: a.runSimulation,
		SaveSystem:    a.saveSystem,
		PresetNames:   a.store.Names,
		PresetBodies:  a.presetBodies,
		ImportPresets: a.store.ImportFile,
		ExportPresets: a.store.ExportFile,
		DeletePreset:  a.store.Remove,
		Quit:          a.fyneApp.Quit,
	}
}

func (a *Application) saveSystem(name string, bodies []physics.Body) error {
	return a.store.Save(presets.NewPreset(name, bodies))
}

func (a *Application) presetBodies(name string) ([]physics.Body, error) {
	p, err := a.store.Get(name)
	if err != nil {
		return nil, err
	}
	return p.Bodies()
}

// runSimulation validates the system, opens the progress dialog and steps
// the integrator on a worker goroutine. All UI updates funnel through
// fyne.Do; cancellation goes through the run context.
func (a *Application) runSimulation(sys simulation.System) {
	integ, err := integrators.New(a.cfg.Integrator)
	if err != nil {
		a.guiManager.ShowError(err)
		return
	}
	sim, err := simulation.NewSimulator(sys, integ)
	if err != nil {
		a.guiManager.ShowError(err)
		return
	}
	if !a.runState.Start(sim.RunID()) {
		a.guiManager.ShowError(errRunActive)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.cancelRun = cancel
	a.mu.Unlock()

	a.log.Info("Application", "running simulation", map[string]interface{}{
		"run_id":   sim.RunID(),
		"bodies":   len(sys.Bodies),
		"step_h":   sys.StepHours,
		"duration": sys.DurationHours,
	})

	a.guiManager.ShowProgress("Preparing data ...", func() {
		a.log.Info("Application", "cancelling simulation", map[string]interface{}{
			"run_id": sim.RunID(),
		})
		cancel()
	})

	go func() {
		defer func() {
			cancel()
			a.mu.Lock()
			a.cancelRun = nil
			a.mu.Unlock()
			a.runState.Finish()
		}()

		// The dialog only needs whole-percent resolution; pushing an
		// update per step through the event queue would swamp it on
		// long runs.
		lastShown := -1.0
		res, err := sim.Run(ctx, func(fraction float64) {
			a.runState.UpdateProgress(fraction)
			if fraction-lastShown < 0.01 && fraction < 1 {
				return
			}
			lastShown = fraction
			fyne.Do(func() {
				a.guiManager.SetProgress(fraction)
			})
		})

		fyne.Do(func() {
			a.guiManager.HideProgress()
			switch {
			case errors.Is(err, context.Canceled):
				a.log.Info("Application", "simulation cancelled", map[string]interface{}{
					"run_id": sim.RunID(),
				})
			case err != nil:
				a.guiManager.ShowError(err)
			default:
				a.log.Info("Application", "simulation finished", map[string]interface{}{
					"run_id": res.RunID,
					"steps":  len(res.Times) - 1,
				})
				a.guiManager.ShowResults(res)
			}
		})
	}()
}
