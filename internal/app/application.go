// Package app wires the GUI, the preset store and the simulation runner
// into one application.
package app

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"solarsim/internal/config"
	"solarsim/internal/gui"
	"solarsim/internal/logger"
	"solarsim/internal/models"
	"solarsim/internal/presets"
)

const (
	AppName    = "SOLAR"
	AppID      = "com.solarsim.solar"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	cfg        *config.Config
	log        logger.Logger
	store      *presets.Store
	guiManager *gui.Manager
	runState   *models.RunStateRepository

	mu        sync.Mutex
	cancelRun context.CancelFunc
}

func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		dataDir, err = presets.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
	}
	store, err := presets.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open preset store: %w", err)
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"data_dir":   dataDir,
		"integrator": cfg.Integrator,
	})

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		cfg:        cfg,
		log:        log,
		store:      store,
		guiManager: gui.NewManager(window, log),
		runState:   models.NewRunStateRepository(),
	}
	application.guiManager.SetHandlers(application.handlers())

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the main menu and enters the Fyne event loop. Blocks until the
// window closes.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})

	a.guiManager.ShowScreen(gui.ScreenMainMenu)
	a.window.Show()
	a.fyneApp.Run()
	return nil
}

// Shutdown cancels any simulation still in flight.
func (a *Application) Shutdown() {
	a.mu.Lock()
	cancel := a.cancelRun
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	a.log.Info("Application", "shutdown complete", nil)
}
