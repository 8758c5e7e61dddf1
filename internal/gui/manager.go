// Package gui owns the window content: the four screens of the application
// and the dialogs they open. Anything beyond pure view behaviour is
// delegated to handler funcs injected by the app layer.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/logger"
	"solarsim/internal/physics"
	"solarsim/internal/simulation"
)

// Screen names, used for navigation.
const (
	ScreenMainMenu      = "mainmenu"
	ScreenEncode        = "encodemenu"
	ScreenPresets       = "presetmenu"
	ScreenPresetManager = "preset_manager"
)

// Handlers are the operations the view forwards to the app layer.
type Handlers struct {
	// RunSimulation starts a run for an assembled system. The app layer
	// drives the progress dialog through the manager while it runs.
	RunSimulation func(sys simulation.System)
	// SaveSystem persists the encoded bodies under a preset name.
	SaveSystem func(name string, bodies []physics.Body) error
	// PresetNames lists the stored presets.
	PresetNames func() ([]string, error)
	// PresetBodies resolves a stored preset to its bodies.
	PresetBodies func(name string) ([]physics.Body, error)
	// ImportPresets merges an external preset file into the store.
	ImportPresets func(path string) error
	// ExportPresets writes the store to dir/name and returns the final path.
	ExportPresets func(dir, name string) (string, error)
	// DeletePreset removes one stored preset.
	DeletePreset func(name string) error
	// Quit closes the application.
	Quit func()
}

// Manager builds the screens and switches the window between them.
type Manager struct {
	window   fyne.Window
	log      logger.Logger
	handlers Handlers

	progress    *dialog.CustomDialog
	progressBar *widget.ProgressBar
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	return &Manager{
		window: window,
		log:    log,
	}
}

// SetHandlers wires the app-layer operations. Must be called before any
// screen is shown.
func (m *Manager) SetHandlers(h Handlers) {
	m.handlers = h
}

// ShowScreen replaces the window content with the named screen. Screens are
// rebuilt on entry so lists that depend on the store are always current.
func (m *Manager) ShowScreen(name string) {
	m.log.Debug("GUIManager", "switching screen", map[string]interface{}{
		"screen": name,
	})

	var content fyne.CanvasObject
	switch name {
	case ScreenEncode:
		content = m.buildEncodeScreen()
	case ScreenPresets:
		content = m.buildPresetScreen()
	case ScreenPresetManager:
		content = m.buildPresetManagerScreen()
	default:
		content = m.buildMainMenu()
	}
	m.window.SetContent(content)
}

// ShowError surfaces an unexpected failure with a single acknowledgement
// action.
func (m *Manager) ShowError(err error) {
	m.log.Error("GUIManager", err, nil)
	dialog.ShowError(err, m.window)
}

// ShowProgress opens the modal progress dialog for a running simulation.
// The cancel button invokes onCancel exactly once.
func (m *Manager) ShowProgress(title string, onCancel func()) {
	m.progressBar = widget.NewProgressBar()
	cancelled := false
	cancel := widget.NewButton("Cancel", func() {
		if !cancelled {
			cancelled = true
			onCancel()
		}
	})
	content := container.NewVBox(m.progressBar, cancel)
	m.progress = dialog.NewCustomWithoutButtons(title, content, m.window)
	m.progress.Resize(fyne.NewSize(420, 140))
	m.progress.Show()
}

// SetProgress updates the progress bar. Callers must already be on the UI
// thread (fyne.Do).
func (m *Manager) SetProgress(fraction float64) {
	if m.progressBar != nil {
		m.progressBar.SetValue(fraction)
	}
}

// HideProgress dismisses the progress dialog.
func (m *Manager) HideProgress() {
	if m.progress != nil {
		m.progress.Hide()
		m.progress = nil
		m.progressBar = nil
	}
}

// ShowResults replaces the window content with the results screen for a
// finished run.
func (m *Manager) ShowResults(res *simulation.Result) {
	m.window.SetContent(m.buildResultsScreen(res))
}
