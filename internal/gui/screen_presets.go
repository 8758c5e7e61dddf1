package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/gui/components"
	"solarsim/internal/simulation"
)

// buildPresetScreen offers one run button per stored preset, sharing the
// same slider pair as the editor. The list reflects the store at the moment
// the screen is entered.
func (m *Manager) buildPresetScreen() fyne.CanvasObject {
	sliders := components.NewTimeSliders()

	buttons := container.NewVBox()
	names, err := m.handlers.PresetNames()
	if err != nil {
		m.ShowError(err)
	}
	for _, name := range names {
		name := name
		btn := widget.NewButton(fmt.Sprintf("Run %s", name), func() {
			m.runPreset(name, sliders)
		})
		buttons.Add(btn)
	}
	if len(names) == 0 {
		buttons.Add(widget.NewLabel("No presets stored yet."))
	}

	backButton := widget.NewButton("Back", func() {
		m.ShowScreen(ScreenMainMenu)
	})

	return container.NewBorder(
		container.NewVBox(backButton, widget.NewSeparator()),
		sliders.Container(),
		nil, nil,
		container.NewVScroll(container.NewCenter(buttons)),
	)
}

func (m *Manager) runPreset(name string, sliders *components.TimeSliders) {
	bodies, err := m.handlers.PresetBodies(name)
	if err != nil {
		m.ShowError(err)
		return
	}
	m.log.Info("PresetScreen", "running preset", map[string]interface{}{
		"preset": name,
	})
	sys := simulation.System{
		Bodies:        bodies,
		StepHours:     sliders.StepHours(),
		DurationHours: sliders.DurationHours(),
	}.Clamped()
	if m.handlers.RunSimulation != nil {
		m.handlers.RunSimulation(sys)
	}
}
