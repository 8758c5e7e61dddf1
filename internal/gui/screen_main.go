package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func (m *Manager) buildMainMenu() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("SOLAR", fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("N-body solar system simulator",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	custom := widget.NewButton("Encode a custom system", func() {
		m.ShowScreen(ScreenEncode)
	})
	custom.Importance = widget.HighImportance
	presetRun := widget.NewButton("Run a preset", func() {
		m.ShowScreen(ScreenPresets)
	})
	manage := widget.NewButton("Manage presets", func() {
		m.ShowScreen(ScreenPresetManager)
	})
	quit := widget.NewButton("Quit", func() {
		if m.handlers.Quit != nil {
			m.handlers.Quit()
		}
	})

	menu := container.NewVBox(
		title,
		subtitle,
		widget.NewSeparator(),
		custom,
		presetRun,
		manage,
		quit,
	)
	return container.NewCenter(menu)
}
