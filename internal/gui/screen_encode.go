package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/gui/components"
	"solarsim/internal/physics"
	"solarsim/internal/simulation"
)

var (
	errEmptySave = errors.New("can't save an empty system")
	errEmptyRun  = errors.New("can't run an empty simulation")
)

// buildEncodeScreen is the custom-system editor: a dynamic list of body
// rows, the two time sliders and the run/save actions.
func (m *Manager) buildEncodeScreen() fyne.CanvasObject {
	bodyList := components.NewBodyList()
	sliders := components.NewTimeSliders()

	header := container.NewGridWithColumns(9,
		widget.NewLabelWithStyle("Name", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("x", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("y", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("z", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("vx", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("vy", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("vz", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Mass", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Relative to", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	)

	addButton := widget.NewButton("Add body", func() {
		m.log.Info("EncodeScreen", "adding a new body row", nil)
		bodyList.AddRow()
	})
	deleteButton := widget.NewButton("Delete bodies", func() {
		m.showDeleteBodiesDialog(bodyList)
	})
	resetButton := widget.NewButton("Reset", func() {
		bodyList.Reset()
	})
	saveButton := widget.NewButton("Save system", func() {
		m.saveEncodedSystem(bodyList)
	})
	runButton := widget.NewButton("Run simulation", func() {
		m.runEncodedSystem(bodyList, sliders)
	})
	runButton.Importance = widget.HighImportance
	backButton := widget.NewButton("Back", func() {
		m.ShowScreen(ScreenMainMenu)
	})

	actions := container.NewHBox(
		backButton,
		widget.NewSeparator(),
		addButton,
		deleteButton,
		resetButton,
		widget.NewSeparator(),
		saveButton,
		runButton,
	)

	rows := container.NewVScroll(bodyList.Container())

	return container.NewBorder(
		container.NewVBox(actions, widget.NewSeparator(), header),
		sliders.Container(),
		nil, nil,
		rows,
	)
}

// extract validates the rows, distinguishing invalid entries from an empty
// system so each gets its own error message.
func (m *Manager) extract(bodyList *components.BodyList, emptyErr error) ([]physics.Body, bool) {
	bodies, err := bodyList.Extract()
	if err != nil {
		m.ShowError(err)
		return nil, false
	}
	if len(bodies) == 0 {
		m.ShowError(emptyErr)
		return nil, false
	}
	return bodies, true
}

func (m *Manager) runEncodedSystem(bodyList *components.BodyList, sliders *components.TimeSliders) {
	bodies, ok := m.extract(bodyList, errEmptyRun)
	if !ok {
		return
	}
	sys := simulation.System{
		Bodies:        bodies,
		StepHours:     sliders.StepHours(),
		DurationHours: sliders.DurationHours(),
	}.Clamped()
	if m.handlers.RunSimulation != nil {
		m.handlers.RunSimulation(sys)
	}
}

// saveEncodedSystem opens the name prompt and forwards the validated system
// to the save handler.
func (m *Manager) saveEncodedSystem(bodyList *components.BodyList) {
	bodies, ok := m.extract(bodyList, errEmptySave)
	if !ok {
		return
	}
	m.promptSaveName(bodies, "")
}

// promptSaveName asks for the preset name and saves on confirmation. A
// rejected name (empty, or already taken) surfaces through the error dialog
// and reopens the prompt with the typed name still filled in, so it can be
// corrected without retyping.
func (m *Manager) promptSaveName(bodies []physics.Body, prefill string) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")
	nameEntry.SetText(prefill)
	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
	}
	dialog.ShowForm("Save custom system", "Save", "Cancel", items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			m.trySave(nameEntry.Text, bodies)
		}, m.window)
}

func (m *Manager) trySave(name string, bodies []physics.Body) {
	if err := m.handlers.SaveSystem(name, bodies); err != nil {
		m.ShowError(err)
		m.promptSaveName(bodies, name)
		return
	}
	m.log.Info("EncodeScreen", "saved preset", map[string]interface{}{
		"preset": name,
	})
}

// showDeleteBodiesDialog lists every row with a delete action, mirroring
// the confirm-before-destroy flow of the preset manager.
func (m *Manager) showDeleteBodiesDialog(bodyList *components.BodyList) {
	listBox := container.NewVBox()
	var d *dialog.CustomDialog

	var refresh func()
	refresh = func() {
		listBox.RemoveAll()
		for _, row := range bodyList.Rows() {
			row := row
			listBox.Add(widget.NewButton(fmt.Sprintf("Delete %s", row.Name()), func() {
				if err := bodyList.RemoveRow(row); err != nil {
					m.ShowError(err)
					return
				}
				m.log.Info("EncodeScreen", "removed body row", map[string]interface{}{
					"body": row.Name(),
				})
				refresh()
			}))
		}
		listBox.Refresh()
	}
	refresh()

	content := container.NewVScroll(listBox)
	content.SetMinSize(fyne.NewSize(360, 300))
	d = dialog.NewCustom("Delete bodies", "Done", content, m.window)
	d.Show()
}
