package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// buildPresetManagerScreen hosts the three destructive-or-IO preset
// operations: load from file, export to file, delete with confirmation.
func (m *Manager) buildPresetManagerScreen() fyne.CanvasObject {
	loadButton := widget.NewButton("Load preset file", m.showLoadDialog)
	exportButton := widget.NewButton("Export presets", m.showExportDialog)
	deleteButton := widget.NewButton("Delete presets", m.showDeletePresetsDialog)
	backButton := widget.NewButton("Back", func() {
		m.ShowScreen(ScreenMainMenu)
	})

	menu := container.NewVBox(
		widget.NewLabelWithStyle("Preset manager", fyne.TextAlignCenter,
			fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		loadButton,
		exportButton,
		deleteButton,
		backButton,
	)
	return container.NewCenter(menu)
}

func (m *Manager) showLoadDialog() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		_ = reader.Close()
		m.log.Info("PresetManager", "importing preset file", map[string]interface{}{
			"path": path,
		})
		if err := m.handlers.ImportPresets(path); err != nil {
			m.ShowError(err)
			return
		}
	}, m.window)
	fileOpen.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileOpen.Show()
}

func (m *Manager) showExportDialog() {
	folderOpen := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			m.ShowError(err)
			return
		}
		if list == nil {
			return // cancelled
		}
		dir := list.Path()
		m.promptExportName(dir)
	}, m.window)
	folderOpen.Show()
}

// promptExportName asks for the target file name once a directory has been
// chosen; the preset extension is appended by the store.
func (m *Manager) promptExportName(dir string) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("File name")
	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
	}
	dialog.ShowForm("Export presets", "Export", "Cancel", items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			path, err := m.handlers.ExportPresets(dir, nameEntry.Text)
			if err != nil {
				m.ShowError(err)
				return
			}
			m.log.Info("PresetManager", "exported presets", map[string]interface{}{
				"path": path,
			})
		}, m.window)
}

// showDeletePresetsDialog lists the stored presets; each delete goes
// through its own confirmation dialog before anything is removed.
func (m *Manager) showDeletePresetsDialog() {
	listBox := container.NewVBox()
	var refresh func()
	refresh = func() {
		listBox.RemoveAll()
		names, err := m.handlers.PresetNames()
		if err != nil {
			m.ShowError(err)
			return
		}
		if len(names) == 0 {
			listBox.Add(widget.NewLabel("No presets stored."))
		}
		for _, name := range names {
			name := name
			listBox.Add(widget.NewButton(fmt.Sprintf("Delete %s", name), func() {
				dialog.ShowConfirm("Confirmation",
					fmt.Sprintf("Delete preset %q?", name),
					func(confirmed bool) {
						if !confirmed {
							return
						}
						if err := m.handlers.DeletePreset(name); err != nil {
							m.ShowError(err)
							return
						}
						m.log.Info("PresetManager", "deleted preset", map[string]interface{}{
							"preset": name,
						})
						refresh()
					}, m.window)
			}))
		}
		listBox.Refresh()
	}
	refresh()

	content := container.NewVScroll(listBox)
	content.SetMinSize(fyne.NewSize(360, 300))
	dialog.NewCustom("Delete presets", "Done", content, m.window).Show()
}
