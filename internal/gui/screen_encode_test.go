package gui

import (
	"io"
	"os"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsim/internal/logger"
	"solarsim/internal/physics"
	"solarsim/internal/presets"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

func newTestManager() (*Manager, fyne.Window) {
	w := test.NewWindow(widget.NewLabel(""))
	m := NewManager(w, logger.NewZerolog(io.Discard, zerolog.Disabled))
	return m, w
}

// findEntry walks a dialog's widget tree down to the first text entry.
func findEntry(o fyne.CanvasObject) *widget.Entry {
	switch v := o.(type) {
	case *widget.Entry:
		return v
	case *widget.PopUp:
		return findEntry(v.Content)
	case *widget.Form:
		for _, item := range v.Items {
			if e := findEntry(item.Widget); e != nil {
				return e
			}
		}
	case *container.Scroll:
		return findEntry(v.Content)
	case *fyne.Container:
		for _, child := range v.Objects {
			if e := findEntry(child); e != nil {
				return e
			}
		}
	}
	return nil
}

func TestTrySaveReopensPromptWithRejectedName(t *testing.T) {
	m, w := newTestManager()
	defer w.Close()

	var saved []string
	m.SetHandlers(Handlers{
		SaveSystem: func(name string, bodies []physics.Body) error {
			saved = append(saved, name)
			return presets.ErrDuplicateName
		},
	})

	m.trySave("Taken", nil)

	require.Equal(t, []string{"Taken"}, saved)
	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top, "the name prompt must come back after a rejected save")
	entry := findEntry(top)
	require.NotNil(t, entry)
	assert.Equal(t, "Taken", entry.Text, "the rejected name must survive into the reopened prompt")
}

func TestTrySaveSuccessLeavesNoDialog(t *testing.T) {
	m, w := newTestManager()
	defer w.Close()

	var saved []string
	m.SetHandlers(Handlers{
		SaveSystem: func(name string, bodies []physics.Body) error {
			saved = append(saved, name)
			return nil
		},
	})

	m.trySave("Fresh", nil)

	assert.Equal(t, []string{"Fresh"}, saved)
	assert.Nil(t, w.Canvas().Overlays().Top())
}
