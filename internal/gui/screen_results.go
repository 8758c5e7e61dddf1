package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"solarsim/internal/simulation"
	"solarsim/internal/viz"
)

const plotSize = 560

// buildResultsScreen renders the finished run: the trajectories projected
// onto the XY and XZ planes, a per-body legend and the energy-drift
// summary.
func (m *Manager) buildResultsScreen(res *simulation.Result) fyne.CanvasObject {
	xy := canvas.NewImageFromImage(viz.Plot(res, viz.PlaneXY, plotSize, plotSize))
	xy.FillMode = canvas.ImageFillContain
	xy.SetMinSize(fyne.NewSize(plotSize, plotSize))
	xz := canvas.NewImageFromImage(viz.Plot(res, viz.PlaneXZ, plotSize, plotSize))
	xz.FillMode = canvas.ImageFillContain
	xz.SetMinSize(fyne.NewSize(plotSize, plotSize))

	plots := container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabelWithStyle("x / y", fyne.TextAlignCenter, fyne.TextStyle{}), xy),
		container.NewVBox(widget.NewLabelWithStyle("x / z", fyne.TextAlignCenter, fyne.TextStyle{}), xz),
	)

	legend := container.NewVBox(widget.NewLabelWithStyle("Bodies", fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true}))
	for i, tr := range res.Trajectories {
		swatch := canvas.NewRectangle(viz.BodyColor(i))
		swatch.SetMinSize(fyne.NewSize(14, 14))
		legend.Add(container.NewHBox(swatch, widget.NewLabel(tr.Name)))
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Run %s\nSteps: %d\nMax energy drift: %.3e J",
		res.RunID, len(res.Times)-1, maxAbs(res.Drift)))

	backButton := widget.NewButton("Back to menu", func() {
		m.ShowScreen(ScreenMainMenu)
	})

	side := container.NewVBox(legend, widget.NewSeparator(), summary, backButton)

	return container.NewBorder(nil, nil, nil, side, plots)
}

func maxAbs(values []float64) float64 {
	var max float64
	for _, v := range values {
		max = math.Max(max, math.Abs(v))
	}
	return max
}
