package viz

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsim/internal/simulation"
)

func sampleResult() *simulation.Result {
	return &simulation.Result{
		Times: []float64{0, 1, 2},
		Trajectories: []simulation.Trajectory{
			{Name: "a", X: []float64{0, 1e9, 2e9}, Y: []float64{0, 1e9, 0}, Z: []float64{0, 0, 0}},
			{Name: "b", X: []float64{-1e9, -2e9, -3e9}, Y: []float64{0, -1e9, 0}, Z: []float64{1e9, 2e9, 3e9}},
		},
	}
}

func TestPlotDimensions(t *testing.T) {
	img := Plot(sampleResult(), PlaneXY, 320, 240)
	require.NotNil(t, img)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestPlotDrawsTrajectories(t *testing.T) {
	img := Plot(sampleResult(), PlaneXY, 200, 200)

	background := img.RGBAAt(0, 0)
	painted := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != background {
				painted++
			}
		}
	}
	assert.Positive(t, painted, "trajectories must leave visible pixels")
}

func TestPlotPlanesDiffer(t *testing.T) {
	res := sampleResult()
	xy := Plot(res, PlaneXY, 200, 200)
	xz := Plot(res, PlaneXZ, 200, 200)
	assert.NotEqual(t, xy.Pix, xz.Pix)
}

func TestPlotHandlesDegenerateInput(t *testing.T) {
	assert.NotNil(t, Plot(nil, PlaneXY, 64, 64))
	assert.NotNil(t, Plot(&simulation.Result{}, PlaneXY, 64, 64))

	// a single stationary body collapses the extent to zero
	res := &simulation.Result{
		Times:        []float64{0},
		Trajectories: []simulation.Trajectory{{Name: "a", X: []float64{0}, Y: []float64{0}, Z: []float64{0}}},
	}
	assert.NotNil(t, Plot(res, PlaneXY, 64, 64))
}

func TestBodyColorCycles(t *testing.T) {
	assert.Equal(t, BodyColor(0), BodyColor(len(palette)))
	var zero color.RGBA
	for i := 0; i < len(palette); i++ {
		assert.NotEqual(t, zero, BodyColor(i))
	}
}
