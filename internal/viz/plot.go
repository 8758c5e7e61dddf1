// Package viz renders simulation results into raster images for display.
package viz

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"solarsim/internal/simulation"
)

// Plane selects which two state components a plot projects onto.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
)

var palette = []color.RGBA{
	{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff},
	{R: 0x3a, G: 0x86, B: 0xff, A: 0xff},
	{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
	{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
	{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
	{R: 0x1a, G: 0xbc, B: 0x9c, A: 0xff},
	{R: 0xfd, G: 0x79, B: 0xa8, A: 0xff},
	{R: 0x95, G: 0xa5, B: 0xa6, A: 0xff},
	{R: 0x6c, G: 0x5c, B: 0xe7, A: 0xff},
}

// BodyColor returns the display color assigned to the i-th body.
func BodyColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

// Plot draws the trajectories of a result projected onto the given plane
// into a w by h image. All trajectories share one scale centered on the
// largest extent so relative geometry is preserved.
func Plot(res *simulation.Result, plane Plane, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}), image.Point{}, draw.Src)
	if res == nil || len(res.Trajectories) == 0 {
		return img
	}

	extent := 0.0
	for _, tr := range res.Trajectories {
		for i := range tr.X {
			u, v := project(tr, plane, i)
			extent = math.Max(extent, math.Max(math.Abs(u), math.Abs(v)))
		}
	}
	if extent == 0 {
		extent = 1
	}
	// Leave a margin so the outermost orbit does not touch the border.
	scale := float64(min(w, h)) / (2.2 * extent)
	cx, cy := float64(w)/2, float64(h)/2

	for bi, tr := range res.Trajectories {
		col := BodyColor(bi)
		var px, py int
		for i := range tr.X {
			u, v := project(tr, plane, i)
			x := int(cx + u*scale)
			y := int(cy - v*scale)
			if i > 0 {
				drawLine(img, px, py, x, y, col)
			}
			px, py = x, y
		}
		// Final position marker.
		if n := len(tr.X); n > 0 {
			u, v := project(tr, plane, n-1)
			drawDot(img, int(cx+u*scale), int(cy-v*scale), 3, col)
		}
	}
	return img
}

func project(tr simulation.Trajectory, plane Plane, i int) (float64, float64) {
	if plane == PlaneXZ {
		return tr.X[i], tr.Z[i]
	}
	return tr.X[i], tr.Y[i]
}

// drawLine is Bresenham's algorithm; good enough for orbit traces.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawDot(img *image.RGBA, x, y, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r && image.Pt(x+dx, y+dy).In(img.Bounds()) {
				img.SetRGBA(x+dx, y+dy, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
