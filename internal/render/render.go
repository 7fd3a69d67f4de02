// Package render draws pole-figure heatmaps as PNG files using gonum/plot.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hakonanes/texeval2mtex/internal/polefigure"
)

// heatGrid adapts a pole-figure grid to plotter.GridXYZ. X is the azimuthal
// angle, Y the polar angle, both in degrees.
type heatGrid struct {
	g *polefigure.Grid
}

func (h heatGrid) Dims() (c, r int)   { return h.g.Columns(), h.g.Rings() }
func (h heatGrid) Z(c, r int) float64 { return h.g.Intensities[r][c] }
func (h heatGrid) X(c int) float64    { return float64(c) * h.g.StepAzimuthal }
func (h heatGrid) Y(r int) float64    { return float64(r) * h.g.StepPolar }

// SavePNG writes one heatmap PNG for the grid, named like the DAT table it
// accompanies, and returns the file path.
func SavePNG(stem string, g *polefigure.Grid) (string, error) {
	mode := "uncorrected"
	if g.Corrected {
		mode = "corrected"
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pole figure %s (%s)", g.Plane, mode)
	p.X.Label.Text = "Azimuthal angle (deg)"
	p.Y.Label.Text = "Polar angle (deg)"

	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(heatGrid{g}, pal))

	name := stem + "_" + g.Name() + ".png"
	if err := p.Save(8*vg.Inch, 4*vg.Inch, name); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return name, nil
}
