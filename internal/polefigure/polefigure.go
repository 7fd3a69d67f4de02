// Package polefigure holds the in-memory representation of a measured pole
// figure: a dense grid of diffracted intensities indexed by polar ring and
// azimuthal column.
package polefigure

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is one pole figure's intensities. Ring j covers polar angle
// j*StepPolar; column l covers azimuthal angle l*StepAzimuthal. Grids are
// built once by the RES extractor and never mutated afterwards.
type Grid struct {
	Plane         string
	Corrected     bool
	StepPolar     float64
	StepAzimuthal float64
	Intensities   [][]float64
}

// Rings returns the number of polar rings in the grid.
func (g *Grid) Rings() int { return len(g.Intensities) }

// Columns returns the number of azimuthal columns per ring.
func (g *Grid) Columns() int {
	if len(g.Intensities) == 0 {
		return 0
	}
	return len(g.Intensities[0])
}

// Suffix distinguishes corrected from uncorrected output files.
func (g *Grid) Suffix() string {
	if g.Corrected {
		return "_corr"
	}
	return "_uncorr"
}

// Name is the per-figure file-name fragment, e.g. "pf111_uncorr".
func (g *Grid) Name() string { return "pf" + g.Plane + g.Suffix() }

// Flatten returns the intensities row-major, polar rings outermost.
func (g *Grid) Flatten() []float64 {
	flat := make([]float64, 0, g.Rings()*g.Columns())
	for _, ring := range g.Intensities {
		flat = append(flat, ring...)
	}
	return flat
}

// Summary describes one grid's intensity distribution.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
}

// Summarize computes the grid's intensity summary.
func (g *Grid) Summarize() Summary {
	flat := g.Flatten()
	if len(flat) == 0 {
		return Summary{}
	}
	return Summary{
		Min:  floats.Min(flat),
		Max:  floats.Max(flat),
		Mean: stat.Mean(flat, nil),
	}
}
