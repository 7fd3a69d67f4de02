package polefigure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGrid() *Grid {
	return &Grid{
		Plane:         "111",
		StepPolar:     5,
		StepAzimuthal: 5,
		Intensities: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
		},
	}
}

func TestGridShape(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 2, g.Rings())
	assert.Equal(t, 3, g.Columns())

	empty := &Grid{}
	assert.Equal(t, 0, empty.Rings())
	assert.Equal(t, 0, empty.Columns())
}

func TestGridNaming(t *testing.T) {
	g := testGrid()
	assert.Equal(t, "_uncorr", g.Suffix())
	assert.Equal(t, "pf111_uncorr", g.Name())

	g.Corrected = true
	assert.Equal(t, "_corr", g.Suffix())
	assert.Equal(t, "pf111_corr", g.Name())
}

func TestFlattenRowMajor(t *testing.T) {
	g := testGrid()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, g.Flatten())
}

func TestSummarize(t *testing.T) {
	g := testGrid()
	s := g.Summarize()
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.InDelta(t, 3.5, s.Mean, 1e-12)

	empty := &Grid{}
	assert.Equal(t, Summary{}, empty.Summarize())
}
