package resfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hakonanes/texeval2mtex/internal/polefigure"
)

// blockLines is the fixed number of file lines holding one polar ring's
// azimuthal sweep.
const blockLines = 8

// ExtractGrid walks the intensity block below a located header and
// reconstructs the plane's dense (polar ring x azimuthal column) grid.
// Each ring's eight lines must together carry exactly one intensity per
// azimuthal column; a short or overflowing ring means the file is corrupt
// and aborts the extraction.
func ExtractGrid(raw *RawFile, h Header, f Format, m Mode) (*polefigure.Grid, error) {
	rings := f.PolarCount(m)
	cols := f.AzimuthalCount()

	cells := make([][]float64, rings)
	lineNo := h.Offset + 1
	for j := 0; j < rings; j++ {
		ring := make([]float64, 0, cols)
		for k := 0; k < blockLines; k++ {
			if lineNo >= len(raw.Lines) {
				return nil, &BlockSizeError{Plane: h.Plane, Mode: m, Ring: j, Got: len(ring), Want: cols}
			}
			for _, tok := range strings.Fields(raw.Lines[lineNo]) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("plane %s (%s): ring %d: bad intensity %q at line %d",
						h.Plane, m, j, tok, lineNo+1)
				}
				ring = append(ring, round3(v))
			}
			lineNo++
		}
		if len(ring) != cols {
			return nil, &BlockSizeError{Plane: h.Plane, Mode: m, Ring: j, Got: len(ring), Want: cols}
		}
		cells[j] = ring
	}

	return &polefigure.Grid{
		Plane:         h.Plane,
		Corrected:     m.Corrected,
		StepPolar:     f.StepPolar,
		StepAzimuthal: f.StepAzimuthal,
		Intensities:   cells,
	}, nil
}

// round3 matches the instrument's stated 3-decimal precision.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
