// Package mtex writes pole-figure intensities in the flat DAT layout MTEX's
// loadPoleFigure reads: one "polar azimuthal intensity" row per grid cell,
// no header row.
package mtex

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hakonanes/texeval2mtex/internal/polefigure"
)

// FileName builds the output path for one grid's table, e.g.
// "scan_pf111_uncorr.dat" for stem "scan".
func FileName(stem string, g *polefigure.Grid) string {
	return stem + "_" + g.Name() + ".dat"
}

// Write emits the grid as "%d %d %.3f" rows: polar angle, azimuthal angle,
// intensity. Angles are the ring/column indices scaled by the step sizes.
func Write(w io.Writer, g *polefigure.Grid) error {
	bw := bufio.NewWriter(w)
	for j, ring := range g.Intensities {
		for l, v := range ring {
			polar := int(float64(j) * g.StepPolar)
			azimuthal := int(float64(l) * g.StepAzimuthal)
			if _, err := fmt.Fprintf(bw, "%d %d %.3f\n", polar, azimuthal, v); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
