// Package testutil provides shared test utilities and fixtures.
//
// Its main job is assembling synthetic TexEval RES files whose header lines
// and intensity blocks match the instrument's fixed-column layout, so parser
// and pipeline tests can run without captured instrument output.
package testutil

import (
	"fmt"
	"strings"

	"github.com/hakonanes/texeval2mtex/internal/resfile"
)

// RESSpec describes a synthetic RES file to build.
type RESSpec struct {
	Planes        []string
	StepPolar     float64
	StepAzimuthal float64

	// Corrected sets the LMAX marker and appends a second, 90-degree block
	// set after the uncorrected one.
	Corrected bool

	// Intensity supplies the value for one cell; nil uses DefaultIntensity.
	Intensity func(plane string, corrected bool, ring, col int) float64
}

// DefaultIntensity is a deterministic, cell-unique value generator used when
// a RESSpec does not provide its own.
func DefaultIntensity(plane string, corrected bool, ring, col int) float64 {
	v := float64(ring) + float64(col)/100
	if corrected {
		v += 1000
	}
	return v
}

// BuildRES assembles a complete RES file body: a four-line preamble, then
// per mode and plane a header line followed by eight-line intensity blocks,
// one block per polar ring.
func BuildRES(spec RESSpec) string {
	intensity := spec.Intensity
	if intensity == nil {
		intensity = DefaultIntensity
	}

	f := resfile.Format{
		StepPolar:     spec.StepPolar,
		StepAzimuthal: spec.StepAzimuthal,
		Corrected:     spec.Corrected,
	}

	var b strings.Builder
	b.WriteString(" SAMPLE TEST\n")
	b.WriteString(" TEXEVAL SYNTHETIC DATA\n")
	if spec.Corrected {
		b.WriteString("LMAX 28\n")
	} else {
		b.WriteString("CHI 75\n")
	}
	fmt.Fprintf(&b, "  1 %.2f %.2f 0\n", spec.StepPolar, spec.StepAzimuthal)

	modes := []resfile.Mode{resfile.Uncorrected}
	if spec.Corrected {
		modes = append(modes, resfile.Corrected)
	}
	for _, m := range modes {
		for _, plane := range spec.Planes {
			b.WriteString(resfile.Signature(plane, f, m))
			b.WriteString("\n")
			writeBlocks(&b, plane, m, f, intensity)
		}
	}
	return b.String()
}

// writeBlocks lays one ring's values out over exactly eight lines, the way
// the instrument does.
func writeBlocks(b *strings.Builder, plane string, m resfile.Mode, f resfile.Format,
	intensity func(string, bool, int, int) float64) {

	cols := f.AzimuthalCount()
	perLine := cols / 8
	if cols%8 != 0 {
		perLine++
	}

	for ring := 0; ring < f.PolarCount(m); ring++ {
		col := 0
		for line := 0; line < 8; line++ {
			var toks []string
			for n := 0; n < perLine && col < cols; n++ {
				toks = append(toks, fmt.Sprintf("%.3f", intensity(plane, m.Corrected, ring, col)))
				col++
			}
			b.WriteString("  " + strings.Join(toks, "  "))
			b.WriteString("\n")
		}
	}
}
