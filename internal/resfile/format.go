package resfile

import (
	"fmt"
	"strconv"
	"strings"
)

// correctionMarker starts the third line's first token when the instrument
// appended a defocusing-corrected block after the uncorrected data.
const correctionMarker = "LMAX"

// Format holds the angular step metadata shared by every pole figure in a
// file, plus whether corrected data is present.
type Format struct {
	StepPolar     float64
	StepAzimuthal float64
	Corrected     bool
}

// Sniff reads the fixed-position metadata: line 3 signals whether corrected
// data is present, line 4 carries the polar and azimuthal steps in degrees.
func Sniff(raw *RawFile) (Format, error) {
	var f Format

	if len(raw.Lines) < 4 {
		return f, &MalformedHeaderError{
			Line:   len(raw.Lines) + 1,
			Reason: "file shorter than the 4-line metadata preamble",
		}
	}

	corrTok := strings.Fields(raw.Lines[2])
	if len(corrTok) == 0 {
		return f, &MalformedHeaderError{Line: 3, Reason: "empty correction record"}
	}
	f.Corrected = strings.HasPrefix(corrTok[0], correctionMarker)

	stepTok := strings.Fields(raw.Lines[3])
	if len(stepTok) < 3 {
		return f, &MalformedHeaderError{
			Line:   4,
			Reason: fmt.Sprintf("want at least 3 tokens, got %d", len(stepTok)),
		}
	}

	var err error
	if f.StepPolar, err = strconv.ParseFloat(stepTok[1], 64); err != nil {
		return f, &MalformedHeaderError{
			Line:   4,
			Reason: fmt.Sprintf("polar step %q is not a number", stepTok[1]),
		}
	}
	if f.StepAzimuthal, err = strconv.ParseFloat(stepTok[2], 64); err != nil {
		return f, &MalformedHeaderError{
			Line:   4,
			Reason: fmt.Sprintf("azimuthal step %q is not a number", stepTok[2]),
		}
	}
	if f.StepPolar <= 0 || f.StepAzimuthal <= 0 {
		return f, &MalformedHeaderError{Line: 4, Reason: "step sizes must be positive"}
	}

	return f, nil
}

// AzimuthalCount is the number of azimuthal samples per polar ring. The
// truncating conversion matches the count the instrument prints in its own
// header lines.
func (f Format) AzimuthalCount() int { return int(360 / f.StepAzimuthal) }

// PolarCount is the number of polar rings for the given mode.
func (f Format) PolarCount(m Mode) int { return int(m.PolarMax / f.StepPolar) }
