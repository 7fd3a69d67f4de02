// Package resfile decodes TexEval RES pole-figure measurement files.
//
// A RES file is an unstructured text stream: a four-line metadata preamble,
// then for each measured plane a fixed-column header line followed by its
// intensity block, eight file lines per polar ring. When the instrument has
// applied a defocusing correction, a second set of headers and blocks
// covering the full 90 degree polar range follows the uncorrected (Chi
// limited, 80 degree) set.
package resfile

import (
	"fmt"
	"strings"

	"github.com/hakonanes/texeval2mtex/internal/fsutil"
)

// PlaneCatalog is the fixed cubic-symmetry plane order TexEval measures in.
var PlaneCatalog = []string{"111", "200", "220", "311", "222", "400"}

// MaxPoleFigures is the number of planes in PlaneCatalog.
const MaxPoleFigures = 6

// Planes returns the first n catalog planes.
func Planes(n int) ([]string, error) {
	if n < 1 || n > MaxPoleFigures {
		return nil, &PlaneCountError{Count: n, Max: MaxPoleFigures}
	}
	return PlaneCatalog[:n], nil
}

// Mode selects which intensity block of the file a pass operates on.
// Uncorrected data covers Chi <= 75 degrees, so its polar range stops at 80;
// defocusing-corrected data runs the full 90.
type Mode struct {
	Corrected bool
	PolarMax  float64
}

var (
	Uncorrected = Mode{Corrected: false, PolarMax: 80}
	Corrected   = Mode{Corrected: true, PolarMax: 90}
)

func (m Mode) String() string {
	if m.Corrected {
		return "corrected"
	}
	return "uncorrected"
}

// RawFile is a RES file's line sequence, read once and never mutated.
// Line indices matter: header offsets are positions into Lines.
type RawFile struct {
	Path  string
	Lines []string
}

// Load reads a RES file into memory. The extension must be .RES or .res;
// anything else is rejected before the file is opened.
func Load(path string, fsys fsutil.FileSystem) (*RawFile, error) {
	if !strings.HasSuffix(path, ".RES") && !strings.HasSuffix(path, ".res") {
		return nil, &InvalidExtensionError{Path: path}
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &RawFile{Path: path, Lines: splitLines(string(data))}, nil
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
