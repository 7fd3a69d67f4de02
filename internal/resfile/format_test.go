package resfile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakonanes/texeval2mtex/internal/resfile"
)

func rawFromLines(lines ...string) *resfile.RawFile {
	return &resfile.RawFile{Path: "test.RES", Lines: lines}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name      string
		line3     string
		corrected bool
	}{
		{"correction marker", "LMAX 28", true},
		{"marker glued to value", "LMAX34", true},
		{"no marker", "CHI 75", false},
		{"marker not at token start", "XLMAX 1", false},
		{"short first token", "LMA 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawFromLines(" SAMPLE", " RUN 1", tt.line3, "  1 5.00 5.00 0")
			f, err := resfile.Sniff(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.corrected, f.Corrected)
			assert.Equal(t, 5.0, f.StepPolar)
			assert.Equal(t, 5.0, f.StepAzimuthal)
		})
	}
}

func TestSniffMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
	}{
		{"file too short", []string{" SAMPLE", " RUN 1"}, 3},
		{"empty correction record", []string{"a", "b", "", "  1 5.00 5.00 0"}, 3},
		{"too few step tokens", []string{"a", "b", "CHI 75", "  1 5.00"}, 4},
		{"polar step not a number", []string{"a", "b", "CHI 75", "  1 five 5.00"}, 4},
		{"azimuthal step not a number", []string{"a", "b", "CHI 75", "  1 5.00 five"}, 4},
		{"zero step", []string{"a", "b", "CHI 75", "  1 0.00 5.00"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resfile.Sniff(rawFromLines(tt.lines...))
			var mhe *resfile.MalformedHeaderError
			require.ErrorAs(t, err, &mhe)
			assert.Equal(t, tt.line, mhe.Line)
		})
	}
}

func TestFormatCounts(t *testing.T) {
	tests := []struct {
		name      string
		stepPol   float64
		stepAz    float64
		azCount   int
		polUncorr int
		polCorr   int
	}{
		{"5 degree steps", 5, 5, 72, 16, 18},
		{"coarse azimuthal", 5, 10, 36, 16, 18},
		{"non-dividing step truncates", 7, 7, 51, 11, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := resfile.Format{StepPolar: tt.stepPol, StepAzimuthal: tt.stepAz}
			assert.Equal(t, tt.azCount, f.AzimuthalCount())
			assert.Equal(t, tt.polUncorr, f.PolarCount(resfile.Uncorrected))
			assert.Equal(t, tt.polCorr, f.PolarCount(resfile.Corrected))
		})
	}
}

func TestPlanes(t *testing.T) {
	planes, err := resfile.Planes(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "200"}, planes)

	planes, err = resfile.Planes(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "200", "220", "311", "222", "400"}, planes)

	for _, n := range []int{0, -1, 7} {
		_, err := resfile.Planes(n)
		var pce *resfile.PlaneCountError
		require.True(t, errors.As(err, &pce), "Planes(%d) should fail", n)
		assert.Equal(t, n, pce.Count)
	}
}
