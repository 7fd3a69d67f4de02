package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakonanes/texeval2mtex/internal/fsutil"
	"github.com/hakonanes/texeval2mtex/internal/resfile"
	"github.com/hakonanes/texeval2mtex/internal/testutil"
)

func memFSWith(t *testing.T, name, body string) *fsutil.MemoryFileSystem {
	t.Helper()
	fs := fsutil.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile(name, []byte(body), 0644))
	return fs
}

func TestConvertUncorrectedOnly(t *testing.T) {
	body := testutil.BuildRES(testutil.RESSpec{
		Planes:        []string{"111", "200"},
		StepPolar:     5,
		StepAzimuthal: 5,
	})
	fs := memFSWith(t, "scan.RES", body)

	res, err := Convert(Options{InputPath: "scan.RES", NumPoleFigures: 2, FS: fs})
	require.NoError(t, err)

	assert.False(t, res.Format.Corrected)
	assert.Equal(t, []string{"scan_pf111_uncorr.dat", "scan_pf200_uncorr.dat"}, res.Outputs)
	require.Len(t, res.Grids, 2)

	for _, name := range res.Outputs {
		data, err := fs.ReadFile(name)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 16*72)
		assert.Equal(t, "0 0 0.000", lines[0])
	}

	// Nothing beyond the input and the two tables was written.
	assert.Len(t, fs.List(), 3)
}

func TestConvertCorrected(t *testing.T) {
	body := testutil.BuildRES(testutil.RESSpec{
		Planes:        []string{"111", "200"},
		StepPolar:     5,
		StepAzimuthal: 5,
		Corrected:     true,
	})
	fs := memFSWith(t, "scan.RES", body)

	res, err := Convert(Options{InputPath: "scan.RES", NumPoleFigures: 2, FS: fs})
	require.NoError(t, err)

	assert.True(t, res.Format.Corrected)
	assert.Equal(t, []string{
		"scan_pf111_uncorr.dat", "scan_pf200_uncorr.dat",
		"scan_pf111_corr.dat", "scan_pf200_corr.dat",
	}, res.Outputs)
	require.Len(t, res.Grids, 4)

	// Uncorrected grids cover 80 degrees, corrected ones the full 90.
	assert.Equal(t, 16, res.Grids[0].Rings())
	assert.Equal(t, 18, res.Grids[2].Rings())

	corr, err := fs.ReadFile("scan_pf111_corr.dat")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(corr), "\n"), "\n")
	assert.Len(t, lines, 18*72)
	assert.Equal(t, "0 0 1000.000", lines[0])
}

// Round-trip: parsing a written table back must reproduce the source grid.
func TestConvertRoundTrip(t *testing.T) {
	body := testutil.BuildRES(testutil.RESSpec{
		Planes:        []string{"111"},
		StepPolar:     5,
		StepAzimuthal: 5,
	})
	fs := memFSWith(t, "scan.RES", body)

	res, err := Convert(Options{InputPath: "scan.RES", NumPoleFigures: 1, FS: fs})
	require.NoError(t, err)

	data, err := fs.ReadFile("scan_pf111_uncorr.dat")
	require.NoError(t, err)

	g := res.Grids[0]
	got := make([][]float64, g.Rings())
	for j := range got {
		got[j] = make([]float64, g.Columns())
	}
	for i, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		var polar, azimuthal int
		var v float64
		_, err := fmt.Sscanf(line, "%d %d %f", &polar, &azimuthal, &v)
		require.NoError(t, err)
		assert.Equal(t, (i/g.Columns())*5, polar)
		assert.Equal(t, (i%g.Columns())*5, azimuthal)
		got[i/g.Columns()][i%g.Columns()] = v
	}

	if diff := cmp.Diff(g.Intensities, got); diff != "" {
		t.Errorf("round-tripped intensities mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertInvalidExtension(t *testing.T) {
	fs := memFSWith(t, "data.txt", "irrelevant")

	_, err := Convert(Options{InputPath: "data.txt", NumPoleFigures: 2, FS: fs})
	var iee *resfile.InvalidExtensionError
	require.ErrorAs(t, err, &iee)
	assert.Equal(t, "data.txt", iee.Path)
	assert.Equal(t, []string{"data.txt"}, fs.List())
}

func TestConvertPlaneCountOutOfRange(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	for _, n := range []int{0, 7} {
		_, err := Convert(Options{InputPath: "scan.RES", NumPoleFigures: n, FS: fs})
		var pce *resfile.PlaneCountError
		require.ErrorAs(t, err, &pce, "n=%d", n)
	}
}

// A set correction marker without the matching corrected headers must fail
// before ANY output is written: consumers rely on complete runs.
func TestConvertMissingCorrectedHeaders(t *testing.T) {
	body := testutil.BuildRES(testutil.RESSpec{
		Planes:        []string{"111", "200"},
		StepPolar:     5,
		StepAzimuthal: 5,
	})
	body = strings.Replace(body, "CHI 75", "LMAX 28", 1)
	fs := memFSWith(t, "scan.RES", body)

	_, err := Convert(Options{InputPath: "scan.RES", NumPoleFigures: 2, FS: fs})
	var hnf *resfile.HeaderNotFoundError
	require.ErrorAs(t, err, &hnf)
	assert.Equal(t, resfile.Corrected, hnf.Mode)

	assert.Equal(t, []string{"scan.RES"}, fs.List(), "no partial output expected")
}

func TestConvertMissingFile(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	_, err := Convert(Options{InputPath: "absent.RES", NumPoleFigures: 2, FS: fs})
	require.Error(t, err)
}

func TestConvertIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scan.res")
	body := testutil.BuildRES(testutil.RESSpec{
		Planes:        []string{"111", "200"},
		StepPolar:     5,
		StepAzimuthal: 5,
	})
	require.NoError(t, os.WriteFile(input, []byte(body), 0644))

	first, err := Convert(Options{InputPath: input, NumPoleFigures: 2})
	require.NoError(t, err)
	require.Len(t, first.Outputs, 2)

	snapshot := map[string][]byte{}
	for _, name := range first.Outputs {
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		snapshot[name] = data
	}

	second, err := Convert(Options{InputPath: input, NumPoleFigures: 2})
	require.NoError(t, err)
	require.Equal(t, first.Outputs, second.Outputs)

	for _, name := range second.Outputs {
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, snapshot[name], data, "output %s must be byte-identical across runs", name)
	}
}
