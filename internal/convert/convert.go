// Package convert runs the RES-to-DAT pipeline: sniff the file's format,
// then for each correction mode present in the file, locate every requested
// plane's header, extract its intensity grid and write one DAT table per
// grid.
package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hakonanes/texeval2mtex/internal/fsutil"
	"github.com/hakonanes/texeval2mtex/internal/mtex"
	"github.com/hakonanes/texeval2mtex/internal/polefigure"
	"github.com/hakonanes/texeval2mtex/internal/resfile"
)

// Options configures one conversion run.
type Options struct {
	// InputPath is the RES file to convert. Outputs are written next to it.
	InputPath string

	// NumPoleFigures is how many catalog planes to process (1..6).
	NumPoleFigures int

	// FS overrides the filesystem; nil means the real one.
	FS fsutil.FileSystem
}

// Result reports what one conversion run produced.
type Result struct {
	Format  resfile.Format
	Grids   []*polefigure.Grid
	Outputs []string
}

// Stem is the input path without its extension, the base all output file
// names build on.
func (o Options) Stem() string {
	return strings.TrimSuffix(o.InputPath, filepath.Ext(o.InputPath))
}

// Convert runs the pipeline once for the uncorrected data and, when the
// file's correction marker is set, once more for the corrected data. Every
// grid of every pass is located and extracted before the first output file
// is written: downstream consumers expect a complete set of tables per run,
// so any failure leaves nothing behind.
func Convert(opts Options) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}

	planes, err := resfile.Planes(opts.NumPoleFigures)
	if err != nil {
		return nil, err
	}

	raw, err := resfile.Load(opts.InputPath, fsys)
	if err != nil {
		return nil, err
	}

	format, err := resfile.Sniff(raw)
	if err != nil {
		return nil, err
	}

	modes := []resfile.Mode{resfile.Uncorrected}
	if format.Corrected {
		modes = append(modes, resfile.Corrected)
	}

	res := &Result{Format: format}
	for _, m := range modes {
		headers, err := resfile.LocateHeaders(raw, planes, format, m)
		if err != nil {
			return nil, err
		}
		for _, h := range headers {
			g, err := resfile.ExtractGrid(raw, h, format, m)
			if err != nil {
				return nil, err
			}
			res.Grids = append(res.Grids, g)
		}
	}

	stem := opts.Stem()
	for _, g := range res.Grids {
		name := mtex.FileName(stem, g)
		var buf bytes.Buffer
		if err := mtex.Write(&buf, g); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		if err := fsys.WriteFile(name, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		res.Outputs = append(res.Outputs, name)
	}

	return res, nil
}
