// Command texeval2mtex converts pole-figure intensities in a TexEval RES
// file into flat DAT tables readable by MTEX.
//
// One table is written per plane and correction state, next to the input
// file: <stem>_pf<plane>_uncorr.dat, plus <stem>_pf<plane>_corr.dat when the
// file carries defocusing-corrected data. With four pole figures and
// corrected data present, eight DAT files are created.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hakonanes/texeval2mtex/internal/convert"
	"github.com/hakonanes/texeval2mtex/internal/render"
	"github.com/hakonanes/texeval2mtex/internal/report"
	"github.com/hakonanes/texeval2mtex/internal/rundb"
)

var (
	plotFlag = flag.Bool("plot", false, "Write one heatmap PNG per pole figure")
	htmlFlag = flag.Bool("html", false, "Write an HTML report with interactive heatmaps")
	dbPath   = flag.String("db", "", "Record the run in a sqlite catalog at this path")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <infile.RES> [n_pfs]\n\n", os.Args[0])
	fmt.Fprintln(out, "Converts TexEval RES pole-figure intensities to MTEX DAT tables.")
	fmt.Fprintln(out, "n_pfs is the number of pole figures to process (1-6, default 4).")
	fmt.Fprintln(out, "")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(2)
	}
	infile := args[0]

	nPfs := 4
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("pole figure count %q is not an integer", args[1])
		}
		nPfs = n
	}

	opts := convert.Options{InputPath: infile, NumPoleFigures: nPfs}
	res, err := convert.Convert(opts)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	log.Printf("parsed %s: step polar=%.2f azimuthal=%.2f corrected=%v",
		infile, res.Format.StepPolar, res.Format.StepAzimuthal, res.Format.Corrected)
	for _, g := range res.Grids {
		s := g.Summarize()
		log.Printf("  %s: %dx%d intensities min=%.3f max=%.3f mean=%.3f",
			g.Name(), g.Rings(), g.Columns(), s.Min, s.Max, s.Mean)
	}
	for _, out := range res.Outputs {
		log.Printf("wrote %s", out)
	}

	if *plotFlag {
		for _, g := range res.Grids {
			name, err := render.SavePNG(opts.Stem(), g)
			if err != nil {
				log.Fatalf("plot failed: %v", err)
			}
			log.Printf("wrote %s", name)
		}
	}

	if *htmlFlag {
		name := opts.Stem() + "_polefigures.html"
		fh, err := os.Create(name)
		if err != nil {
			log.Fatalf("report failed: %v", err)
		}
		if err := report.WriteHTML(fh, infile, res.Grids); err != nil {
			fh.Close()
			log.Fatalf("report failed: %v", err)
		}
		if err := fh.Close(); err != nil {
			log.Fatalf("report failed: %v", err)
		}
		log.Printf("wrote %s", name)
	}

	if *dbPath != "" {
		db, err := rundb.Open(*dbPath)
		if err != nil {
			log.Fatalf("run catalog failed: %v", err)
		}
		defer db.Close()

		run := &rundb.Run{
			InputFile:      infile,
			NumPoleFigures: nPfs,
			Corrected:      res.Format.Corrected,
			StepPolar:      res.Format.StepPolar,
			StepAzimuthal:  res.Format.StepAzimuthal,
		}
		if err := db.RecordRun(run, res.Grids); err != nil {
			log.Fatalf("run catalog failed: %v", err)
		}
		log.Printf("recorded run %s in %s", run.RunID, *dbPath)
	}
}
