// Package rundb keeps a small sqlite catalog of conversion runs so a series
// of instrument sessions can be browsed later without re-opening RES files.
package rundb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hakonanes/texeval2mtex/internal/polefigure"
)

// DB wraps the catalog database.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the catalog at path and ensures the schema exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id           TEXT PRIMARY KEY,
			input_file       TEXT,
			n_pole_figures   BIGINT,
			corrected        BOOLEAN,
			step_polar       DOUBLE,
			step_azimuthal   DOUBLE,
			created_at       BIGINT
		);
		CREATE TABLE IF NOT EXISTS pole_figures (
			run_id           TEXT,
			plane            TEXT,
			corrected        BOOLEAN,
			rings            BIGINT,
			cols             BIGINT,
			min_intensity    DOUBLE,
			max_intensity    DOUBLE,
			mean_intensity   DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init run catalog schema: %w", err)
	}

	return &DB{db}, nil
}

// Run is one recorded conversion.
type Run struct {
	RunID          string
	InputFile      string
	NumPoleFigures int
	Corrected      bool
	StepPolar      float64
	StepAzimuthal  float64
	CreatedAt      int64
}

// FigureSummary is one pole figure's catalog entry.
type FigureSummary struct {
	RunID     string
	Plane     string
	Corrected bool
	Rings     int
	Cols      int
	Min       float64
	Max       float64
	Mean      float64
}

// RecordRun persists one conversion and a summary row per extracted grid.
// A missing RunID gets a fresh UUID; a zero CreatedAt gets the current time.
func (db *DB) RecordRun(run *Run, grids []*polefigure.Grid) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (
			run_id, input_file, n_pole_figures, corrected,
			step_polar, step_azimuthal, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.InputFile, run.NumPoleFigures, run.Corrected,
		run.StepPolar, run.StepAzimuthal, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, g := range grids {
		s := g.Summarize()
		_, err = tx.Exec(`
			INSERT INTO pole_figures (
				run_id, plane, corrected, rings, cols,
				min_intensity, max_intensity, mean_intensity
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, g.Plane, g.Corrected, g.Rings(), g.Columns(),
			s.Min, s.Max, s.Mean,
		)
		if err != nil {
			return fmt.Errorf("insert pole figure %s: %w", g.Name(), err)
		}
	}

	return tx.Commit()
}

// ListRuns returns all recorded runs, newest first.
func (db *DB) ListRuns() ([]*Run, error) {
	rows, err := db.Query(`
		SELECT run_id, input_file, n_pole_figures, corrected,
		       step_polar, step_azimuthal, created_at
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.RunID, &r.InputFile, &r.NumPoleFigures, &r.Corrected,
			&r.StepPolar, &r.StepAzimuthal, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListFigures returns the pole-figure summaries recorded for one run, in
// insertion order.
func (db *DB) ListFigures(runID string) ([]*FigureSummary, error) {
	rows, err := db.Query(`
		SELECT run_id, plane, corrected, rings, cols,
		       min_intensity, max_intensity, mean_intensity
		FROM pole_figures WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var figs []*FigureSummary
	for rows.Next() {
		f := &FigureSummary{}
		if err := rows.Scan(&f.RunID, &f.Plane, &f.Corrected, &f.Rings, &f.Cols,
			&f.Min, &f.Max, &f.Mean); err != nil {
			return nil, err
		}
		figs = append(figs, f)
	}
	return figs, rows.Err()
}
