// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package report stores the outcome of convergence runs in a sqlite
// database.
package report

import (
	"database/sql"

	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/statistics/convergence"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	// Your main or test packages require this import so the sql package is properly initialized.
	_ "github.com/mattn/go-sqlite3"
)

const (
	// SQL statement for creating report tables
	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS run (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	createTimestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	tableFile TEXT,
	seed INTEGER,
	tolerance FLOAT,
	maxIterations INTEGER,
	iterations INTEGER,
	maxDeviation FLOAT,
	converged BOOLEAN,
	chiSquare FLOAT,
	pValue FLOAT
);
CREATE TABLE IF NOT EXISTS histogram (
	runId INTEGER,
	value TEXT,
	kind TEXT,
	probability FLOAT,
	count INTEGER,
	frequency FLOAT
);
`
	// SQL statement for inserting a convergence run
	insertRunSQL = `
INSERT INTO run (
	tableFile, seed, tolerance, maxIterations, iterations, maxDeviation, converged, chiSquare, pValue
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?, ?
)
`
	// SQL statement for inserting a histogram bin of a run
	insertBinSQL = `
INSERT INTO histogram (
	runId, value, kind, probability, count, frequency
) VALUES (
	?, ?, ?, ?, ?, ?
)
`
	selectRunsSQL = `SELECT id, tableFile, seed, tolerance, maxIterations, iterations, maxDeviation, converged, chiSquare, pValue FROM run ORDER BY id`

	selectBinsSQL = `SELECT runId, value, kind, probability, count, frequency FROM histogram WHERE runId = ? ORDER BY rowid`
)

// Run is the summary of one convergence run.
type Run struct {
	ID            int64         `db:"id"`
	TableFile     string        `db:"tableFile"`
	Seed          sql.NullInt64 `db:"seed"`
	Tolerance     float64       `db:"tolerance"`
	MaxIterations int64         `db:"maxIterations"`
	Iterations    int64         `db:"iterations"`
	MaxDeviation  float64       `db:"maxDeviation"`
	Converged     bool          `db:"converged"`
	ChiSquare     float64       `db:"chiSquare"`
	PValue        float64       `db:"pValue"`
}

// Bin is the observed count of one table value in a run.
type Bin struct {
	RunID       int64   `db:"runId"`
	Value       string  `db:"value"`
	Kind        string  `db:"kind"`
	Probability float64 `db:"probability"`
	Count       int64   `db:"count"`
	Frequency   float64 `db:"frequency"`
}

// NewBins lists the histogram counts of all table values in table order,
// including values that were never drawn.
func NewBins(values []sampler.Number, probs []float64, h *convergence.Histogram[sampler.Number]) []Bin {
	bins := make([]Bin, len(values))
	for i, v := range values {
		bins[i] = Bin{
			Value:       v.String(),
			Kind:        KindOf(v),
			Probability: probs[i],
			Count:       int64(h.Count(v)),
			Frequency:   h.Frequency(v),
		}
	}
	return bins
}

// KindOf names the kind of a value, int or float.
func KindOf(v sampler.Number) string {
	switch v.(type) {
	case sampler.Int:
		return "int"
	case sampler.Float:
		return "float"
	default:
		return "unknown"
	}
}

//go:generate mockgen -source store.go -destination store_mock.go -package report
type Store interface {
	Close() error
	// AddRun records a run and returns its id.
	AddRun(run Run) (int64, error)
	// AddHistogram records the bins of the run with the given id.
	AddHistogram(runID int64, bins []Bin) error
	Runs() ([]Run, error)
	Histogram(runID int64) ([]Bin, error)
}

// store is a sqlite backed Store.
type store struct {
	db      *sqlx.DB
	runStmt *sqlx.Stmt // Prepared insert statement for a run
	binStmt *sqlx.Stmt // Prepared insert statement for a histogram bin
}

// NewStore opens or creates a report database.
func NewStore(dbFile string) (Store, error) {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", dbFile)
	}
	s, err := newStore(db)
	if err != nil {
		return nil, errors.Join(errors.Wrapf(err, "database %v", dbFile), db.Close())
	}
	return s, nil
}

func newStore(db *sqlx.DB) (*store, error) {
	// create report schema if not exists
	if _, err := db.Exec(createSQL); err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	// prepare INSERT statements for subsequent use
	runStmt, err := db.Preparex(insertRunSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare a SQL statement for runs")
	}
	binStmt, err := db.Preparex(insertBinSQL)
	if err != nil {
		return nil, errors.Join(errors.Wrap(err, "failed to prepare a SQL statement for histograms"), runStmt.Close())
	}
	return &store{db: db, runStmt: runStmt, binStmt: binStmt}, nil
}

// Close closes the statements and the database.
func (s *store) Close() error {
	return errors.Join(s.runStmt.Close(), s.binStmt.Close(), s.db.Close())
}

func (s *store) AddRun(run Run) (int64, error) {
	res, err := s.runStmt.Exec(run.TableFile, run.Seed, run.Tolerance, run.MaxIterations,
		run.Iterations, run.MaxDeviation, run.Converged, run.ChiSquare, run.PValue)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert run")
	}
	return res.LastInsertId()
}

func (s *store) AddHistogram(runID int64, bins []Bin) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	stmt := tx.Stmtx(s.binStmt)
	for _, b := range bins {
		if _, err := stmt.Exec(runID, b.Value, b.Kind, b.Probability, b.Count, b.Frequency); err != nil {
			return errors.Join(errors.Wrapf(err, "failed to insert bin %v", b.Value), tx.Rollback())
		}
	}
	return tx.Commit()
}

func (s *store) Runs() ([]Run, error) {
	var runs []Run
	if err := s.db.Select(&runs, selectRunsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to select runs")
	}
	return runs, nil
}

func (s *store) Histogram(runID int64) ([]Bin, error) {
	var bins []Bin
	if err := s.db.Select(&bins, selectBinsSQL, runID); err != nil {
		return nil, errors.Wrapf(err, "failed to select histogram of run %d", runID)
	}
	return bins, nil
}
