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

package commands

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/0xsoniclabs/randgen/config"
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/0xsoniclabs/randgen/report"
	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/statistics/convergence"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ConvergeCommand checks that the draws of a table converge to its
// probabilities.
var ConvergeCommand = cli.Command{
	Action:    convergeAction,
	Name:      "converge",
	Usage:     "draw until the observed frequencies match the table",
	ArgsUsage: "<table-file>",
	Flags: []cli.Flag{
		&config.ToleranceFlag,
		&config.MaxIterationsFlag,
		&config.SeedFlag,
		&config.RemoveFlag,
		&config.ReportDbFlag,
		&logger.LogLevelFlag,
	},
	Description: `Draws values until every observed frequency is within --tolerance of its
probability, or fails after --max-iterations draws. The chi-square goodness of
fit of the draws is printed and, with --db, the run is stored in a sqlite file.`,
}

func convergeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Converge")

	s, err := openSampler(cfg, log)
	if err != nil {
		return err
	}
	values, probs := s.Values(), s.Probabilities()
	target := make(map[sampler.Number]float64, len(values))
	for i, v := range values {
		target[v] = probs[i]
	}

	log.Noticef("Draw from %v until within %v, at most %d draws", cfg.TableFile, cfg.Tolerance, cfg.MaxIterations)
	start := time.Now()
	res, hist, err := convergence.Run(s.All(), target, cfg.Tolerance, cfg.MaxIterations)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Elapsed time: %vh %vm %vs", hours, minutes, seconds)

	stat, pValue, err := convergence.ChiSquare(hist, target)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ctx.App.Writer, "converged: %v\niterations: %d\nmax deviation: %.6f\nchi-square: %.4f\np-value: %.4f\n",
		res.Converged, res.Iterations, res.MaxDeviation, stat, pValue)

	if cfg.ReportDb != "" {
		store, err := report.NewStore(cfg.ReportDb)
		if err != nil {
			return err
		}
		run := newRun(cfg, s, res, stat, pValue)
		err = record(store, run, report.NewBins(values, probs, hist))
		if err = errors.Join(err, store.Close()); err != nil {
			return err
		}
		log.Noticef("Run reported to %v", cfg.ReportDb)
	}

	if !res.Converged {
		return errors.Newf("failed to converge at %v after %d draws; max deviation %v", cfg.Tolerance, res.Iterations, res.MaxDeviation)
	}
	return nil
}

func newRun(cfg *config.Config, s *sampler.Sampler, res convergence.Result, stat, pValue float64) report.Run {
	run := report.Run{
		TableFile:     cfg.TableFile,
		Tolerance:     cfg.Tolerance,
		MaxIterations: int64(cfg.MaxIterations),
		Iterations:    int64(res.Iterations),
		MaxDeviation:  res.MaxDeviation,
		Converged:     res.Converged,
		ChiSquare:     stat,
		PValue:        pValue,
	}
	if seed, ok := s.Seed(); ok {
		run.Seed = sql.NullInt64{Int64: seed, Valid: true}
	}
	return run
}

// record stores a run together with its histogram.
func record(store report.Store, run report.Run, bins []report.Bin) error {
	id, err := store.AddRun(run)
	if err != nil {
		return err
	}
	return store.AddHistogram(id, bins)
}
