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

// Package commands implements the randgen command line tools.
package commands

import (
	"github.com/0xsoniclabs/randgen/config"
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/table"
	"github.com/cockroachdb/errors"
)

// openSampler reads the table file of cfg, applies the seed of the command
// line and removes the values given by --remove. If an output file is
// configured the resulting table is written to it.
func openSampler(cfg *config.Config, log logger.Logger) (*sampler.Sampler, error) {
	f, err := table.Read(cfg.TableFile)
	if err != nil {
		return nil, err
	}
	opts := []sampler.Option{sampler.WithLogger(logger.NewLogger(cfg.LogLevel, "Sampler"))}
	if cfg.Seed != nil {
		opts = append(opts, sampler.WithSeed(*cfg.Seed))
	}
	s, err := f.Sampler(opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", cfg.TableFile)
	}

	for _, lit := range cfg.Remove {
		v, err := sampler.ParseNumber(lit)
		if err != nil {
			return nil, err
		}
		if err := s.RemoveValue(v); err != nil {
			return nil, errors.Wrapf(err, "cannot remove %s", lit)
		}
		log.Infof("Removed %v", v)
	}

	if cfg.Output != "" {
		if err := table.Write(cfg.Output, table.FromSampler(s)); err != nil {
			return nil, err
		}
		log.Noticef("Table written to %v", cfg.Output)
	}
	return s, nil
}
