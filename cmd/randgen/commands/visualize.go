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
	"github.com/0xsoniclabs/randgen/config"
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/statistics/convergence"
	"github.com/0xsoniclabs/randgen/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand serves charts of a table and of draws from it.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "serve charts of assigned and observed distribution",
	ArgsUsage: "<table-file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    config.CountFlag.Name,
			Aliases: config.CountFlag.Aliases,
			Usage:   config.CountFlag.Usage,
			Value:   10_000,
		},
		&config.SeedFlag,
		&config.RemoveFlag,
		&config.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: "Draws --count values and serves the charts on --port until interrupted.",
}

func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	s, err := openSampler(cfg, log)
	if err != nil {
		return err
	}
	draws, err := s.NextK(cfg.Count)
	if err != nil {
		return err
	}
	hist := convergence.NewHistogram[sampler.Number]()
	for v := range draws {
		hist.Add(v)
	}

	log.Noticef("Open http://localhost:%v to see %d draws from %v", cfg.Port, cfg.Count, cfg.TableFile)
	return visualizer.FireUpWeb(cfg.TableFile, s, hist, cfg.Port)
}
