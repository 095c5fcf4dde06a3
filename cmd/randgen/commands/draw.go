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
	"fmt"

	"github.com/0xsoniclabs/randgen/config"
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/urfave/cli/v2"
)

// DrawCommand prints random values drawn from a table.
var DrawCommand = cli.Command{
	Action:    drawAction,
	Name:      "draw",
	Usage:     "draw values from an outcome table",
	ArgsUsage: "<table-file>",
	Flags: []cli.Flag{
		&config.CountFlag,
		&config.SeedFlag,
		&config.RemoveFlag,
		&config.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: "Prints --count values drawn from the table, one per line.",
}

func drawAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Draw")

	s, err := openSampler(cfg, log)
	if err != nil {
		return err
	}
	draws, err := s.NextK(cfg.Count)
	if err != nil {
		return err
	}
	for v := range draws {
		if _, err := fmt.Fprintln(ctx.App.Writer, v); err != nil {
			return err
		}
	}
	log.Debugf("Drew %d values from %v", cfg.Count, cfg.TableFile)
	return nil
}
