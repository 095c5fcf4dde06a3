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

package config

import "github.com/urfave/cli/v2"

var (
	CountFlag = cli.IntFlag{
		Name:    "count",
		Aliases: []string{"k"},
		Usage:   "number of values to draw",
		Value:   1,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random source; overrides the seed of the table file",
	}
	RemoveFlag = cli.StringSliceFlag{
		Name:  "remove",
		Usage: "values removed from the table before drawing, e.g. --remove 0,1.5",
	}
	ToleranceFlag = cli.Float64Flag{
		Name:  "tolerance",
		Usage: "largest accepted difference between frequency and probability of a value",
		Value: 0.001,
	}
	MaxIterationsFlag = cli.Uint64Flag{
		Name:  "max-iterations",
		Usage: "maximum number of draws before giving up on convergence",
		Value: 1_000_000,
	}
	ReportDbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "sqlite3 file to which convergence runs are reported",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the visualizer web server",
		Value: "8080",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file to which the table is written after removals (.json, .yaml, optionally .gz)",
	}
)
