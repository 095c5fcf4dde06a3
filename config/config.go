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

import (
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config holds the settings of a randgen command.
type Config struct {
	AppName     string
	CommandName string

	TableFile     string   // path of the outcome table
	Count         int      // number of draws
	Seed          *int64   // nil if not given on the command line
	Remove        []string // literals of values to remove
	Tolerance     float64  // convergence tolerance
	MaxIterations uint64   // convergence iteration limit
	ReportDb      string   // sqlite report file, empty for none
	Port          string   // visualizer port
	Output        string   // table file written after removals, empty for none
	LogLevel      string
}

// NewConfig creates a Config from the flags and arguments of a command.
// The command expects exactly one argument, the table file.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if ctx.Args().Len() != 1 {
		return nil, errors.Newf("command %s expects exactly one table file, got %d arguments", ctx.Command.Name, ctx.Args().Len())
	}
	cfg := createConfigFromFlags(ctx)
	cfg.TableFile = ctx.Args().First()
	if ctx.IsSet(SeedFlag.Name) {
		seed := getFlagValue(ctx, SeedFlag).(int64)
		cfg.Seed = &seed
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Count:         getFlagValue(ctx, CountFlag).(int),
		Remove:        getFlagValue(ctx, RemoveFlag).([]string),
		Tolerance:     getFlagValue(ctx, ToleranceFlag).(float64),
		MaxIterations: getFlagValue(ctx, MaxIterationsFlag).(uint64),
		ReportDb:      getFlagValue(ctx, ReportDbFlag).(string),
		Port:          getFlagValue(ctx, PortFlag).(string),
		Output:        getFlagValue(ctx, OutputFlag).(string),
		LogLevel:      getFlagValue(ctx, logger.LogLevelFlag).(string),
	}
	return cfg
}

func (cfg *Config) validate() error {
	if cfg.Count <= 0 {
		return errors.Newf("count must be positive, got %d", cfg.Count)
	}
	if !(cfg.Tolerance > 0) {
		return errors.Newf("tolerance must be positive, got %v", cfg.Tolerance)
	}
	if cfg.MaxIterations == 0 {
		return errors.New("max-iterations must be positive")
	}
	return nil
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Uint64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint64(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		case cli.StringSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.StringSlice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Uint64Flag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	case cli.StringSliceFlag:
		if f.Value == nil {
			return []string{}
		}
		return f.Value.Value()
	}

	return nil
}
