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
	"io"

	"github.com/0xsoniclabs/randgen/config"
	"github.com/0xsoniclabs/randgen/logger"
	"github.com/0xsoniclabs/randgen/report"
	"github.com/0xsoniclabs/randgen/sampler"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
)

// DescribeCommand prints the values of a table with their probabilities.
var DescribeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "print the values of an outcome table",
	ArgsUsage: "<table-file>",
	Flags: []cli.Flag{
		&config.RemoveFlag,
		&config.OutputFlag,
		&logger.LogLevelFlag,
	},
}

func describeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Describe")

	s, err := openSampler(cfg, log)
	if err != nil {
		return err
	}
	renderTable(s, ctx.App.Writer)
	return nil
}

// renderTable writes one row per value in table order.
func renderTable(s *sampler.Sampler, w io.Writer) {
	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)
	t.AppendHeader(prettytable.Row{"#", "Value", "Type", "Probability", "Percent", "CDF"})
	t.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	values, probs, cdf := s.Values(), s.Probabilities(), s.CDF()
	for i, v := range values {
		t.AppendRow(prettytable.Row{
			i,
			v.String(),
			report.KindOf(v),
			fmt.Sprintf("%.6f", probs[i]),
			fmt.Sprintf("%.2f%%", 100*probs[i]),
			fmt.Sprintf("%.6f", cdf[i]),
		})
	}
	t.AppendFooter(prettytable.Row{"", fmt.Sprintf("%d values", len(values)), "", "", "", ""})
	t.Render()
}
