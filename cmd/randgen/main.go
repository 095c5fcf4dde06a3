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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/randgen/cmd/randgen/commands"
	"github.com/urfave/cli/v2"
)

// RandgenApp data structure
var RandgenApp = cli.App{
	Name:      "randgen",
	HelpName:  "randgen",
	Usage:     "draw numbers with assigned probabilities",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&commands.DrawCommand,
		&commands.DescribeCommand,
		&commands.ConvergeCommand,
		&commands.VisualizeCommand,
	},
}

// main implements randgen cli.
func main() {
	if err := RandgenApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
