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

package sampler

import (
	"math/rand"
	"time"
)

// Source is a reseedable generator of uniform random numbers in [0,1).
// *rand.Rand satisfies it.
//
//go:generate mockgen -source source.go -destination source_mock.go -package sampler
type Source interface {
	// Seed reinitialises the generator deterministically.
	Seed(seed int64)
	// Float64 returns a uniform random number in [0,1).
	Float64() float64
}

// NewSource returns the default source: a local math/rand generator seeded
// from the clock, leaving the global generator untouched.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
