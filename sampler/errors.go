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
	"github.com/0xsoniclabs/randgen/statistics/discrete"
	"github.com/cockroachdb/errors"
)

// Errors reported by a Sampler. They signal misuse by the caller and are
// never retried; use errors.Is to test for them.
var (
	ErrEmptyInput         = errors.New("at least one value is required")
	ErrInvalidValue       = errors.New("value is not a number")
	ErrDuplicateValue     = errors.New("values cannot repeat")
	ErrLengthMismatch     = errors.New("number of probabilities does not match number of values")
	ErrInvalidProbability = discrete.ErrInvalidProbability
	ErrAmbiguousSelector  = errors.New("specify either a value or an index")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrValueNotFound      = errors.New("value not present")
	ErrSingleElement      = errors.New("cannot remove the only value left")
	ErrInvalidCount       = errors.New("count must be a positive integer")
)
