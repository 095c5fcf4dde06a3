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
	"iter"

	"github.com/0xsoniclabs/randgen/statistics/discrete"
	"github.com/cockroachdb/errors"
)

// Next draws one value. Over many draws every value occurs with roughly its
// probability. Each draw advances the random source.
func (s *Sampler) Next() Number {
	u := s.source.Float64()
	return s.values[discrete.Quantile(s.cdf, u)]
}

// All returns an unbounded sequence of draws. The sequence shares the state
// of the random source with all other draws of the sampler; ranging over it
// again continues where the source stands and does not replay earlier draws.
func (s *Sampler) All() iter.Seq[Number] {
	return func(yield func(Number) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// NextK returns a sequence of exactly k fresh draws. k must be positive.
func (s *Sampler) NextK(k int) (iter.Seq[Number], error) {
	if k <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "invalid count %d", k)
	}
	return func(yield func(Number) bool) {
		for range k {
			if !yield(s.Next()) {
				return
			}
		}
	}, nil
}

// Sample collects k fresh draws.
func (s *Sampler) Sample(k int) ([]Number, error) {
	seq, err := s.NextK(k)
	if err != nil {
		return nil, err
	}
	res := make([]Number, 0, k)
	for v := range seq {
		res = append(res, v)
	}
	return res, nil
}
