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
	"slices"

	"github.com/0xsoniclabs/randgen/statistics/discrete"
	"github.com/cockroachdb/errors"
)

// Selector names the value to remove, either by Value or by Index but
// never both. A negative Index counts from the end of the table.
type Selector struct {
	Value Number
	Index *int
}

// ByValue selects a value.
func ByValue(v Number) Selector {
	return Selector{Value: v}
}

// ByIndex selects the value at position i.
func ByIndex(i int) Selector {
	return Selector{Index: &i}
}

// Remove deletes the selected value and gives each remaining value an equal
// share of its probability. The last value cannot be removed. On error the
// sampler is left unchanged.
func (s *Sampler) Remove(sel Selector) error {
	i, err := s.resolve(sel)
	if err != nil {
		return err
	}
	n := len(s.values)
	if n <= 1 {
		return errors.Wrapf(ErrSingleElement, "value %v; create a new sampler instead", s.values[i])
	}
	probs, err := discrete.Redistribute(s.probs, i)
	if err != nil {
		return err
	}

	removed, p := s.values[i], s.probs[i]
	values := slices.Delete(slices.Clone(s.values), i, i+1)
	index := make(map[numKey]int, len(values))
	for j, v := range values {
		index[v.key()] = j
	}
	s.values, s.probs, s.cdf, s.index = values, probs, discrete.CDF(probs), index

	s.log.Debugf("removed value %v with probability %v; %d values left", removed, p, len(values))
	return nil
}

// RemoveValue deletes value v; see Remove.
func (s *Sampler) RemoveValue(v Number) error {
	return s.Remove(ByValue(v))
}

// RemoveIndex deletes the value at position i; see Remove.
func (s *Sampler) RemoveIndex(i int) error {
	return s.Remove(ByIndex(i))
}

// resolve returns the table position named by a selector.
func (s *Sampler) resolve(sel Selector) (int, error) {
	n := len(s.values)
	switch {
	case sel.Value == nil && sel.Index == nil:
		return 0, errors.Wrap(ErrAmbiguousSelector, "neither value nor index given")
	case sel.Value != nil && sel.Index != nil:
		return 0, errors.Wrapf(ErrAmbiguousSelector, "both value %v and index %d given", sel.Value, *sel.Index)
	case sel.Index != nil:
		i := *sel.Index
		if i < -n || i >= n {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d is not in [%d,%d)", i, -n, n)
		}
		if i < 0 {
			i += n
		}
		return i, nil
	default:
		i, found := s.find(sel.Value)
		if !found {
			return 0, errors.Wrapf(ErrValueNotFound, "value %v", sel.Value)
		}
		return i, nil
	}
}
