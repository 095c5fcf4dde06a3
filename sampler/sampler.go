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

// Package sampler draws numeric outcomes from a finite table of values with
// assigned probabilities. A draw maps a uniform random number onto the
// cumulative distribution of the table by binary search.
//
// A Sampler is not safe for concurrent use; see Synchronized.
package sampler

import (
	"math"
	"slices"
	"sort"

	"github.com/0xsoniclabs/randgen/logger"
	"github.com/0xsoniclabs/randgen/statistics/discrete"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
)

// Sampler draws values with given probabilities.
type Sampler struct {
	values []Number       // outcomes in table order
	probs  []float64      // probability of each outcome
	cdf    []float64      // cumulative distribution of probs
	index  map[numKey]int // position of each outcome
	source Source
	seed   *int64 // last applied seed, nil if never seeded
	log    logger.Logger
}

// Option configures a Sampler at construction.
type Option func(*options)

type options struct {
	seed   *int64
	source Source
	log    logger.Logger
}

// WithSeed seeds the random source right after the table is validated.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithSource replaces the default math/rand source.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger sets the logger; by default only errors are logged.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New creates a sampler drawing values with the given probabilities.
// probabilities[i] is the probability of values[i]; if probabilities is
// empty all values are equally likely. Neither slice is retained.
func New(values []Number, probabilities []float64, opts ...Option) (*Sampler, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	index, err := checkValues(values)
	if err != nil {
		return nil, err
	}
	probs, err := checkProbabilities(len(values), probabilities)
	if err != nil {
		return nil, err
	}

	if o.source == nil {
		o.source = NewSource()
	}
	if o.log == nil {
		o.log = logger.NewLogger("ERROR", "Sampler")
	}
	s := &Sampler{
		values: slices.Clone(values),
		probs:  probs,
		cdf:    discrete.CDF(probs),
		index:  index,
		source: o.source,
		log:    o.log,
	}
	if o.seed != nil {
		s.SetSeed(*o.seed)
	}
	s.log.Debugf("created sampler with %d values", len(s.values))
	return s, nil
}

// NewFromMap creates a sampler from a value to probability mapping. Values
// are ordered ascending so that seeded samplers are reproducible.
func NewFromMap(m map[Number]float64, opts ...Option) (*Sampler, error) {
	values := maps.Keys(m)
	sort.Slice(values, func(i, j int) bool {
		return less(values[i], values[j])
	})
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = m[v]
	}
	return New(values, probs, opts...)
}

// checkValues checks that there is at least one value, that every value is a
// number and that no value repeats. It returns the position of each value.
func checkValues(values []Number) (map[numKey]int, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	index := make(map[numKey]int, len(values))
	for i, v := range values {
		if v == nil || math.IsNaN(v.Float64()) {
			return nil, errors.Wrapf(ErrInvalidValue, "value %v at position %d", v, i)
		}
		if j, found := index[v.key()]; found {
			return nil, errors.Wrapf(ErrDuplicateValue, "value %v at positions %d and %d", v, j, i)
		}
		index[v.key()] = i
	}
	return index, nil
}

// checkProbabilities returns a private copy of valid probabilities, or the
// uniform distribution if none are given.
func checkProbabilities(n int, probabilities []float64) ([]float64, error) {
	if len(probabilities) == 0 {
		return discrete.Uniform(n), nil
	}
	if len(probabilities) != n {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d probabilities for %d values", len(probabilities), n)
	}
	if err := discrete.Check(probabilities); err != nil {
		return nil, err
	}
	return slices.Clone(probabilities), nil
}

// Len returns the number of values.
func (s *Sampler) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in table order.
func (s *Sampler) Values() []Number {
	return slices.Clone(s.values)
}

// Probabilities returns a copy of the probabilities in table order.
func (s *Sampler) Probabilities() []float64 {
	return slices.Clone(s.probs)
}

// CDF returns a copy of the cumulative distribution in table order.
func (s *Sampler) CDF() []float64 {
	return slices.Clone(s.cdf)
}

// Contains reports whether v is one of the values.
func (s *Sampler) Contains(v Number) bool {
	_, found := s.find(v)
	return found
}

// ProbabilityOf returns the current probability of v.
func (s *Sampler) ProbabilityOf(v Number) (float64, error) {
	i, found := s.find(v)
	if !found {
		return 0, errors.Wrapf(ErrValueNotFound, "value %v", v)
	}
	return s.probs[i], nil
}

func (s *Sampler) find(v Number) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, found := s.index[v.key()]
	return i, found
}
