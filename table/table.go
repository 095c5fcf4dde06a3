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

// Package table reads and writes outcome tables, the files describing the
// values a sampler draws and their probabilities.
package table

import (
	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/cockroachdb/errors"
)

var (
	ErrUnknownFormat        = errors.New("unknown table format")
	ErrMixedProbabilities   = errors.New("probability given for some outcomes only")
	ErrSchemaViolation      = errors.New("table does not match schema")
	ErrUnrepresentableValue = errors.New("value cannot be written")
)

// Outcome is one row of a table. A nil Probability means the probability
// is left to the sampler.
type Outcome struct {
	Value       sampler.Number
	Probability *float64
}

// File is the content of a table file.
type File struct {
	Seed     *int64
	Outcomes []Outcome
}

// Values returns the outcome values in file order.
func (f *File) Values() []sampler.Number {
	values := make([]sampler.Number, len(f.Outcomes))
	for i, o := range f.Outcomes {
		values[i] = o.Value
	}
	return values
}

// Probabilities returns the outcome probabilities in file order, or nil if
// the file assigns none.
func (f *File) Probabilities() ([]float64, error) {
	given := 0
	for _, o := range f.Outcomes {
		if o.Probability != nil {
			given++
		}
	}
	if given == 0 {
		return nil, nil
	}
	if given != len(f.Outcomes) {
		return nil, errors.Wrapf(ErrMixedProbabilities, "%d of %d outcomes have a probability", given, len(f.Outcomes))
	}
	probs := make([]float64, len(f.Outcomes))
	for i, o := range f.Outcomes {
		probs[i] = *o.Probability
	}
	return probs, nil
}

// Sampler creates a sampler for the table. The seed of the file, if any, is
// applied first, so a WithSeed option overrides it.
func (f *File) Sampler(opts ...sampler.Option) (*sampler.Sampler, error) {
	probs, err := f.Probabilities()
	if err != nil {
		return nil, err
	}
	if f.Seed != nil {
		opts = append([]sampler.Option{sampler.WithSeed(*f.Seed)}, opts...)
	}
	return sampler.New(f.Values(), probs, opts...)
}

// FromSampler captures the current table and seed of a sampler.
func FromSampler(s *sampler.Sampler) *File {
	f := &File{}
	if seed, ok := s.Seed(); ok {
		f.Seed = &seed
	}
	probs := s.Probabilities()
	for i, v := range s.Values() {
		f.Outcomes = append(f.Outcomes, Outcome{Value: v, Probability: &probs[i]})
	}
	return f
}
