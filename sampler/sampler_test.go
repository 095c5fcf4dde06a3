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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/0xsoniclabs/randgen/logger"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixture is a value table with (optional) probabilities.
type fixture struct {
	values []Number
	probs  []float64
}

// userFixedData mixes integer and real outcomes; 1.0 must come back as a Float.
func userFixedData() fixture {
	return fixture{
		values: []Number{Int(-1), Int(0), Float(1.0), Int(2), Int(3)},
		probs:  []float64{0.01, 0.3, 0.58, 0.1, 0.01},
	}
}

// pairData draws two distinct values in [1,1000) with random probabilities.
func pairData(rg *rand.Rand) fixture {
	a, b := 1+rg.Int63n(999), 1+rg.Int63n(999)
	for a == b {
		b = 1 + rg.Int63n(999)
	}
	p := 0.01 + 0.98*rg.Float64()
	return fixture{
		values: Ints(a, b),
		probs:  []float64{p, 1 - p},
	}
}

// biggerEqualData draws between 100 and 1000 distinct values without
// probabilities, so all of them are equally likely.
func biggerEqualData(rg *rand.Rand) fixture {
	n := 100 + rg.Intn(900)
	seen := map[int64]bool{}
	values := []Number{}
	for range n {
		x := rg.Int63n(1_100_000) - 1_000_000
		if !seen[x] {
			seen[x] = true
			values = append(values, Int(x))
		}
	}
	return fixture{values: values}
}

func fixtures() map[string]fixture {
	rg := rand.New(rand.NewSource(123))
	return map[string]fixture{
		"userFixed":   userFixedData(),
		"pairFixed":   pairData(rg),
		"pairDynamic": pairData(rand.New(rand.NewSource(rand.Int63()))),
		"biggerEqual": biggerEqualData(rg),
	}
}

func TestSampler_NewAcceptsValidTables(t *testing.T) {
	for name, data := range fixtures() {
		t.Run(name, func(t *testing.T) {
			s, err := New(data.values, data.probs)
			require.NoError(t, err)
			assert.Equal(t, len(data.values), s.Len())
			assert.Equal(t, data.values, s.Values())
			assert.InDelta(t, 1.0, sum(s.Probabilities()), 1e-9)
			cdf := s.CDF()
			assert.True(t, slices.IsSorted(cdf), "cdf must be non-decreasing")
			assert.InDelta(t, 1.0, cdf[len(cdf)-1], 1e-9)
		})
	}
}

func TestSampler_NewRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name   string
		values []Number
		probs  []float64
		want   error
	}{
		{"empty", []Number{}, []float64{}, ErrEmptyInput},
		{"nil", nil, nil, ErrEmptyInput},
		{"length mismatch", Ints(-1, 0, 1), []float64{0.1, 0.1}, ErrLengthMismatch},
		{"out of range", Ints(-1, 0, 1), []float64{-0.1, 1.1, 0.0}, ErrInvalidProbability},
		{"zero probability", Ints(-1, 0, 1), []float64{0.5, 0.5, 0.0}, ErrInvalidProbability},
		{"total not one", Ints(-1, 0, 1), []float64{0.3, 0.3, 0.3}, ErrInvalidProbability},
		{"NaN probability", Ints(-1, 0), []float64{math.NaN(), 1.0}, ErrInvalidProbability},
		{"duplicate", Ints(1, 2, 1), nil, ErrDuplicateValue},
		{"duplicate across kinds", []Number{Int(1), Float(1.0)}, nil, ErrDuplicateValue},
		{"NaN value", []Number{Int(1), Float(math.NaN())}, nil, ErrInvalidValue},
		{"nil value", []Number{Int(1), nil}, nil, ErrInvalidValue},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := New(test.values, test.probs)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, test.want), "want %v, got %v", test.want, err)
		})
	}
}

func TestSampler_NewChecksDuplicatesBeforeProbabilities(t *testing.T) {
	_, err := New(Ints(1, 1), []float64{0.5})
	assert.ErrorIs(t, err, ErrDuplicateValue)
}

func TestSampler_NewDefaultsToEqualProbabilities(t *testing.T) {
	s, err := New(Ints(10, 20, 30, 40), nil)
	require.NoError(t, err)
	for _, p := range s.Probabilities() {
		assert.Equal(t, 0.25, p)
	}
}

func TestSampler_NewDoesNotAliasInputs(t *testing.T) {
	values := Ints(-1, 0, 1)
	probs := []float64{0.3, 0.3, 0.4}
	s, err := New(values, probs)
	require.NoError(t, err)

	values[0] = Int(42)
	probs[0] = 0.9
	assert.Equal(t, Ints(-1, 0, 1), s.Values())
	assert.Equal(t, []float64{0.3, 0.3, 0.4}, s.Probabilities())

	// returned slices are copies as well
	s.Values()[1] = Int(7)
	s.Probabilities()[1] = 0.0
	s.CDF()[2] = 0.0
	assert.True(t, s.Contains(Int(0)))
	p, err := s.ProbabilityOf(Int(0))
	require.NoError(t, err)
	assert.Equal(t, 0.3, p)
	assert.InDelta(t, 1.0, s.CDF()[2], 1e-12)
}

func TestSampler_ValidationHasNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	// no calls on the source are expected
	_, err := New(Ints(1, 2), []float64{0.5}, WithSource(src), WithSeed(5))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSampler_ContainsAndProbabilityOf(t *testing.T) {
	data := userFixedData()
	s, err := New(data.values, data.probs)
	require.NoError(t, err)

	for i, v := range data.values {
		assert.True(t, s.Contains(v))
		p, err := s.ProbabilityOf(v)
		require.NoError(t, err)
		assert.Equal(t, data.probs[i], p)
	}
	// numeric equality across kinds
	assert.True(t, s.Contains(Int(1)))
	assert.True(t, s.Contains(Float(2)))
	assert.False(t, s.Contains(Float(2.5)))
	assert.False(t, s.Contains(nil))

	_, err = s.ProbabilityOf(Int(4))
	assert.ErrorIs(t, err, ErrValueNotFound)
}

func TestSampler_NewFromMap(t *testing.T) {
	s, err := NewFromMap(map[Number]float64{
		Int(1):    0.4,
		Int(-1):   0.3,
		Float(.5): 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, []Number{Int(-1), Float(.5), Int(1)}, s.Values())
	assert.Equal(t, []float64{0.3, 0.3, 0.4}, s.Probabilities())

	_, err = NewFromMap(map[Number]float64{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = NewFromMap(map[Number]float64{Int(1): 0.5, Float(1): 0.5})
	assert.ErrorIs(t, err, ErrDuplicateValue)

	_, err = NewFromMap(map[Number]float64{Int(1): 0.5, Int(2): 0.6})
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestSampler_NewFromMapIsReproducible(t *testing.T) {
	m := map[Number]float64{}
	for i := range 50 {
		m[Int(int64(i))] = 1.0 / 50
	}
	a, err := NewFromMap(m, WithSeed(77))
	require.NoError(t, err)
	b, err := NewFromMap(m, WithSeed(77))
	require.NoError(t, err)
	drawsA, err := a.Sample(100)
	require.NoError(t, err)
	drawsB, err := b.Sample(100)
	require.NoError(t, err)
	assert.Equal(t, drawsA, drawsB)
}

func TestSampler_String(t *testing.T) {
	s, err := New(Ints(-1, 0, 1), []float64{0.3, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, "{1: 40.00%, -1: 30.00%, 0: 30.00%}", s.String())

	data := userFixedData()
	s, err = New(data.values, data.probs)
	require.NoError(t, err)
	assert.Equal(t, "{1.0: 58.00%, 0: 30.00%, 2: 10.00%, -1: 1.00%, 3: 1.00%}", s.String())
}

func TestSampler_LogsThroughGivenLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	src := NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().Seed(int64(3)),
		log.EXPECT().Debugf("seeded with %d", int64(3)),
		log.EXPECT().Debugf("created sampler with %d values", 3),
		log.EXPECT().Debugf("removed value %v with probability %v; %d values left", Int(0), 0.3, 2),
	)

	s, err := New(Ints(-1, 0, 1), []float64{0.3, 0.3, 0.4}, WithSource(src), WithSeed(3), WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, s.RemoveValue(Int(0)))
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
