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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSampler_NextReturnsStoredValues(t *testing.T) {
	for name, data := range fixtures() {
		t.Run(name, func(t *testing.T) {
			s, err := New(data.values, data.probs, WithSeed(42))
			require.NoError(t, err)
			for range 1000 {
				v := s.Next()
				i, found := s.find(v)
				require.True(t, found, "drawn value %v is not in the table", v)
				assert.Equal(t, reflect.TypeOf(data.values[i]), reflect.TypeOf(v))
				assert.Equal(t, data.values[i], v)
			}
		})
	}
}

func TestSampler_NextPreservesNumberKind(t *testing.T) {
	data := userFixedData()
	s, err := New(data.values, data.probs, WithSeed(1))
	require.NoError(t, err)

	kinds := map[string]int{}
	for range 1000 {
		switch v := s.Next().(type) {
		case Float:
			assert.Equal(t, Float(1.0), v)
			kinds["float"]++
		case Int:
			assert.NotEqual(t, Int(1), v)
			kinds["int"]++
		default:
			t.Fatalf("unexpected type %T", v)
		}
	}
	assert.Positive(t, kinds["float"])
	assert.Positive(t, kinds["int"])
}

func TestSampler_NextMapsUniformDrawsOntoCDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	data := userFixedData() // cdf: 0.01, 0.31, 0.89, 0.99, 1.0
	s, err := New(data.values, data.probs, WithSource(src))
	require.NoError(t, err)

	tests := []struct {
		u    float64
		want Number
	}{
		{0.0, Int(-1)},
		{0.0099, Int(-1)},
		{0.01, Int(0)}, // a draw on a boundary belongs to the next value
		{0.3, Int(0)},
		{0.5, Float(1.0)},
		{0.95, Int(2)},
		{0.999999, Int(3)},
		{1.0, Int(3)},
	}
	for _, test := range tests {
		src.EXPECT().Float64().Return(test.u)
		assert.Equal(t, test.want, s.Next(), "u=%v", test.u)
	}
}

func TestSampler_NextNeverDrawsRemovedValues(t *testing.T) {
	s, err := New(Ints(-1, 0, 1), []float64{0.3, 0.3, 0.4}, WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, s.RemoveValue(Int(0)))
	for range 10_000 {
		assert.NotEqual(t, Int(0), s.Next())
	}
}

func TestSampler_NextConverges(t *testing.T) {
	s, err := New(Ints(-1, 0, 1), []float64{0.3, 0.3, 0.4}, WithSeed(123))
	require.NoError(t, err)

	const n = 200_000
	counts := map[Number]int{}
	for range n {
		counts[s.Next()]++
	}
	assert.InDelta(t, 0.4, float64(counts[Int(1)])/n, 0.005)
	assert.InDelta(t, 0.3, float64(counts[Int(0)])/n, 0.005)
	assert.InDelta(t, 0.3, float64(counts[Int(-1)])/n, 0.005)
}

func TestSampler_NextKYieldsExactlyK(t *testing.T) {
	s, err := New(Ints(-1, 0, 1), nil, WithSeed(3))
	require.NoError(t, err)

	seq, err := s.NextK(42)
	require.NoError(t, err)
	count := 0
	for v := range seq {
		assert.True(t, s.Contains(v))
		count++
	}
	assert.Equal(t, 42, count)

	// every pass over the sequence draws afresh
	count = 0
	for range seq {
		count++
	}
	assert.Equal(t, 42, count)
}

func TestSampler_NextKStopsEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.5).Times(3)

	s, err := New(Ints(1, 2), nil, WithSource(src))
	require.NoError(t, err)
	seq, err := s.NextK(10)
	require.NoError(t, err)
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestSampler_NextKRejectsInvalidCount(t *testing.T) {
	s, err := New(Ints(1, 2), nil)
	require.NoError(t, err)
	for _, k := range []int{0, -1, -3} {
		seq, err := s.NextK(k)
		assert.Nil(t, seq)
		assert.ErrorIs(t, err, ErrInvalidCount)

		draws, err := s.Sample(k)
		assert.Nil(t, draws)
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestSampler_AllIsUnbounded(t *testing.T) {
	s, err := New(Ints(5), nil, WithSeed(1))
	require.NoError(t, err)
	count := 0
	for v := range s.All() {
		assert.Equal(t, Int(5), v)
		count++
		if count == 500 {
			break
		}
	}
	assert.Equal(t, 500, count)
}

func TestSampler_SameSeedSameDraws(t *testing.T) {
	data := userFixedData()
	a, err := New(data.values, data.probs, WithSeed(2024))
	require.NoError(t, err)
	b, err := New(data.values, data.probs, WithSeed(2024))
	require.NoError(t, err)

	drawsA, err := a.Sample(1000)
	require.NoError(t, err)
	drawsB, err := b.Sample(1000)
	require.NoError(t, err)
	assert.Equal(t, drawsA, drawsB)

	// reseeding replays the sequence
	a.SetSeed(2024)
	again, err := a.Sample(1000)
	require.NoError(t, err)
	assert.Equal(t, drawsA, again)
}

func TestSampler_SeedIsRecorded(t *testing.T) {
	s, err := New(Ints(1, 2), nil)
	require.NoError(t, err)
	_, ok := s.Seed()
	assert.False(t, ok)

	s.SetSeed(-17)
	seed, ok := s.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(-17), seed)

	s, err = New(Ints(1, 2), nil, WithSeed(8))
	require.NoError(t, err)
	seed, ok = s.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(8), seed)
}

func TestSampler_SetSeedReseedsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	s, err := New(Ints(1, 2), nil, WithSource(src))
	require.NoError(t, err)

	src.EXPECT().Seed(int64(99))
	s.SetSeed(99)
}
