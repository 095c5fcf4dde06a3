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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronized_ConcurrentDrawsAndRemovals(t *testing.T) {
	values := make([]Number, 100)
	for i := range values {
		values[i] = Int(int64(i))
	}
	s, err := New(values, nil, WithSeed(5))
	require.NoError(t, err)
	safe := NewSynchronized(s)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				v := safe.Next()
				assert.NotNil(t, v)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 50 {
			assert.NoError(t, safe.Remove(ByValue(Int(int64(i)))))
		}
	}()
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	for i := range 50 {
		assert.False(t, safe.Contains(Int(int64(i))))
	}
	draws, err := safe.Sample(1000)
	require.NoError(t, err)
	for _, v := range draws {
		assert.GreaterOrEqual(t, v.Float64(), 50.0)
	}
}

func TestSynchronized_Delegates(t *testing.T) {
	s, err := New(Ints(-1, 0, 1), []float64{0.3, 0.3, 0.4})
	require.NoError(t, err)
	l := NewSynchronized(s)

	l.SetSeed(11)
	seed, ok := l.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(11), seed)

	p, err := l.ProbabilityOf(Int(1))
	require.NoError(t, err)
	assert.Equal(t, 0.4, p)
	assert.Equal(t, []float64{0.3, 0.3, 0.4}, l.Probabilities())
	assert.Equal(t, "{1: 40.00%, -1: 30.00%, 0: 30.00%}", l.String())
}
