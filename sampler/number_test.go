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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_String(t *testing.T) {
	tests := map[Number]string{
		Int(-1):            "-1",
		Int(0):             "0",
		Float(1):           "1.0",
		Float(-2):          "-2.0",
		Float(0.25):        "0.25",
		Float(1e21):        "1e+21",
		Float(math.Inf(1)): "+Inf",
	}
	for n, want := range tests {
		assert.Equal(t, want, n.String())
	}
}

func TestNumber_KeysCompareNumerically(t *testing.T) {
	assert.Equal(t, Int(1).key(), Float(1).key())
	assert.Equal(t, Int(-3).key(), Float(-3).key())
	assert.NotEqual(t, Int(1).key(), Float(1.5).key())
	assert.NotEqual(t, Float(0.5).key(), Float(0.25).key())
	assert.Equal(t, Float(0.5).key(), Float(0.5).key())
}

func TestNumber_Less(t *testing.T) {
	assert.True(t, less(Int(-1), Float(0.5)))
	assert.True(t, less(Float(0.5), Int(1)))
	assert.False(t, less(Int(2), Int(2)))
	assert.True(t, less(Int(2), Float(2)))
	assert.False(t, less(Float(2), Int(2)))
}

func TestNumber_Constructors(t *testing.T) {
	assert.Equal(t, []Number{Int(1), Int(2)}, Ints(1, 2))
	assert.Equal(t, []Number{Float(0.5)}, Floats(0.5))
	assert.Empty(t, Ints())
}

func TestParseNumber(t *testing.T) {
	tests := map[string]Number{
		"0":                    Int(0),
		"-17":                  Int(-17),
		" 42 ":                 Int(42),
		"1.0":                  Float(1),
		"-0.5":                 Float(-0.5),
		"1e3":                  Float(1000),
		"2E-1":                 Float(0.2),
		"99999999999999999999": Float(1e20),
	}
	for lit, want := range tests {
		got, err := ParseNumber(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, want, got, lit)
	}

	for _, lit := range []string{"", "x", "1.2.3", "0x"} {
		_, err := ParseNumber(lit)
		assert.ErrorIs(t, err, ErrInvalidValue, lit)
	}
}
