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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Number is a numeric outcome of a Sampler. Draws return the stored Number
// unchanged, so an outcome inserted as Int is drawn as Int and an outcome
// inserted as Float is drawn as Float.
//
// Outcomes compare by numeric value: Int(1) and Float(1.0) denote the same
// outcome.
type Number interface {
	Float64() float64
	String() string
	key() numKey
}

// Int is an integer outcome.
type Int int64

// Float is a real-valued outcome.
type Float float64

// numKey is the canonical lookup key of a Number; integral floats share the
// key of the corresponding Int.
type numKey struct {
	i    int64
	f    float64
	frac bool
}

func (n Int) Float64() float64 {
	return float64(n)
}

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Int) key() numKey {
	return numKey{i: int64(n)}
}

func (n Float) Float64() float64 {
	return float64(n)
}

// String formats the float so that it stays recognisable as a real number,
// e.g. 1.0 instead of 1.
func (n Float) String() string {
	s := strconv.FormatFloat(float64(n), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func (n Float) key() numKey {
	x := float64(n)
	if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
		return numKey{i: int64(x)}
	}
	return numKey{f: x, frac: true}
}

// Ints converts integers into outcomes.
func Ints(xs ...int64) []Number {
	values := make([]Number, len(xs))
	for i, x := range xs {
		values[i] = Int(x)
	}
	return values
}

// Floats converts real numbers into outcomes.
func Floats(xs ...float64) []Number {
	values := make([]Number, len(xs))
	for i, x := range xs {
		values[i] = Float(x)
	}
	return values
}

// less orders outcomes by numeric value; on ties Int sorts before Float.
func less(a, b Number) bool {
	x, y := a.Float64(), b.Float64()
	if x != y {
		return x < y
	}
	_, aInt := a.(Int)
	_, bInt := b.(Int)
	return aInt && !bInt
}

// ParseNumber reads a decimal literal. Literals without a fraction or an
// exponent that fit into 64 bits become Int, all others Float.
func ParseNumber(lit string) (Number, error) {
	lit = strings.TrimSpace(lit)
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	x, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidValue, "cannot parse %q", lit)
	}
	return Float(x), nil
}
