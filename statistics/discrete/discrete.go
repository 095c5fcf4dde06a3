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

// Package discrete provides the probability mass function (pmf) arithmetic
// of finite discrete random variables: validation, cumulative distribution,
// inverse lookup and equal-share renormalization.
package discrete

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Tolerance is the absolute deviation from one accepted for the total of a pmf.
const Tolerance = 1e-9

// ErrInvalidProbability is returned for a pmf that has an entry outside
// of (0,1] or whose total is not one.
var ErrInvalidProbability = errors.New("invalid probability")

// Check checks if the given probability mass function (pmf) of a
// discrete finite random variable is valid. A valid pmf has all
// probabilities in the range (0,1], and the sum of all probabilities
// must be 1.
func Check(f []float64) error {
	for i, x := range f {
		// negated comparison also rejects NaN
		if !(x > 0.0 && x <= 1.0) {
			return errors.Wrapf(ErrInvalidProbability, "probability (%v) at position %d is not in (0,1]", x, i)
		}
	}
	if total := floats.Sum(f); math.Abs(total-1.0) > Tolerance {
		return errors.Wrapf(ErrInvalidProbability, "total is not one (%v)", total)
	}
	return nil
}

// Uniform returns the pmf of n equally likely outcomes.
func Uniform(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = 1.0 / float64(n)
	}
	return f
}

// CDF computes the cumulative distribution function of a pmf by prefix
// summation in the order of the pmf.
func CDF(f []float64) []float64 {
	return floats.CumSum(make([]float64, len(f)), f)
}

// Quantile computes the inverse of a cumulative distribution function.
// For a uniform u in [0,1) it returns the smallest index i with cdf[i] > u.
// If rounding leaves u at or above the last entry, the last index is
// returned. An empty cdf yields 0.
func Quantile(cdf []float64, u float64) int {
	n := len(cdf)
	i := sort.Search(n, func(i int) bool {
		return cdf[i] > u
	})
	if i == n && n > 0 {
		return n - 1
	}
	return i
}

// Redistribute removes the i-th element from the given pmf and spreads its
// probability in equal shares over the remaining elements, so that they
// form a pmf again. A pmf accepted by Check stays valid: entries exceeding
// one by round-off are set to one.
func Redistribute(f []float64, i int) ([]float64, error) {
	n := len(f)
	if n < 2 {
		return nil, errors.Newf("pmf is too short (%d)", n)
	}
	if i < 0 || i >= n {
		return nil, errors.Newf("position %d is not in [0,%d)", i, n)
	}
	if err := Check(f); err != nil {
		return nil, err
	}
	share := f[i] / float64(n-1)
	g := make([]float64, 0, n-1)
	for j, x := range f {
		if j != i {
			g = append(g, math.Min(x+share, 1.0))
		}
	}
	return g, nil
}
