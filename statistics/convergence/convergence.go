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

// Package convergence measures how closely a stream of draws follows an
// assigned distribution.
package convergence

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
	"golang.org/x/exp/maps"
)

var (
	ErrNoTarget         = errors.New("empty target distribution")
	ErrInvalidTolerance = errors.New("invalid tolerance")
	ErrUnexpectedValue  = errors.New("value outside of target distribution")
)

// Histogram counts the occurrences of drawn values.
type Histogram[T comparable] struct {
	counts map[T]uint64
	total  uint64
}

// NewHistogram creates an empty histogram.
func NewHistogram[T comparable]() *Histogram[T] {
	return &Histogram[T]{counts: map[T]uint64{}}
}

func (h *Histogram[T]) Add(v T) {
	h.counts[v]++
	h.total++
}

func (h *Histogram[T]) Count(v T) uint64 {
	return h.counts[v]
}

func (h *Histogram[T]) Total() uint64 {
	return h.total
}

// Keys returns the observed values in no particular order.
func (h *Histogram[T]) Keys() []T {
	return maps.Keys(h.counts)
}

// Frequency returns the share of draws equal to v; zero before any draw.
func (h *Histogram[T]) Frequency(v T) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[v]) / float64(h.total)
}

// MaxDeviation returns the largest absolute difference between an observed
// frequency and its target probability.
func (h *Histogram[T]) MaxDeviation(target map[T]float64) float64 {
	dev := 0.0
	for v, p := range target {
		dev = math.Max(dev, math.Abs(h.Frequency(v)-p))
	}
	return dev
}

// Result summarises a convergence run.
type Result struct {
	Iterations   uint64  // number of draws consumed
	MaxDeviation float64 // largest |frequency - probability| at the end
	Converged    bool
}

// Run consumes draws from seq until every observed frequency lies within
// tolerance of its target probability, or maxIterations draws were taken.
// The deviation is evaluated once every len(target) draws. A drawn value
// missing from target is an error.
func Run[T comparable](seq iter.Seq[T], target map[T]float64, tolerance float64, maxIterations uint64) (Result, *Histogram[T], error) {
	h := NewHistogram[T]()
	if len(target) == 0 {
		return Result{}, h, ErrNoTarget
	}
	if !(tolerance > 0) {
		return Result{}, h, errors.Wrapf(ErrInvalidTolerance, "tolerance %v", tolerance)
	}

	stride := uint64(len(target))
	for v := range seq {
		if _, found := target[v]; !found {
			return Result{Iterations: h.total}, h, errors.Wrapf(ErrUnexpectedValue, "value %v", v)
		}
		h.Add(v)
		if h.total%stride == 0 || h.total >= maxIterations {
			if dev := h.MaxDeviation(target); dev <= tolerance {
				return Result{Iterations: h.total, MaxDeviation: dev, Converged: true}, h, nil
			}
		}
		if h.total >= maxIterations {
			break
		}
	}
	return Result{Iterations: h.total, MaxDeviation: h.MaxDeviation(target)}, h, nil
}

// ChiSquare computes Pearson's chi-square statistic of the histogram
// against the target distribution and the probability of a statistic at
// least as large under the target distribution.
func ChiSquare[T comparable](h *Histogram[T], target map[T]float64) (stat float64, pValue float64, err error) {
	if len(target) == 0 {
		return 0, 0, ErrNoTarget
	}
	if h.total == 0 {
		return 0, 0, errors.New("empty histogram")
	}
	for v := range h.counts {
		if _, found := target[v]; !found {
			return 0, 0, errors.Wrapf(ErrUnexpectedValue, "value %v", v)
		}
	}

	n := float64(h.total)
	for v, p := range target {
		expected := n * p
		diff := float64(h.counts[v]) - expected
		stat += diff * diff / expected
	}
	df := float64(len(target) - 1)
	if df == 0 {
		return stat, 1, nil
	}
	return stat, distuv.ChiSquared{K: df, Src: nil}.Survival(stat), nil
}
