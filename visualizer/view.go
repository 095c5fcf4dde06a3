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

package visualizer

import (
	"fmt"
	"sync"

	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/statistics/convergence"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// numECDFPoints is the maximum number of points of a plotted cdf.
const numECDFPoints = 300

type viewState struct {
	title        string
	labels       []string     // values in table order
	assigned     []float64    // probability of each value
	empirical    []float64    // observed frequency of each value
	cdf          [][2]float64 // assigned cdf over the table positions
	empiricalCDF [][2]float64 // observed cdf over the table positions
	draws        uint64
	chiSquare    float64
	pValue       float64
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(title string, s *sampler.Sampler, hist *convergence.Histogram[sampler.Number]) error {
	if s == nil || hist == nil {
		return fmt.Errorf("visualizer: sampler or histogram is nil")
	}
	derived, err := buildViewState(title, s, hist)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(title string, s *sampler.Sampler, hist *convergence.Histogram[sampler.Number]) (*viewState, error) {
	values := s.Values()
	probs := s.Probabilities()
	target := make(map[sampler.Number]float64, len(values))
	view := &viewState{
		title:     title,
		labels:    make([]string, len(values)),
		assigned:  probs,
		empirical: make([]float64, len(values)),
		draws:     hist.Total(),
	}
	for i, v := range values {
		view.labels[i] = v.String()
		view.empirical[i] = hist.Frequency(v)
		target[v] = probs[i]
	}
	view.cdf = toECDF(view.assigned)
	view.empiricalCDF = toECDF(view.empirical)
	if hist.Total() > 0 {
		stat, p, err := convergence.ChiSquare(hist, target)
		if err != nil {
			return nil, fmt.Errorf("visualizer: chi-square: %w", err)
		}
		view.chiSquare, view.pValue = stat, p
	}
	return view, nil
}

// toECDF accumulates a pmf in table order into the points (i/n, F(i)),
// starting at (0,0), and reduces them to at most numECDFPoints points.
func toECDF(pmf []float64) [][2]float64 {
	n := len(pmf)
	if n == 0 {
		return nil
	}
	ls := orb.LineString{orb.Point{0.0, 0.0}}
	sum := 0.0
	for i, p := range pmf {
		sum += p
		ls = append(ls, orb.Point{float64(i+1) / float64(n), sum})
	}
	simplified := simplify.VisvalingamKeep(numECDFPoints).Simplify(ls).(orb.LineString)

	ecdf := make([][2]float64, len(simplified))
	for i := range simplified {
		ecdf[i] = [2]float64(simplified[i])
	}
	return ecdf
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: distribution not initialised")
	}
	return currentState, nil
}
