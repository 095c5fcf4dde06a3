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

import "sync"

// Synchronized serialises all operations on a Sampler with one mutex, so a
// draw never observes a removal half done.
type Synchronized struct {
	mu sync.Mutex
	s  *Sampler
}

// NewSynchronized wraps s. The caller must not use s directly afterwards.
func NewSynchronized(s *Sampler) *Synchronized {
	return &Synchronized{s: s}
}

func (l *Synchronized) Next() Number {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Next()
}

func (l *Synchronized) Sample(k int) ([]Number, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Sample(k)
}

func (l *Synchronized) Remove(sel Selector) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Remove(sel)
}

func (l *Synchronized) Contains(v Number) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Contains(v)
}

func (l *Synchronized) ProbabilityOf(v Number) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.ProbabilityOf(v)
}

func (l *Synchronized) Probabilities() []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Probabilities()
}

func (l *Synchronized) Seed() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Seed()
}

func (l *Synchronized) SetSeed(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.SetSeed(seed)
}

func (l *Synchronized) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.String()
}
