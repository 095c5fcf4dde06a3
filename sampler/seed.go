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

// Seed returns the most recently applied seed; ok is false if the sampler
// was never seeded.
func (s *Sampler) Seed() (seed int64, ok bool) {
	if s.seed == nil {
		return 0, false
	}
	return *s.seed, true
}

// SetSeed reseeds the random source and records the seed.
func (s *Sampler) SetSeed(seed int64) {
	s.source.Seed(seed)
	s.seed = &seed
	s.log.Debugf("seeded with %d", seed)
}
