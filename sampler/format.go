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
	"fmt"
	"sort"
	"strings"
)

// String lists the values with their probabilities in percent, most likely
// first, e.g. {1: 40.00%, -1: 30.00%, 0: 30.00%}.
func (s *Sampler) String() string {
	order := make([]int, len(s.values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.probs[order[a]] > s.probs[order[b]]
	})

	var b strings.Builder
	b.WriteString("{")
	for j, i := range order {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %.2f%%", s.values[i], 100*s.probs[i])
	}
	b.WriteString("}")
	return b.String()
}
