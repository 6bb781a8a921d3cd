// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import "iter"

// Endpoint is a point in the edit graph: s is a position in the source sequence, t a position in
// the target sequence.
type Endpoint struct {
	S, T int
}

// Op describes the kind of a path segment.
type Op int

const (
	Match  Op = iota // elements of both sequences match
	Remove           // a removal of elements from the source sequence
	Insert           // an insertion of elements from the target sequence
)

// Segment is a maximal run of same-kind steps in an edit path, with half-open range endpoints in
// both sequences' index spaces.
//
//   - For Match, [S0, S1) and [T0, T1) are the matching ranges and have equal length.
//   - For Remove, [S0, S1) is the removed range and T0 == T1 is the position in the target.
//   - For Insert, [T0, T1) is the inserted range and S0 == S1 is the position in the source.
type Segment struct {
	Op     Op
	S0, S1 int
	T0, T1 int
}

// Path is the coalesced edit path p0, ..., pn produced by the search: p0 = (0, 0), pn = (N, M)
// and consecutive endpoints differ monotonically in s only (a removal span), in t only (an
// insertion span), or in both by equal distance (a match span).
//
// Coalescing keeps the path length proportional to the number of changes, not to the length of
// the inputs.
//
// A Path is an immutable, restartable, random-access view; it does not retain the sequences it
// was computed from.
type Path struct {
	points []Endpoint
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return max(0, len(p.points)-1)
}

// At returns the i-th segment. It requires 0 <= i < Len().
func (p Path) At(i int) Segment {
	a, b := p.points[i], p.points[i+1]
	return Segment{
		Op: spanOp(a, b),
		S0: a.S, S1: b.S,
		T0: a.T, T1: b.T,
	}
}

// All returns an iterator over all segments in source/target order.
func (p Path) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range p.Len() {
			if !yield(p.At(i)) {
				return
			}
		}
	}
}
