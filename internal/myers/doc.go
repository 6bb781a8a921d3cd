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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation in this package uses the basic greedy variant described in section 2 of the
// paper (Fig. 2), extended to record the full frontier history so that the edit path can be
// reconstructed afterwards without re-running the search.
//
// The runtime of the algorithm is O(ND) where N is the sum of the length of both inputs and D is
// the number of differences; the recorded history takes O(D²) space. This is efficient when the
// inputs are mostly similar and degrades to O(N²) for fully disjoint inputs.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that T is the []byte representation of string and the inputs are x =
// "ABCABBA" and y = "CBABAC". Then we can represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex (intersections in the graph above) corresponds to a state. The top left (0,0)
// corresponds to x and bottom right (7,6) to y.
//
// Every edge represents an edit. A step to the right represents a removal of an element (e.g.
// moving from (0,0) to (1,0) removes the first "A") and a step down represents an insertion (e.g.
// moving from (0,0) to (0,1) inserts a "C"). When both elements are equivalent, we also have
// diagonal edges representing a match.
//
// The idea behind Myers' algorithm is to find an optimal diff (fewest insertions and removals) by
// finding a minimum-cost path from the top left (i.e. x) to the bottom right (i.e. y) where
// horizontal and vertical edges have a cost of 1 and diagonal edges have a cost of 0.
//
// We're going to use s and t for the horizontal and vertical coordinates and k = s - t for
// diagonals. The k=0 diagonal is the diagonal starting in (0, 0).
//
// Let a d-path be a path that has exactly d non-diagonal edges. A 0-path consists of only diagonal
// edges. By induction, it follows that a d-path must consist of a (d-1)-path plus a non-diagonal
// edge plus a possibly empty sequence of diagonal edges.
//
// Lemma 1: A d-path must end on diagonal k in {-d, -d+2, ..., d-2, d}.
//
// A d-path is furthest reaching in diagonal k if and only if it is one of the d-paths ending on
// diagonal k whose end point has the greatest possible s-coordinate of all such paths.
//
// Lemma 2: A furthest reaching d-path on diagonal k can without loss of generality be decomposed
// into a furthest reaching (d-1)-path on diagonal k-1, followed by a horizontal edge, followed by
// the longest possible sequence of diagonal edges, or into a furthest reaching (d-1)-path on
// diagonal k+1, followed by a vertical edge, followed by the longest possible sequence of diagonal
// edges.
//
// The lemma provides a greedy algorithm: iterate d = 1, 2, ... and for every d compute the
// endpoint of the furthest reaching d-path for every diagonal k in {-d, ..., d} with d+k even from
// the endpoints of the previous iteration, following diagonal edges as far as possible after the
// one non-diagonal step ("diagonal snapping", this is what gives the O(ND) bound). The first
// d-path that reaches (N, M) is optimal and d is the edit distance.
//
// When both candidate predecessors reach equally far, the horizontal (removal) step is taken; the
// vertical (insertion) step is taken only when k == -d or when the removal candidate is strictly
// behind. This tie-break is fixed: the reconstruction in this package re-derives the decisions of
// the search from the recorded history and depends on both directions agreeing on it.
//
// In contrast to the linear-space refinement in section 4 of the paper, this variant keeps the
// endpoints of every iteration (one triangular-matrix row per d, see [frontier.Store]) and walks
// them backwards from d to 1 to emit the edit path.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
