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

import (
	"slices"

	"znkr.io/editscript/internal/frontier"
)

// sentinel marks frontier cells that have not been filled in by the search. Rows are appended
// sentinel-filled before the k-loop runs so that the history has deterministic row shapes even
// when the search terminates in the middle of a row.
const sentinel = -1

// Diff compares the contents of x and y and returns the coalesced edit path that transforms one
// into the other.
//
// If store is non-nil, it is used as the frontier buffer for this run. The caller must not touch
// the store until Diff returns.
func Diff[T comparable](x, y []T, store *frontier.Store) Path {
	return DiffFunc(x, y, func(a, b T) bool { return a == b }, store)
}

// DiffFunc compares the contents of x and y using the provided equivalence and returns the
// coalesced edit path that transforms one into the other.
//
// eq must be an equivalence relation over the elements actually compared. If it is not, the
// resulting path is still structurally valid but may not describe a minimal edit script.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, store *frontier.Store) Path {
	n, m := len(x), len(y)
	if store == nil {
		store = new(frontier.Store)
	}
	store.Reset()

	// Skip the common prefix to find the first frontier endpoint.
	s, t := 0, 0
	for s < n && t < m && eq(x[s], y[t]) {
		s++
		t++
	}

	// If one side is now fully consumed, the edit script is a single removal or insertion span (or
	// empty) and there is no need to run the search at all.
	switch {
	case s == n && t == m:
		if n == 0 && m == 0 {
			return Path{points: []Endpoint{{0, 0}}}
		}
		return Path{points: []Endpoint{{0, 0}, {n, m}}}
	case s == n, t == m:
		points := make([]Endpoint, 0, 3)
		points = append(points, Endpoint{0, 0})
		if s > 0 {
			points = append(points, Endpoint{s, t})
		}
		points = append(points, Endpoint{n, m})
		return Path{points: points}
	}

	// Row 0 holds the single endpoint after the common prefix. Because the prefix advances both
	// coordinates equally, this endpoint lies on diagonal k = 0.
	store.AppendRow(s)

	// The search proper. x[s:] and y[t:] are guaranteed to differ here, so there is no 0-path and
	// we can start at d = 1. A (possibly trivial) d-path with d = n+m always exists, so the loop
	// terminates without an explicit condition.
	var dist, delta int
search:
	for d := 1; ; d++ {
		store.AppendRow(sentinel)
		for k := -d; k <= d; k += 2 {
			var sd int
			if takeInsertion(store, d, k) {
				sd = store.At(d-1, (d-1+k+1)/2)
			} else {
				sd = store.At(d-1, (d-1+k-1)/2) + 1
			}
			td := sd - k

			// Follow the diagonals as long as possible.
			for sd < n && td < m && eq(x[sd], y[td]) {
				sd++
				td++
			}
			store.Set(d, (d+k)/2, sd)

			// Terminate the first time a d-path reaches (n, m): d is the edit distance and k the
			// final diagonal.
			if sd >= n && td >= m {
				dist, delta = d, k
				break search
			}
		}
	}
	return backtrack(store, dist, delta, n, m)
}

// takeInsertion reports whether the furthest reaching d-path on diagonal k extends the
// (d-1)-path on diagonal k+1 with an insertion (vertical) step rather than the (d-1)-path on
// diagonal k-1 with a removal (horizontal) step.
//
// The tie-break is fixed: the insertion step is taken when k == -d, or when k != d and the removal
// candidate's s-coordinate is strictly behind the insertion candidate's; otherwise the removal
// step is taken. Both the search and the reconstruction use this single decision so that the
// backward walk re-derives exactly the path the forward search took.
func takeInsertion(store *frontier.Store, d, k int) bool {
	switch {
	case k == -d:
		return true
	case k == d:
		return false
	default:
		return store.At(d-1, (d-1+k-1)/2) < store.At(d-1, (d-1+k+1)/2)
	}
}

// backtrack walks the recorded frontier rows from dist down to 1 and produces the coalesced edit
// path from (0, 0) to (n, m).
func backtrack(store *frontier.Store, dist, delta, n, m int) Path {
	// Every iteration contributes at most one change point and one match point, plus the two
	// endpoints of the path.
	points := make([]Endpoint, 0, 2*dist+2)
	points = append(points, Endpoint{n, m})

	sd, k := n, delta
	for d := dist; d > 0; d-- {
		var prevK int
		if takeInsertion(store, d, k) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevS := store.At(d-1, (d-1+prevK)/2)
		prevT := prevS - prevK

		// The path from (prevS, prevT) to the current endpoint consists of one non-diagonal step
		// followed by a possibly empty run of diagonals.
		stepS, stepT := prevS, prevT
		if prevK == k+1 {
			stepT++ // insertion
		} else {
			stepS++ // removal
		}
		if stepS != sd {
			points = appendCoalesced(points, Endpoint{stepS, stepT})
		}
		points = appendCoalesced(points, Endpoint{prevS, prevT})

		sd, k = prevS, prevK
	}
	if sd > 0 {
		// Add back the common prefix skipped before the search.
		points = append(points, Endpoint{0, 0})
	}
	slices.Reverse(points)
	return Path{points: points}
}

// appendCoalesced appends p to the reversed point list, merging consecutive spans of the same
// kind into a single span.
func appendCoalesced(points []Endpoint, p Endpoint) []Endpoint {
	if len(points) >= 2 {
		q, r := points[len(points)-1], points[len(points)-2]
		if spanOp(p, q) == spanOp(q, r) {
			points[len(points)-1] = p
			return points
		}
	}
	return append(points, p)
}

// spanOp classifies the span from a to b, where a precedes b on the path.
func spanOp(a, b Endpoint) Op {
	switch {
	case a.S == b.S:
		return Insert
	case a.T == b.T:
		return Remove
	default:
		return Match
	}
}
