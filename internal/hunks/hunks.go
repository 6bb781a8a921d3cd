// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package hunks groups the change segments of a path into hunks with a limited number of matching
// elements as context around each block of changes.
package hunks

import (
	"iter"

	"znkr.io/editscript/internal/myers"
)

// Hunk describes a run of segments that contains at least one change, extended by up to context
// matching elements on either side. Two blocks of changes separated by at most 2*context matching
// elements end up in the same hunk.
type Hunk struct {
	S0, S1 int // range in x
	T0, T1 int // range in y
}

// Of iterates over the hunks of p.
func Of(p myers.Path, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n := p.Len()
		var h Hunk
		open := false
		for i := range n {
			seg := p.At(i)
			if seg.Op != myers.Match {
				if open {
					h.S1, h.T1 = seg.S1, seg.T1
					continue
				}
				h = Hunk{S0: seg.S0, S1: seg.S1, T0: seg.T0, T1: seg.T1}
				open = true
				if i > 0 {
					// The path is coalesced, so the preceding segment is a match.
					prev := p.At(i - 1)
					c := min(prev.S1-prev.S0, context)
					h.S0 -= c
					h.T0 -= c
				}
				continue
			}
			if !open {
				continue
			}
			if m := seg.S1 - seg.S0; i == n-1 || m > 2*context {
				c := min(m, context)
				h.S1, h.T1 = seg.S0+c, seg.T0+c
				if !yield(h) {
					return
				}
				open = false
			} else {
				// The gap is small enough that the trailing context of this block and the leading
				// context of the next one would overlap or touch, extend the hunk instead.
				h.S1, h.T1 = seg.S1, seg.T1
			}
		}
		if open {
			yield(h)
		}
	}
}
