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

package editscript

import (
	"iter"

	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/myers"
)

// Segment describes a maximal run of same-kind edits with half-open range endpoints in both
// input slices' index spaces.
//
//   - For Match, x[PosX:EndX] and y[PosY:EndY] are the matching ranges and have equal length.
//   - For Remove, x[PosX:EndX] is the removed range and PosY == EndY.
//   - For Insert, y[PosY:EndY] is the inserted range and PosX == EndX.
type Segment struct {
	Op         Op
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Segments is a restartable, random-access view over the segments of an edit path in
// source/target order. It is the natural representation for consumers that want the common core
// of two slices (e.g. structure-aware diffing) rather than a flat change list.
//
// Segments does not retain the slices it was computed from. The zero value is an empty view.
type Segments struct {
	path myers.Path
}

// SegmentsOf compares the contents of x and y and returns the minimal edit path between them as
// segments.
//
// The following option is supported: [WithBuffer]
func SegmentsOf[T comparable](x, y []T, opts ...Option) Segments {
	cfg := config.FromOptions(opts, config.Buffer)
	return Segments{path: myers.Diff(x, y, cfg.Frontier)}
}

// SegmentsOfFunc is like [SegmentsOf] using the provided equivalence.
//
// The following option is supported: [WithBuffer]
func SegmentsOfFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) Segments {
	cfg := config.FromOptions(opts, config.Buffer)
	return Segments{path: myers.DiffFunc(x, y, eq, cfg.Frontier)}
}

// Len returns the number of segments.
func (s Segments) Len() int { return s.path.Len() }

// At returns the i-th segment in O(1). It requires 0 <= i < Len().
func (s Segments) At(i int) Segment { return fromPathSegment(s.path.At(i)) }

// All returns an iterator over all segments in source/target order. The iterator can be replayed
// any number of times.
func (s Segments) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for seg := range s.path.All() {
			if !yield(fromPathSegment(seg)) {
				return
			}
		}
	}
}

func fromPathSegment(seg myers.Segment) Segment {
	var op Op
	switch seg.Op {
	case myers.Match:
		op = Match
	case myers.Remove:
		op = Remove
	case myers.Insert:
		op = Insert
	default:
		panic("never reached")
	}
	return Segment{Op: op, PosX: seg.S0, EndX: seg.S1, PosY: seg.T0, EndY: seg.T1}
}
