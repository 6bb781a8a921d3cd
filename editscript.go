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
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/frontier"
	"znkr.io/editscript/internal/myers"
)

// Op describes the kind of a change or segment.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Two sequence elements match (segments only, never a change)
	Remove           // A removal of an element from the source sequence
	Insert           // An insertion of an element from the target sequence
)

// Change is a single elemental edit of a [Difference].
//
//   - For Remove, Offset is the zero-based position of Element in the source sequence.
//   - For Insert, Offset is the zero-based position of Element in the target sequence.
//
// AssociatedWith, when non-nil, is the offset of a change of the opposite kind that this change is
// considered moved with; the relation is always symmetric in a valid Difference.
type Change[T any] struct {
	Op             Op
	Offset         int
	Element        T
	AssociatedWith *int
}

// Buffer is reusable scratch space for diff computations, see [WithBuffer]. Reusing a buffer
// avoids reallocating the search frontier history across runs.
//
// A Buffer must not be used by more than one computation at a time. The zero value is ready
// for use.
type Buffer struct {
	store frontier.Store
}

// Diff compares the contents of x and y and returns the [Difference] necessary to convert from
// one to the other, containing the minimal number of changes.
//
// If x and y are identical, the output is the empty Difference.
//
// The following options are supported: [Moves], [WithBuffer]
//
// Important: When x and y admit more than one minimal edit script, the choice between them is
// deterministic but not guaranteed to be stable across minor version upgrades. DO NOT rely on the
// output being stable.
func Diff[T comparable](x, y []T, opts ...Option) Difference[T] {
	cfg := config.FromOptions(opts, config.Moves|config.Buffer)
	d := fromPath(x, y, myers.Diff(x, y, cfg.Frontier))
	if cfg.Moves {
		d = InferMoves(d)
	}
	return d
}

// DiffFunc compares the contents of x and y using the provided equivalence and returns the
// [Difference] necessary to convert from one to the other.
//
// eq must be reflexive, symmetric, and transitive over the values actually compared. Violating
// this yields an unspecified but still structurally valid Difference.
//
// The following option is supported: [WithBuffer]. [Moves] is not supported because move
// inference requires hashable elements, see [InferMovesFunc].
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) Difference[T] {
	cfg := config.FromOptions(opts, config.Buffer)
	return fromPath(x, y, myers.DiffFunc(x, y, eq, cfg.Frontier))
}

// fromPath translates an edit path into the flat, offset-addressed change representation. The
// path's segments arrive in source/target order, so both groups come out sorted ascending by
// offset and the result is valid by construction.
func fromPath[T any](x, y []T, p myers.Path) Difference[T] {
	var removals, insertions []Change[T]
	for seg := range p.All() {
		switch seg.Op {
		case myers.Remove:
			for s := seg.S0; s < seg.S1; s++ {
				removals = append(removals, Change[T]{Op: Remove, Offset: s, Element: x[s]})
			}
		case myers.Insert:
			for t := seg.T0; t < seg.T1; t++ {
				insertions = append(insertions, Change[T]{Op: Insert, Offset: t, Element: y[t]})
			}
		}
	}
	return Difference[T]{removals: removals, insertions: insertions}
}
