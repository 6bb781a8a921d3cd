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
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrInvalidChanges is returned by [NewDifference] when the given changes violate the Difference
// invariants.
var ErrInvalidChanges = errors.New("editscript: invalid change set")

// Difference is an immutable collection of insertions and removals that transforms one sequence
// into another.
//
// A Difference maintains the following invariants:
//
//   - All insertion offsets are pairwise distinct, and so are all removal offsets.
//   - Offsets are non-negative.
//   - Every non-nil AssociatedWith on an insertion is the offset of a removal in the same
//     Difference whose AssociatedWith is the insertion's offset, and vice versa.
//
// A Difference has no ownership of the sequences it was derived from; it is a free-standing value
// that can be applied to any sequence of the right element type (see [Apply]) and shared freely
// between goroutines.
//
// The zero value is the empty Difference.
type Difference[T any] struct {
	removals   []Change[T] // sorted ascending by offset
	insertions []Change[T] // sorted ascending by offset
}

// NewDifference validates the given changes and returns them as a Difference. It returns an error
// wrapping [ErrInvalidChanges] if the changes violate the [Difference] invariants; validation
// failure means the change set is incompatible, there is no partially-valid result.
func NewDifference[T any](changes []Change[T]) (Difference[T], error) {
	var removals, insertions []Change[T]
	for _, c := range changes {
		if c.Offset < 0 {
			return Difference[T]{}, fmt.Errorf("%w: negative offset %d", ErrInvalidChanges, c.Offset)
		}
		switch c.Op {
		case Remove:
			removals = append(removals, cloneChange(c))
		case Insert:
			insertions = append(insertions, cloneChange(c))
		default:
			return Difference[T]{}, fmt.Errorf("%w: %v is not a change kind", ErrInvalidChanges, c.Op)
		}
	}
	byOffset := func(a, b Change[T]) int { return a.Offset - b.Offset }
	slices.SortFunc(removals, byOffset)
	slices.SortFunc(insertions, byOffset)
	for _, group := range [][]Change[T]{removals, insertions} {
		for i := 1; i < len(group); i++ {
			if group[i].Offset == group[i-1].Offset {
				return Difference[T]{}, fmt.Errorf("%w: duplicate %v offset %d", ErrInvalidChanges, group[i].Op, group[i].Offset)
			}
		}
	}

	// Cross-check that every association is symmetric: an association on one side must point at a
	// change on the other side that points back.
	removalAssoc := assocByOffset(removals)
	insertionAssoc := assocByOffset(insertions)
	for _, c := range removals {
		if c.AssociatedWith == nil {
			continue
		}
		back, ok := insertionAssoc[*c.AssociatedWith]
		if !ok || back == nil || *back != c.Offset {
			return Difference[T]{}, fmt.Errorf("%w: removal at %d has an asymmetric association with %d", ErrInvalidChanges, c.Offset, *c.AssociatedWith)
		}
	}
	for _, c := range insertions {
		if c.AssociatedWith == nil {
			continue
		}
		back, ok := removalAssoc[*c.AssociatedWith]
		if !ok || back == nil || *back != c.Offset {
			return Difference[T]{}, fmt.Errorf("%w: insertion at %d has an asymmetric association with %d", ErrInvalidChanges, c.Offset, *c.AssociatedWith)
		}
	}

	return Difference[T]{removals: removals, insertions: insertions}, nil
}

// assocByOffset maps each change's offset to its association.
func assocByOffset[T any](changes []Change[T]) map[int]*int {
	m := make(map[int]*int, len(changes))
	for _, c := range changes {
		m[c.Offset] = c.AssociatedWith
	}
	return m
}

// cloneChange copies c including its association so that the Difference cannot be mutated through
// values the caller retains.
func cloneChange[T any](c Change[T]) Change[T] {
	if c.AssociatedWith != nil {
		assoc := *c.AssociatedWith
		c.AssociatedWith = &assoc
	}
	return c
}

func cloneChanges[T any](changes []Change[T]) []Change[T] {
	out := make([]Change[T], len(changes))
	for i, c := range changes {
		out[i] = cloneChange(c)
	}
	return out
}

// Len returns the total number of changes.
func (d Difference[T]) Len() int {
	return len(d.removals) + len(d.insertions)
}

// Changes returns an iterator over all changes in canonical order: removals from the highest
// offset to the lowest, then insertions from the lowest offset to the highest.
//
// This order is safe to replay directly against a mutable copy of the original sequence using
// naive per-change remove/insert-at-offset operations: removing high-to-low never invalidates a
// not-yet-processed lower removal offset, and inserting low-to-high likewise.
func (d Difference[T]) Changes() iter.Seq[Change[T]] {
	return func(yield func(Change[T]) bool) {
		for i := len(d.removals) - 1; i >= 0; i-- {
			if !yield(d.removals[i]) {
				return
			}
		}
		for _, c := range d.insertions {
			if !yield(c) {
				return
			}
		}
	}
}

// Removals returns the removals sorted ascending by offset.
func (d Difference[T]) Removals() []Change[T] { return cloneChanges(d.removals) }

// Insertions returns the insertions sorted ascending by offset.
func (d Difference[T]) Insertions() []Change[T] { return cloneChanges(d.insertions) }

// Equal reports whether two differences contain the same changes with the same associations.
func Equal[T comparable](a, b Difference[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether two differences contain the same changes with the same associations,
// comparing elements with eq.
func EqualFunc[T any](a, b Difference[T], eq func(x, y T) bool) bool {
	changeEq := func(x, y Change[T]) bool {
		if x.Op != y.Op || x.Offset != y.Offset || !eq(x.Element, y.Element) {
			return false
		}
		switch {
		case x.AssociatedWith == nil:
			return y.AssociatedWith == nil
		case y.AssociatedWith == nil:
			return false
		default:
			return *x.AssociatedWith == *y.AssociatedWith
		}
	}
	return slices.EqualFunc(a.removals, b.removals, changeEq) &&
		slices.EqualFunc(a.insertions, b.insertions, changeEq)
}

// InferMoves returns a new Difference where each removal and insertion of the same element is
// paired into a move via their AssociatedWith offsets. d itself is not modified.
//
// Only elements that appear in exactly one unassociated removal and exactly one unassociated
// insertion are paired; an ambiguous pairing is never guessed. Changes that are already
// associated keep their association.
func InferMoves[T comparable](d Difference[T]) Difference[T] {
	removals := cloneChanges(d.removals)
	insertions := cloneChanges(d.insertions)

	type group struct {
		removals, insertions int // occurrence counts, saturating at 2
		removal, insertion   int // indices, valid when the respective count is exactly 1
	}
	groups := make(map[T]*group)
	for i, c := range removals {
		if c.AssociatedWith != nil {
			continue
		}
		g := groups[c.Element]
		if g == nil {
			g = &group{}
			groups[c.Element] = g
		}
		g.removals++
		g.removal = i
	}
	for i, c := range insertions {
		if c.AssociatedWith != nil {
			continue
		}
		g := groups[c.Element]
		if g == nil {
			g = &group{}
			groups[c.Element] = g
		}
		g.insertions++
		g.insertion = i
	}
	for _, g := range groups {
		if g.removals == 1 && g.insertions == 1 {
			associate(&removals[g.removal], &insertions[g.insertion])
		}
	}
	return Difference[T]{removals: removals, insertions: insertions}
}

// InferMovesFunc is like [InferMoves] for element types that only support an equivalence
// function. Without hashable elements, grouping falls back to pairwise comparison, which takes
// O(n²) time in the number of changes. Choosing this trade-off is up to the caller, it never
// happens implicitly.
func InferMovesFunc[T any](d Difference[T], eq func(a, b T) bool) Difference[T] {
	removals := cloneChanges(d.removals)
	insertions := cloneChanges(d.insertions)
	for i := range removals {
		if removals[i].AssociatedWith != nil {
			continue
		}
		e := removals[i].Element

		n := 0
		for j := range removals {
			if removals[j].AssociatedWith == nil && eq(removals[j].Element, e) {
				n++
			}
		}
		if n != 1 {
			continue // ambiguous on the removal side
		}
		pair, n := -1, 0
		for j := range insertions {
			if insertions[j].AssociatedWith == nil && eq(insertions[j].Element, e) {
				pair = j
				n++
			}
		}
		if n != 1 {
			continue // missing or ambiguous on the insertion side
		}
		associate(&removals[i], &insertions[pair])
	}
	return Difference[T]{removals: removals, insertions: insertions}
}

func associate[T any](removal, insertion *Change[T]) {
	removalOffset, insertionOffset := removal.Offset, insertion.Offset
	removal.AssociatedWith = &insertionOffset
	insertion.AssociatedWith = &removalOffset
}
