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
)

// ErrIncompatible is returned by [Apply] when a difference's offsets are inconsistent with the
// base sequence.
var ErrIncompatible = errors.New("editscript: difference is incompatible with the base sequence")

// Apply reconstructs the sequence that results from applying d to base.
//
// It returns an error wrapping [ErrIncompatible] if d's offsets run past the end of base at any
// point. This is the designed defense against applying a Difference that was computed against a
// different base state; associations are informational and do not affect the result.
//
// Apply runs in a single O(len(base) + d.Len()) pass without materializing intermediate slices.
func Apply[T any](base []T, d Difference[T]) ([]T, error) {
	removals, insertions := d.removals, d.insertions
	if len(removals) > len(base) {
		return nil, fmt.Errorf("%w: %d removals exceed base length %d", ErrIncompatible, len(removals), len(base))
	}

	out := make([]T, 0, len(base)-len(removals)+len(insertions))
	s := 0 // next base element not yet consumed
	ri, ii := 0, 0
	for ri < len(removals) || ii < len(insertions) {
		var takeRemoval bool
		switch {
		case ii == len(insertions):
			takeRemoval = true
		case ri == len(removals):
			takeRemoval = false
		default:
			// Subtracting the number of changes of the own kind consumed so far normalizes both
			// offsets onto the same position in the evolving result; on a tie the removal is
			// consumed first, matching canonical order.
			takeRemoval = removals[ri].Offset-ri <= insertions[ii].Offset-ii
		}
		if takeRemoval {
			off := removals[ri].Offset
			if off >= len(base) {
				return nil, fmt.Errorf("%w: removal offset %d exceeds base length %d", ErrIncompatible, off, len(base))
			}
			// Copy the verbatim run of untouched base elements, then drop the removed one.
			out = append(out, base[s:off]...)
			s = off + 1
			ri++
		} else {
			off := insertions[ii].Offset
			run := off - len(out)
			if run < 0 || s+run > len(base) {
				return nil, fmt.Errorf("%w: insertion offset %d exceeds result bounds", ErrIncompatible, off)
			}
			// Copy untouched base elements until the result has grown to the insertion offset.
			out = append(out, base[s:s+run]...)
			s += run
			out = append(out, insertions[ii].Element)
			ii++
		}
	}
	out = append(out, base[s:]...)
	return out, nil
}
