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

// Package editscript computes, validates, and applies minimal edit scripts that transform one
// slice into another.
//
// The main entry points are [Diff], which computes a [Difference] between two slices, and [Apply],
// which reconstructs a slice from a base and a Difference. A Difference is an immutable collection
// of insertions and removals with a canonical order that is safe to replay naively against the
// original slice; [InferMoves] additionally pairs removals and insertions of equal elements into
// moves. [SegmentsOf] exposes the underlying edit path as matched/removed/inserted ranges for
// consumers that want the common core rather than a flat change list.
//
// Performance: Time complexity is O(ND) where N = len(x) + len(y) and D is the number of edits,
// with O(D²) working memory for the search history. This is efficient when the inputs are mostly
// similar; fully disjoint inputs degrade to O(N²).
//
// Note: For a line-by-line diff of text, please see [znkr.io/editscript/textdiff].
//
// [znkr.io/editscript/textdiff]: https://pkg.go.dev/znkr.io/editscript/textdiff
package editscript
