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

// Package frontier provides the storage for the search frontier history of the full-history
// variant of Myers' algorithm.
//
// The history forms a lower-triangular matrix: iteration d of the search produces one endpoint per
// diagonal k in {-d, ..., d} with d+k even, that is d+1 endpoints. Row d of the store holds these
// endpoints indexed by the transformed diagonal number (d+k)/2. Only the s-coordinate is stored,
// t = s - k is implied.
//
// The store is backed by a single flat buffer in row-major order, so appending a row is O(1)
// amortized and random access is O(1). Total space for d rows is O(d²), which is the documented
// space bound of the full-history algorithm.
package frontier

// Store is an append-only growable lower-triangular matrix of search-frontier endpoints.
//
// A Store is owned by a single search run end-to-end; it must not be shared between concurrent
// runs. The zero value is an empty store ready for use.
type Store struct {
	buf  []int
	rows int
}

// triangular returns the number of cells in a triangular matrix with n rows.
func triangular(n int) int { return n * (n + 1) / 2 }

// Rows returns the number of rows appended so far.
func (f *Store) Rows() int { return f.rows }

// AppendRow appends a new row holding Rows()+1 copies of v.
func (f *Store) AppendRow(v int) {
	f.rows++
	for range f.rows {
		f.buf = append(f.buf, v)
	}
}

// At returns the cell in row d at col. It requires 0 <= col <= d < Rows().
func (f *Store) At(d, col int) int {
	if col < 0 || col > d || d >= f.rows {
		panic("frontier: cell out of range")
	}
	return f.buf[triangular(d)+col]
}

// Set stores v in row d at col. It requires 0 <= col <= d < Rows().
func (f *Store) Set(d, col, v int) {
	if col < 0 || col > d || d >= f.rows {
		panic("frontier: cell out of range")
	}
	f.buf[triangular(d)+col] = v
}

// Reset empties the store, retaining the backing buffer for reuse by a subsequent run.
func (f *Store) Reset() {
	f.buf = f.buf[:0]
	f.rows = 0
}
