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

package frontier

import "testing"

func TestStore(t *testing.T) {
	var f Store
	if got := f.Rows(); got != 0 {
		t.Fatalf("Rows() = %v, want 0", got)
	}

	const rows = 5
	for d := range rows {
		f.AppendRow(-1)
		if got, want := f.Rows(), d+1; got != want {
			t.Fatalf("Rows() = %v, want %v", got, want)
		}
		for col := 0; col <= d; col++ {
			if got := f.At(d, col); got != -1 {
				t.Errorf("At(%v, %v) = %v, want -1 after AppendRow", d, col, got)
			}
		}
	}

	// Fill every cell with a unique value and read everything back to verify that the triangular
	// addressing never aliases two cells.
	for d := range rows {
		for col := 0; col <= d; col++ {
			f.Set(d, col, 100*d+col)
		}
	}
	for d := range rows {
		for col := 0; col <= d; col++ {
			if got, want := f.At(d, col), 100*d+col; got != want {
				t.Errorf("At(%v, %v) = %v, want %v", d, col, got, want)
			}
		}
	}
}

func TestStoreReset(t *testing.T) {
	var f Store
	f.AppendRow(7)
	f.AppendRow(7)
	f.Reset()
	if got := f.Rows(); got != 0 {
		t.Fatalf("Rows() = %v after Reset, want 0", got)
	}
	f.AppendRow(3)
	if got := f.At(0, 0); got != 3 {
		t.Errorf("At(0, 0) = %v after Reset+AppendRow, want 3", got)
	}
}

func TestStoreOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		d, col int
	}{
		{"row-not-appended", 1, 0},
		{"col-negative", 0, -1},
		{"col-past-row", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%v, %v) did not panic", tt.d, tt.col)
				}
			}()
			var f Store
			f.AppendRow(0)
			f.At(tt.d, tt.col)
		})
	}
}
