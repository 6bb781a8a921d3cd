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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/editscript/internal/frontier"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMIMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "repeated-element",
			x:    strings.Split("1223", ""),
			y:    strings.Split("123", ""),
			want: "MMDM",
		},
		{
			name: "rotation",
			x:    strings.Split("201", ""),
			y:    strings.Split("012", ""),
			want: "DMMI",
		},
		{
			name: "prefix-only-removal",
			x:    strings.Split("abcxy", ""),
			y:    strings.Split("abc", ""),
			want: "MMMDD",
		},
		{
			name: "prefix-only-insertion",
			x:    strings.Split("abc", ""),
			y:    strings.Split("abcxy", ""),
			want: "MMMII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			{
				got := render(Diff(tt.x, tt.y, nil))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
				}
			}
			{
				got := render(DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }, nil))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
				}
			}
		})
	}
}

// render flattens a path into one letter per element: M for a match, D for a removal, I for an
// insertion.
func render(p Path) string {
	var sb strings.Builder
	for seg := range p.All() {
		var c string
		var n int
		switch seg.Op {
		case Match:
			c, n = "M", seg.S1-seg.S0
		case Remove:
			c, n = "D", seg.S1-seg.S0
		case Insert:
			c, n = "I", seg.T1-seg.T0
		}
		sb.WriteString(strings.Repeat(c, n))
	}
	return sb.String()
}

func TestDiffStoreReuse(t *testing.T) {
	var store frontier.Store
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")
	for range 3 {
		got := render(Diff(x, y, &store))
		if got != "DDMIMMDMI" {
			t.Fatalf("Diff with reused store = %q, want %q", got, "DDMIMMDMI")
		}
	}
}

// TestDiffRandom cross-checks the path against first principles on random inputs: the path must
// be well-formed, it must describe a transformation of x into y, and the number of edits must
// match the edit distance computed with a simple quadratic DP.
func TestDiffRandom(t *testing.T) {
	params := []struct {
		name     string
		n, m     int
		alphabet int
	}{
		{"small-dense", 8, 8, 2},
		{"small-sparse", 10, 6, 10},
		{"medium", 40, 40, 4},
		{"disjoint-ish", 25, 30, 50},
	}
	for _, p := range params {
		t.Run(p.name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(p.name))))
			for range 200 {
				x := make([]byte, rng.IntN(p.n+1))
				for i := range x {
					x[i] = byte(rng.IntN(p.alphabet))
				}
				y := make([]byte, rng.IntN(p.m+1))
				for i := range y {
					y[i] = byte(rng.IntN(p.alphabet))
				}

				path := Diff(x, y, nil)
				checkPath(t, path, x, y)
				if got, want := edits(path), editDistance(x, y); got != want {
					t.Fatalf("Diff(%v, %v) has %d edits, want edit distance %d", x, y, got, want)
				}
			}
		})
	}
}

// checkPath verifies the structural path invariants and that replaying the path's segments
// reconstructs y from x.
func checkPath(t *testing.T, p Path, x, y []byte) {
	t.Helper()
	var out []byte
	s, tt := 0, 0
	prevOp := Op(-1)
	for i := range p.Len() {
		seg := p.At(i)
		if i > 0 && seg.Op == prevOp {
			t.Fatalf("Diff(%v, %v): consecutive %v segments not coalesced", x, y, seg.Op)
		}
		prevOp = seg.Op
		if seg.S0 != s || seg.T0 != tt {
			t.Fatalf("Diff(%v, %v): segment %d starts at (%d, %d), want (%d, %d)", x, y, i, seg.S0, seg.T0, s, tt)
		}
		switch seg.Op {
		case Match:
			if seg.S1-seg.S0 != seg.T1-seg.T0 || seg.S1 <= seg.S0 {
				t.Fatalf("Diff(%v, %v): malformed match segment %+v", x, y, seg)
			}
			out = append(out, x[seg.S0:seg.S1]...)
		case Remove:
			if seg.T0 != seg.T1 || seg.S1 <= seg.S0 {
				t.Fatalf("Diff(%v, %v): malformed remove segment %+v", x, y, seg)
			}
		case Insert:
			if seg.S0 != seg.S1 || seg.T1 <= seg.T0 {
				t.Fatalf("Diff(%v, %v): malformed insert segment %+v", x, y, seg)
			}
			out = append(out, y[seg.T0:seg.T1]...)
		}
		s, tt = seg.S1, seg.T1
	}
	if s != len(x) || tt != len(y) {
		t.Fatalf("Diff(%v, %v): path ends at (%d, %d), want (%d, %d)", x, y, s, tt, len(x), len(y))
	}
	if string(out) != string(y) {
		t.Fatalf("Diff(%v, %v): replaying the path produced %v", x, y, out)
	}
}

func edits(p Path) int {
	n := 0
	for seg := range p.All() {
		switch seg.Op {
		case Remove:
			n += seg.S1 - seg.S0
		case Insert:
			n += seg.T1 - seg.T0
		}
	}
	return n
}

// editDistance computes the insert/remove edit distance with the classic quadratic DP.
func editDistance(x, y []byte) int {
	n, m := len(x), len(y)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for t := 0; t <= m; t++ {
		prev[t] = t
	}
	for s := 1; s <= n; s++ {
		cur[0] = s
		for t := 1; t <= m; t++ {
			if x[s-1] == y[t-1] {
				cur[t] = prev[t-1]
			} else {
				cur[t] = min(prev[t], cur[t-1]) + 1
			}
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

func BenchmarkDiff(b *testing.B) {
	params := []struct {
		N, M int // Length of x and y respectively
		D    int // Number of edits (besides edits due to size differences)
	}{
		{50, 50, 10},
		{500, 50, 10},
		{50, 500, 10},
		{500, 500, 10},
		{500, 500, 100},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d_D=%d", p.N, p.M, p.D)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))

			// Construct inputs with the requested sizes and edit distance.
			flipped := false
			n, m := p.N, p.M
			if n < m {
				n, m = m, n
				flipped = true
			}

			x := make([]int, n)
			for i := range x {
				x[i] = rng.IntN(100)
			}

			y := make([]int, m)
			delta := 0
			if n != m {
				delta = rng.IntN((n - m) / 2)
			}
			for i := range y {
				y[i] = x[i+delta]
			}

			// We might already have some changes due to the different sizes for N and M, add D
			// additional changes.
			for d := p.D; d > 0; {
				i := rng.IntN(len(y))
				if y[i] >= 0 {
					y[i] = -y[i]
					d--
				}
			}

			if flipped {
				x, y = y, x
			}

			var store frontier.Store
			for b.Loop() {
				_ = Diff(x, y, &store)
			}
		})
	}
}
