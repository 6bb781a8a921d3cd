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

// Package textdiff provides line based diffing and patching of text.
package textdiff

import (
	"bytes"
	"fmt"
	"strings"
	"unsafe"

	"znkr.io/editscript"
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/hunks"
	"znkr.io/editscript/internal/myers"
)

// missingNewline is appended to the last line of an input that doesn't end with a newline. It
// renders the way diff(1) marks such lines and at the same time makes sure that a last line
// without a trailing newline never compares equal to the same line with one.
const missingNewline = "\n\\ No newline at end of file\n"

// Unified compares x and y line by line and returns the difference in unified format.
//
// The output deviates from unified diffs produced by diff(1) or git in that hunk headers don't
// use the special cases for empty and single line ranges.
//
// Supported options: [editscript.Context], [editscript.WithBuffer].
func Unified(x, y string, opts ...editscript.Option) string {
	xb := unsafe.Slice(unsafe.StringData(x), len(x))
	yb := unsafe.Slice(unsafe.StringData(y), len(y))
	out := UnifiedBytes(xb, yb, opts...)
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// UnifiedBytes is identical to [Unified], but for byte slices.
func UnifiedBytes(x, y []byte, opts ...editscript.Option) []byte {
	cfg := config.FromOptions(opts, config.Context|config.Buffer)

	xlines := splitLines(x)
	ylines := splitLines(y)
	path := myers.DiffFunc(xlines, ylines, bytes.Equal, cfg.Frontier)

	var b bytes.Buffer
	i := 0
	for h := range hunks.Of(path, cfg.Context) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		for i < path.Len() {
			seg := path.At(i)
			switch seg.Op {
			case myers.Match:
				// Long matches span hunks as trailing context of one and leading context of the
				// next, clip to the current hunk and hold on to the segment if it extends beyond.
				for s := max(seg.S0, h.S0); s < min(seg.S1, h.S1); s++ {
					b.WriteByte(' ')
					b.Write(xlines[s])
				}
			case myers.Remove:
				for s := seg.S0; s < seg.S1; s++ {
					b.WriteByte('-')
					b.Write(xlines[s])
				}
			case myers.Insert:
				for t := seg.T0; t < seg.T1; t++ {
					b.WriteByte('+')
					b.Write(ylines[t])
				}
			}
			if seg.S1 > h.S1 || seg.T1 > h.T1 {
				break
			}
			i++
		}
	}
	return b.Bytes()
}

// Lines compares x and y line by line and returns the difference with lines as elements. Lines
// retain their trailing newline, a missing newline on the last line is marked so that it never
// matches a line with one.
//
// Supported options: [editscript.Moves], [editscript.WithBuffer].
func Lines(x, y string, opts ...editscript.Option) editscript.Difference[string] {
	return editscript.Diff(splitStringLines(x), splitStringLines(y), opts...)
}

// Patch applies a line based difference to base and returns the patched text.
//
// If the difference doesn't apply to base, Patch returns [editscript.ErrIncompatible].
func Patch(base string, d editscript.Difference[string]) (string, error) {
	out, err := editscript.Apply(splitStringLines(base), d)
	if err != nil {
		return "", err
	}
	// Undo the marker [splitStringLines] appends to a last line without a trailing newline.
	return strings.TrimSuffix(strings.Join(out, ""), missingNewline), nil
}

func splitLines(v []byte) [][]byte {
	lines := bytes.SplitAfter(v, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	} else {
		// The last line is a subslice of v with no capacity left, append copies.
		lines[len(lines)-1] = append(lines[len(lines)-1], missingNewline...)
	}
	return lines
}

func splitStringLines(v string) []string {
	lines := strings.SplitAfter(v, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += missingNewline
	}
	return lines
}
