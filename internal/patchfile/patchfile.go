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

// Package patchfile reads and writes line differences as binary patch files.
//
// The format is a single msgpack encoded message holding a version number and the difference's
// changes. Decoding revalidates the changes, a corrupted or hand-edited file can never produce a
// difference that violates the editscript invariants.
package patchfile

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"znkr.io/editscript"
)

// version is bumped on incompatible format changes.
const version = 1

type file struct {
	Version    int      `msgpack:"version"`
	Removals   []change `msgpack:"removals"`
	Insertions []change `msgpack:"insertions"`
}

type change struct {
	Offset int    `msgpack:"offset"`
	Line   string `msgpack:"line"`
	Assoc  *int   `msgpack:"assoc"`
}

// Encode writes d to w.
func Encode(w io.Writer, d editscript.Difference[string]) error {
	f := file{Version: version}
	for _, c := range d.Removals() {
		f.Removals = append(f.Removals, change{Offset: c.Offset, Line: c.Element, Assoc: c.AssociatedWith})
	}
	for _, c := range d.Insertions() {
		f.Insertions = append(f.Insertions, change{Offset: c.Offset, Line: c.Element, Assoc: c.AssociatedWith})
	}
	if err := msgpack.NewEncoder(w).Encode(&f); err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}
	return nil
}

// Decode reads a difference from r.
func Decode(r io.Reader) (editscript.Difference[string], error) {
	var f file
	if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
		return editscript.Difference[string]{}, fmt.Errorf("decoding patch: %w", err)
	}
	if f.Version != version {
		return editscript.Difference[string]{}, fmt.Errorf("unsupported patch version %d", f.Version)
	}
	changes := make([]editscript.Change[string], 0, len(f.Removals)+len(f.Insertions))
	for _, c := range f.Removals {
		changes = append(changes, editscript.Change[string]{Op: editscript.Remove, Offset: c.Offset, Element: c.Line, AssociatedWith: c.Assoc})
	}
	for _, c := range f.Insertions {
		changes = append(changes, editscript.Change[string]{Op: editscript.Insert, Offset: c.Offset, Element: c.Line, AssociatedWith: c.Assoc})
	}
	d, err := editscript.NewDifference(changes)
	if err != nil {
		return editscript.Difference[string]{}, fmt.Errorf("invalid patch: %w", err)
	}
	return d, nil
}
