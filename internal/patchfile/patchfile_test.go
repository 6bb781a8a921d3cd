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

package patchfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"znkr.io/editscript"
	"znkr.io/editscript/textdiff"
)

func TestRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{name: "empty", x: "a\nb\n", y: "a\nb\n"},
		{name: "changes", x: "a\nb\nc\n", y: "a\nc\nd\n"},
		{name: "missing-newline", x: "a\nb", y: "a\nb\nc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := textdiff.Lines(tt.x, tt.y, editscript.Moves())

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, d))
			got, err := Decode(&buf)
			require.NoError(t, err)

			assert.True(t, editscript.Equal(d, got), "decoded difference differs from the encoded one")

			patched, err := textdiff.Patch(tt.x, got)
			require.NoError(t, err)
			assert.Equal(t, tt.y, patched)
		})
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		_, err := Decode(bytes.NewReader([]byte("not a patch")))
		assert.Error(t, err)
	})

	t.Run("wrong-version", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, msgpack.NewEncoder(&buf).Encode(&file{Version: 999}))
		_, err := Decode(&buf)
		assert.ErrorContains(t, err, "unsupported patch version")
	})

	t.Run("invalid-changes", func(t *testing.T) {
		var buf bytes.Buffer
		f := file{
			Version: version,
			Removals: []change{
				{Offset: 1, Line: "a"},
				{Offset: 1, Line: "b"},
			},
		}
		require.NoError(t, msgpack.NewEncoder(&buf).Encode(&f))
		_, err := Decode(&buf)
		assert.ErrorIs(t, err, editscript.ErrInvalidChanges)
	})
}
