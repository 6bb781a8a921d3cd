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

import "znkr.io/editscript/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matching lines to include before and after changes in hunks rendered
// by [znkr.io/editscript/textdiff]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Moves runs move inference on the computed difference, as if by calling [InferMoves] on the
// result.
func Moves() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Moves = true
		return config.Moves
	}
}

// WithBuffer makes a comparison function use buf as its scratch space. The buffer is used
// exclusively for the duration of the call; reusing one buffer across many sequential
// computations avoids repeated allocations of the search history.
func WithBuffer(buf *Buffer) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Frontier = &buf.store
		return config.Buffer
	}
}
