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

package config

import "testing"

func TestFromOptions(t *testing.T) {
	context := func(n int) Option {
		return func(cfg *Config) Flag {
			cfg.Context = n
			return Context
		}
	}
	moves := func() Option {
		return func(cfg *Config) Flag {
			cfg.Moves = true
			return Moves
		}
	}

	t.Run("defaults", func(t *testing.T) {
		cfg := FromOptions(nil, Context|Moves|Buffer)
		if cfg != Default {
			t.Errorf("FromOptions(nil, ...) = %+v, want %+v", cfg, Default)
		}
	})

	t.Run("applied", func(t *testing.T) {
		cfg := FromOptions([]Option{context(7), moves()}, Context|Moves)
		if cfg.Context != 7 || !cfg.Moves {
			t.Errorf("FromOptions(...) = %+v, want Context=7, Moves=true", cfg)
		}
	})

	t.Run("not-allowed", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("FromOptions(...) did not panic for a disallowed option")
			}
		}()
		FromOptions([]Option{moves()}, Context|Buffer)
	})
}
