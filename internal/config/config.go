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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// editscript.Option.
package config

import "znkr.io/editscript/internal/frontier"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matching lines to include around changes in rendered text hunks.
	Context int

	// If set, move inference runs on computed differences.
	Moves bool

	// Frontier is a caller-supplied frontier store to reuse across runs. The store is used
	// exclusively for the duration of a single run.
	Frontier *frontier.Store
}

// Default is the default configuration.
var Default = Config{
	Context:  3,
	Moves:    false,
	Frontier: nil,
}

// Flag describes a single config entry. This is used to detect options being passed to functions
// that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	Moves
	Buffer
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "editscript.Context"
	case Moves:
		return "editscript.Moves"
	case Buffer:
		return "editscript.WithBuffer"
	default:
		panic("never reached")
	}
}
