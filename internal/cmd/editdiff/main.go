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

// editdiff is a development tool to exercise this module from the command line. It compares two
// files line by line, renders the result in unified format or stores it as a binary patch, and
// applies stored patches.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"znkr.io/editscript"
	"znkr.io/editscript/internal/patchfile"
	"znkr.io/editscript/textdiff"
)

var (
	flagContext int
	flagOutput  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "editdiff",
		Short:        "Compare and patch text files",
		SilenceUsage: true,
	}

	diff := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}
	diff.Flags().IntVarP(&flagContext, "context", "c", 3, "matching lines shown around changes")
	diff.Flags().StringVarP(&flagOutput, "output", "o", "", "write a binary patch to this file instead of rendering")

	apply := &cobra.Command{
		Use:   "apply <base> <patch>",
		Short: "Apply a binary patch to a file and print the result",
		Args:  cobra.ExactArgs(2),
		RunE:  runApply,
	}

	root.AddCommand(diff, apply)
	return root
}

func runDiff(cmd *cobra.Command, args []string) error {
	x, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	y, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	if flagOutput != "" {
		d := textdiff.Lines(string(x), string(y), editscript.Moves())
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		if err := patchfile.Encode(f, d); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	render(cmd, textdiff.Unified(string(x), string(y), editscript.Context(flagContext)))
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	base, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := patchfile.Decode(f)
	if err != nil {
		return err
	}
	patched, err := textdiff.Patch(string(base), d)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), patched)
	return nil
}

// render writes a unified diff with the line kinds colored the way git shows them.
func render(cmd *cobra.Command, unified string) {
	out := cmd.OutOrStdout()
	header := color.New(color.FgCyan)
	removed := color.New(color.FgRed)
	inserted := color.New(color.FgGreen)
	for _, line := range strings.SplitAfter(unified, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '@':
			header.Fprint(out, line)
		case '-':
			removed.Fprint(out, line)
		case '+':
			inserted.Fprint(out, line)
		default:
			fmt.Fprint(out, line)
		}
	}
}
