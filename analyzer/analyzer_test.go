// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"errors"
	"go/token"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/preferat/analyzer"
	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/internal/testsource"
	"fillmore-labs.com/preferat/syntax"
)

func TestRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		archive string
		options Option
	}{
		{
			name:    "Default",
			archive: "default.txtar",
		},
		{
			name:    "IgnoreFunctions",
			archive: "ignorefunctions.txtar",
			options: WithIgnoreFunctions(true),
		},
		{
			name:    "ES2021",
			archive: "es2021.txtar",
		},
		{
			name:    "Generated",
			archive: "generated.txtar",
		},
		{
			name:    "IncludeGenerated",
			archive: "includegenerated.txtar",
			options: Options{WithGenerated(true), WithIgnoreFunctions(false)},
		},
		{
			name:    "NoLint",
			archive: "nolint.txtar",
		},
		{
			name:    "Nested",
			archive: "nested.txtar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			archive, err := txtar.ParseFile(filepath.Join("testdata", tt.archive))
			if err != nil {
				t.Fatalf("Can't read archive: %v", err)
			}

			a := New(tt.options)

			testsource.RunWithSuggestedFixes(t, archive, func(p testsource.Program, report func(analysis.Diagnostic)) error {
				return a.Run(&Pass{
					Fset:   p.Fset,
					Files:  []*syntax.File{p.File},
					Types:  p.Info,
					Report: report,
				})
			})
		})
	}
}

func TestIncompletePass(t *testing.T) {
	t.Parallel()

	report := func(analysis.Diagnostic) {}

	tests := []struct {
		name string
		pass *Pass
	}{
		{"nil", nil},
		{"no file set", &Pass{Types: checker.NewInfo(), Report: report}},
		{"no oracle", &Pass{Fset: token.NewFileSet(), Report: report}},
		{"no reporter", &Pass{Fset: token.NewFileSet(), Types: checker.NewInfo()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Default.Run(tt.pass); !errors.Is(err, ErrPassIncomplete) {
				t.Errorf("Got error %v, want %v", err, ErrPassIncomplete)
			}
		})
	}
}

func TestInvalidFile(t *testing.T) {
	t.Parallel()

	// file without a registered position range
	file := &syntax.File{Name: "missing.ts", Src: []byte("x;")}

	var diagnostics []analysis.Diagnostic

	err := New().Run(&Pass{
		Fset:   token.NewFileSet(),
		Files:  []*syntax.File{file, nil},
		Types:  checker.NewInfo(),
		Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	if got, want := diagnostics[0].Message, "Internal Error: File missing.ts without valid info"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()
	if err := a.Flags.Parse([]string{"-ignore-functions"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p := testsource.Parse(t, "declare function f(): number[];\nf()[f().length - 1];")

	reported := 0

	err := a.Run(&Pass{
		Fset:   p.Fset,
		Files:  []*syntax.File{p.File},
		Types:  p.Info,
		Report: func(analysis.Diagnostic) { reported++ },
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if reported != 0 {
		t.Errorf("Got %d diagnostics with -ignore-functions, want none", reported)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithIgnoreFunctions(true), nil, Options{WithGenerated(false)}}

	const want = "[ignoreFunctions=true nil=<nil> generated=false]"

	if got := opts.LogValue().String(); got != want {
		t.Errorf("Got LogValue %q, want %q", got, want)
	}
}
