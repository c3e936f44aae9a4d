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

package hostplugin_test

import (
	"testing"

	"golang.org/x/tools/go/analysis"

	preferat "fillmore-labs.com/preferat/analyzer"
	. "fillmore-labs.com/preferat/hostplugin"
	"fillmore-labs.com/preferat/internal/testsource"
	"fillmore-labs.com/preferat/syntax"
)

const src = `declare function f(): number[];
f()[f().length - 1];
`

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings any
		want     int
	}{
		{"nil", nil, 1},
		{"empty", map[string]any{}, 1},
		{"ignore functions", map[string]any{"ignoreFunctions": true}, 0},
		{"keep functions", map[string]any{"ignoreFunctions": false}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, err := New(tt.settings)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			p := testsource.Parse(t, src)

			var got int

			err = rule.Run(&preferat.Pass{
				Fset:   p.Fset,
				Files:  []*syntax.File{p.File},
				Types:  p.Info,
				Report: func(analysis.Diagnostic) { got++ },
			})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %d diagnostics, want %d", got, tt.want)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	for _, settings := range []any{
		map[string]any{"unknown": true},
		map[string]any{"ignoreFunctions": "yes"},
		[]any{true},
	} {
		if _, err := New(settings); err == nil {
			t.Errorf("Expected error for settings %v", settings)
		}
	}
}
