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

package match_test

import (
	"testing"

	. "fillmore-labs.com/preferat/internal/match"
	"fillmore-labs.com/preferat/internal/testsource"
)

func TestName(t *testing.T) {
	t.Parallel()

	const decl = "declare const a: { b: { length: number } }; declare const length: number;\n"

	tests := []struct {
		name   string
		expr   string
		want   string
		wantOK bool
	}{
		{"identifier", "a", "a", true},
		{"member", "a.b", "b", true},
		{"nested member", "a.b.length", "length", true},
		{"computed", "a[length]", "", false},
		{"literal", "1", "", false},
		{"parenthesized", "(a)", "", false},
		{"binary", "length - 1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := testsource.Parse(t, decl+tt.expr+";")

			got, ok := Name(p.Expr(t))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name(%s) = %q, %t, want %q, %t", tt.expr, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
