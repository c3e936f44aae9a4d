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

package syntax_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/preferat/internal/testsource"
	. "fillmore-labs.com/preferat/syntax"
)

const src = `declare const a: number[];
declare function f(): number;
a[a.length - f(1, -2)];
(a).length;
`

func TestPreorder(t *testing.T) {
	t.Parallel()

	p := testsource.Parse(t, src)

	tests := []struct {
		name  string
		kinds []Kind
		want  []string
	}{
		{"members", []Kind{KindMember}, []string{"a[a.length - f(1, -2)]", "a.length", "(a).length"}},
		{"calls and literals", []Kind{KindCall, KindNumericLit}, []string{"f(1, -2)", "1", "2"}},
		{"statements", []Kind{KindExprStmt}, []string{"a[a.length - f(1, -2)];", "(a).length;"}},
		{"binary", []Kind{KindBinary, KindUnary}, []string{"a.length - f(1, -2)", "-2"}},
		{"parens", []Kind{KindParen}, []string{"(a)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for n := range Preorder(p.File, tt.kinds...) {
				got = append(got, p.Text(n))
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Preorder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreorderAll(t *testing.T) {
	t.Parallel()

	p := testsource.Parse(t, "a.b;")

	var got []Kind
	for n := range Preorder(p.File) {
		got = append(got, n.Kind())
	}

	want := []Kind{KindFile, KindExprStmt, KindMember, KindIdent, KindIdent}
	if !slices.Equal(got, want) {
		t.Errorf("Got kinds %v, want %v", got, want)
	}
}

func TestPreorderBreak(t *testing.T) {
	t.Parallel()

	p := testsource.Parse(t, src)

	count := 0
	for range Preorder(p.File, KindIdent) {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("Got %d nodes, want 2", count)
	}
}

func TestInspectPrune(t *testing.T) {
	t.Parallel()

	p := testsource.Parse(t, src)

	var members int

	Inspect(p.File, func(n Node) bool {
		if n.Kind() == KindMember {
			members++

			return false
		}

		return true
	})

	if members != 2 {
		t.Errorf("Got %d outermost member accesses, want 2", members)
	}
}

func TestUnparen(t *testing.T) {
	t.Parallel()

	id := &Ident{Name: "a"}

	if got := Unparen(&ParenExpr{X: &ParenExpr{X: id}}); got != id {
		t.Errorf("Got %v, want %v", got, id)
	}

	if got := Unparen(id); got != id {
		t.Errorf("Got %v, want %v", got, id)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind fmt.Stringer
		want string
	}{
		{KindMember, "MemberExpression"},
		{KindParen, "ParenthesizedExpression"},
		{Kind(200), "Kind(200)"},
		{Sub, "-"},
		{Operator(100), "Operator(100)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}
