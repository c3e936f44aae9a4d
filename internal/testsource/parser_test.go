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

package testsource_test

import (
	"go/token"
	"testing"

	"fillmore-labs.com/preferat/checker"
	. "fillmore-labs.com/preferat/internal/testsource"
	"fillmore-labs.com/preferat/syntax"
)

const declarations = `// @lib: esnext
type Matrix = number[][];
declare const m: Matrix;
declare const s: string;
declare const rec: Record<string, number[]>;
declare const obj: { items: Uint8Array; get(i: number): string };
declare this: { list: bigint[] };
declare function make(n: number, f: (x: number) => void): string[];
`

func TestTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr   string
		symbol string
		flags  checker.TypeFlags
	}{
		{"m", "Array", checker.FlagObject},
		{"m[0]", "Array", checker.FlagObject},
		{"m[0][1]", "", checker.FlagNumber},
		{"m.length", "", checker.FlagNumber},
		{"s", "", checker.FlagString},
		{"s[0]", "", checker.FlagString},
		{"s + 1", "", checker.FlagString},
		{"rec.anything", "Array", checker.FlagObject},
		{"rec[\"key\"].length", "", checker.FlagNumber},
		{"obj.items", "Uint8Array", checker.FlagObject},
		{"obj.get(1)", "", checker.FlagString},
		{"this.list", "Array", checker.FlagObject},
		{"this.list[0]", "", checker.FlagBigInt},
		{"make(1, f)", "Array", checker.FlagObject},
		{"(m)", "Array", checker.FlagObject},
		{"\"abc\"", "", checker.FlagStringLiteral},
		{"1n", "", checker.FlagBigIntLiteral},
		{"!s", "", checker.FlagBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			p := Parse(t, declarations+tt.expr+";")

			typ := p.Info.TypeOf(p.Expr(t))
			if typ == nil {
				t.Fatalf("No type for %s", tt.expr)
			}

			if typ.Symbol() != tt.symbol || typ.Flags() != tt.flags {
				t.Errorf("Got type %q %v, want %q %v", typ.Symbol(), typ.Flags(), tt.symbol, tt.flags)
			}
		})
	}
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"x", "obj.missing", "m.length.foo", "s()"} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			p := Parse(t, declarations+expr+";")

			if typ := p.Info.TypeOf(p.Expr(t)); typ != nil {
				t.Errorf("Got type %v for %s", typ, expr)
			}
		})
	}
}

func TestLibraryTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{"declare const a: number[];\na;", true},
		{"// @lib: es2021\ndeclare const a: number[];\na;", false},
		{"// @lib: ES2022\ndeclare const a: number[];\na;", true},
	}

	for _, tt := range tests {
		p := Parse(t, tt.src)

		if got := p.Info.TypeOf(p.Expr(t)).HasMember("at"); got != tt.want {
			t.Errorf("%q: HasMember(\"at\") = %t, want %t", tt.src, got, tt.want)
		}
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	const src = "declare const a: number[];\na?.[a.length - 1]; // trailing\n"

	p := Parse(t, src)

	m := p.Member(t)
	if !m.Computed || !m.Optional {
		t.Errorf("Expected optional computed access, got %+v", m)
	}

	if got, want := p.Text(m), "a?.[a.length - 1]"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	sub, ok := m.Property.(*syntax.BinaryExpr)
	if !ok || sub.Op != syntax.Sub {
		t.Fatalf("Expected subtraction, got %v", m.Property)
	}

	if got, want := p.Text(sub.X), "a.length"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if len(p.File.Comments) != 1 || p.File.Comments[0].Text != "// trailing" {
		t.Errorf("Unexpected comments %v", p.File.Comments)
	}

	if got := p.Fset.Position(p.File.Comments[0].Pos()); got.Line != 2 {
		t.Errorf("Comment at line %d, want 2", got.Line)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"declare const a: Unknown;",
		"declare const a: number",
		"declare class A;",
		"a[1;",
		"a?.;",
		"\"unterminated;",
		"// @lib: es5\na;",
		"declare function f(: number;",
	} {
		if _, _, err := ParseFile(token.NewFileSet(), "bad.ts", []byte(src)); err == nil {
			t.Errorf("Expected error for %q", src)
		}
	}
}
