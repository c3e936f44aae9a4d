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

package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/syntax"
)

// Program is a parsed source file with resolved types.
type Program struct {
	Fset *token.FileSet
	File *syntax.File
	Info *checker.Info
}

// Parse parses and type checks a test source.
func Parse(tb testing.TB, src string) Program {
	tb.Helper()

	const filename = "test.ts"

	fset := token.NewFileSet()

	f, info, err := ParseFile(fset, filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return Program{Fset: fset, File: f, Info: info}
}

// Expr returns the expression of the last statement.
func (p Program) Expr(tb testing.TB) syntax.Expr {
	tb.Helper()

	stmts := p.File.Stmts
	if len(stmts) == 0 {
		tb.Fatal("No expression statement")
	}

	s, ok := stmts[len(stmts)-1].(*syntax.ExprStmt)
	if !ok {
		tb.Fatalf("Unexpected statement %T", stmts[len(stmts)-1])
	}

	return s.X
}

// Member returns the last expression as a member access.
func (p Program) Member(tb testing.TB) *syntax.MemberExpr {
	tb.Helper()

	m, ok := p.Expr(tb).(*syntax.MemberExpr)
	if !ok {
		tb.Fatalf("Expected member expression, got %T", p.Expr(tb))
	}

	return m
}

// Text returns the source text of n.
func (p Program) Text(n syntax.Node) string {
	handle := p.Fset.File(n.Pos())

	return string(p.File.Src[handle.Offset(n.Pos()):handle.Offset(n.End())])
}
