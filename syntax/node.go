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

package syntax

import "go/token"

// Node is an element of a parsed program.
//
// All positions are relative to the [token.FileSet] the host parser registered the file with.
// Nodes are immutable once the host has built the tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
	Kind() Kind
}

// Expr is a [Node] in expression position.
type Expr interface {
	Node
	exprNode()
}

type (
	// Ident is an identifier.
	Ident struct {
		NamePos token.Pos
		Name    string
	}

	// ThisExpr is the `this` keyword.
	ThisExpr struct {
		This token.Pos
	}

	// MemberExpr is a property access, either `Object.Property` or, when Computed, `Object[Property]`.
	//
	// Optional marks the `?.` form. The Property of a non-computed access is an [*Ident].
	MemberExpr struct {
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
		Rbrack   token.Pos // position of "]" for computed accesses
	}

	// CallExpr is a call `Fun(Args)`.
	CallExpr struct {
		Fun      Expr
		Lparen   token.Pos
		Args     []Expr
		Rparen   token.Pos
		Optional bool
	}

	// BinaryExpr is a binary expression `X Op Y`.
	BinaryExpr struct {
		X     Expr
		OpPos token.Pos
		Op    Operator
		Y     Expr
	}

	// UnaryExpr is a prefix expression `Op X`.
	UnaryExpr struct {
		OpPos token.Pos
		Op    Operator
		X     Expr
	}

	// ParenExpr is a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos
		X      Expr
		Rparen token.Pos
	}

	// NumericLit is a numeric literal. Value is the literal as written.
	NumericLit struct {
		ValuePos token.Pos
		Value    string
	}

	// StringLit is a string literal. Value is the literal as written, including quotes.
	StringLit struct {
		ValuePos token.Pos
		Value    string
	}
)

func (x *Ident) Pos() token.Pos      { return x.NamePos }
func (x *ThisExpr) Pos() token.Pos   { return x.This }
func (x *MemberExpr) Pos() token.Pos { return x.Object.Pos() }
func (x *CallExpr) Pos() token.Pos   { return x.Fun.Pos() }
func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *UnaryExpr) Pos() token.Pos  { return x.OpPos }
func (x *ParenExpr) Pos() token.Pos  { return x.Lparen }
func (x *NumericLit) Pos() token.Pos { return x.ValuePos }
func (x *StringLit) Pos() token.Pos  { return x.ValuePos }

func (x *Ident) End() token.Pos    { return x.NamePos + token.Pos(len(x.Name)) }
func (x *ThisExpr) End() token.Pos { return x.This + token.Pos(len("this")) }

func (x *MemberExpr) End() token.Pos {
	if x.Computed {
		return x.Rbrack + 1
	}

	return x.Property.End()
}

func (x *CallExpr) End() token.Pos   { return x.Rparen + 1 }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }
func (x *UnaryExpr) End() token.Pos  { return x.X.End() }
func (x *ParenExpr) End() token.Pos  { return x.Rparen + 1 }
func (x *NumericLit) End() token.Pos { return x.ValuePos + token.Pos(len(x.Value)) }
func (x *StringLit) End() token.Pos  { return x.ValuePos + token.Pos(len(x.Value)) }

func (*Ident) Kind() Kind      { return KindIdent }
func (*ThisExpr) Kind() Kind   { return KindThis }
func (*MemberExpr) Kind() Kind { return KindMember }
func (*CallExpr) Kind() Kind   { return KindCall }
func (*BinaryExpr) Kind() Kind { return KindBinary }
func (*UnaryExpr) Kind() Kind  { return KindUnary }
func (*ParenExpr) Kind() Kind  { return KindParen }
func (*NumericLit) Kind() Kind { return KindNumericLit }
func (*StringLit) Kind() Kind  { return KindStringLit }

func (*Ident) exprNode()      {}
func (*ThisExpr) exprNode()   {}
func (*MemberExpr) exprNode() {}
func (*CallExpr) exprNode()   {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*ParenExpr) exprNode()  {}
func (*NumericLit) exprNode() {}
func (*StringLit) exprNode()  {}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	X    Expr
	Semi token.Pos // position of ";", [token.NoPos] if absent
}

func (s *ExprStmt) Pos() token.Pos { return s.X.Pos() }

func (s *ExprStmt) End() token.Pos {
	if s.Semi.IsValid() {
		return s.Semi + 1
	}

	return s.X.End()
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }

// Comment is a single `//` or `/* */` comment.
type Comment struct {
	Slash token.Pos
	Text  string // comment text, including the comment markers
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return c.Slash + token.Pos(len(c.Text)) }

// File is a parsed source file together with its source text.
//
// Comments are sorted by position. Src is the complete file content the positions refer to.
type File struct {
	Name      string
	FileStart token.Pos
	FileEnd   token.Pos
	Src       []byte
	Stmts     []Node
	Comments  []*Comment
}

func (f *File) Pos() token.Pos { return f.FileStart }
func (f *File) End() token.Pos { return f.FileEnd }
func (*File) Kind() Kind       { return KindFile }

// Unparen returns the expression with any enclosing parentheses removed.
func Unparen(e Expr) Expr {
	for {
		paren, ok := e.(*ParenExpr)
		if !ok {
			return e
		}

		e = paren.X
	}
}
