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
	"strings"

	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/syntax"
)

// typed records the type of an expression and returns both.
type typed struct {
	x syntax.Expr
	t *tsType
}

func (p *parser) record(x syntax.Expr, t *tsType) typed {
	p.info.Record(x, t.checkerType())

	return typed{x, t}
}

func (p *parser) expr() syntax.Expr {
	return p.binaryExpr(1).x
}

var binaryOps = map[string]struct {
	op   syntax.Operator
	prec int
}{
	"+": {syntax.Add, 1},
	"-": {syntax.Sub, 1},
	"*": {syntax.Mul, 2},
	"/": {syntax.Quo, 2},
	"%": {syntax.Rem, 2},
}

func (p *parser) binaryExpr(prec1 int) typed {
	x := p.unaryExpr()

	for {
		tok := p.tok()
		if tok.kind != tokPunct {
			return x
		}

		op, ok := binaryOps[tok.text]
		if !ok || op.prec < prec1 {
			return x
		}

		pos := p.next()
		y := p.binaryExpr(op.prec + 1)

		x = p.record(&syntax.BinaryExpr{X: x.x, OpPos: pos, Op: op.op, Y: y.x}, p.binaryType(op.op, x.t, y.t))
	}
}

func (p *parser) binaryType(op syntax.Operator, x, y *tsType) *tsType {
	if op == syntax.Add && (isStringLike(x) || isStringLike(y)) {
		return p.u.str()
	}

	return p.u.number()
}

func isStringLike(t *tsType) bool {
	ct := t.checkerType()

	return ct != nil && ct.Flags().Has(checker.StringLike)
}

var unaryOps = map[string]syntax.Operator{
	"-": syntax.Sub,
	"+": syntax.Add,
	"!": syntax.Not,
}

func (p *parser) unaryExpr() typed {
	if tok := p.tok(); tok.kind == tokPunct {
		if op, ok := unaryOps[tok.text]; ok {
			pos := p.next()
			x := p.unaryExpr()

			t := p.u.number()
			if op == syntax.Not {
				t = p.u.boolean()
			}

			return p.record(&syntax.UnaryExpr{OpPos: pos, Op: op, X: x.x}, t)
		}
	}

	return p.postfixExpr(p.primaryExpr())
}

func (p *parser) primaryExpr() typed {
	tok := p.tok()

	switch tok.kind {
	case tokIdent:
		pos := p.next()

		if tok.text == "this" {
			return p.record(&syntax.ThisExpr{This: pos}, p.this)
		}

		return p.record(&syntax.Ident{NamePos: pos, Name: tok.text}, p.values[tok.text])

	case tokNumber:
		pos := p.next()

		t := p.u.numberLiteral()
		if strings.HasSuffix(tok.text, "n") {
			t = p.u.bigintLiteral()
		}

		return p.record(&syntax.NumericLit{ValuePos: pos, Value: tok.text}, t)

	case tokString:
		pos := p.next()

		return p.record(&syntax.StringLit{ValuePos: pos, Value: tok.text}, p.u.stringLiteral())

	default:
		if p.isPunct("(") {
			lparen := p.next()
			x := p.binaryExpr(1)
			rparen := p.expect(")")

			return p.record(&syntax.ParenExpr{Lparen: lparen, X: x.x, Rparen: rparen}, x.t)
		}

		p.errorf("unexpected %q", tok.text)

		return typed{}
	}
}

func (p *parser) postfixExpr(x typed) typed {
	for {
		optional := false

		if p.isPunct("?.") {
			p.next()

			optional = true

			if p.tok().kind == tokIdent {
				x = p.property(x, optional)

				continue
			}
		}

		switch {
		case p.isPunct(".") && !optional:
			p.next()
			x = p.property(x, false)

		case p.isPunct("["):
			p.next()
			index := p.binaryExpr(1)
			rbrack := p.expect("]")

			x = p.record(&syntax.MemberExpr{
				Object:   x.x,
				Property: index.x,
				Computed: true,
				Optional: optional,
				Rbrack:   rbrack,
			}, x.t.element())

		case p.isPunct("("):
			lparen := p.next()
			args := p.arguments()
			rparen := p.expect(")")

			x = p.record(&syntax.CallExpr{
				Fun:      x.x,
				Lparen:   lparen,
				Args:     args,
				Rparen:   rparen,
				Optional: optional,
			}, x.t.call())

		default:
			if optional {
				p.errorf("unexpected %q after ?.", p.tok().text)
			}

			return x
		}
	}
}

func (p *parser) property(x typed, optional bool) typed {
	tok := p.tok()
	name := p.ident()
	id := &syntax.Ident{NamePos: p.handle.Pos(tok.off), Name: name}

	return p.record(&syntax.MemberExpr{Object: x.x, Property: id, Optional: optional}, x.t.field(name))
}

func (p *parser) arguments() []syntax.Expr {
	var args []syntax.Expr

	for !p.isPunct(")") {
		args = append(args, p.binaryExpr(1).x)

		if !p.isPunct(",") {
			break
		}

		p.next()
	}

	return args
}
