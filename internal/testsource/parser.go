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
	"fmt"
	"go/token"
	"regexp"
	"slices"

	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/syntax"
)

// ParseFile parses a source file of the test language and resolves the types of all expressions.
//
// The language is a small TypeScript subset: ambient declarations
//
//	declare const name: Type;
//	declare function name(): Type;
//	declare this: Type;
//	type Name = Type;
//
// followed by expression statements. A `// @lib: es2021` comment selects the library target.
func ParseFile(fset *token.FileSet, filename string, src []byte) (*syntax.File, *checker.Info, error) {
	target, err := libTarget(src)
	if err != nil {
		return nil, nil, err
	}

	tokens, comments, err := scan(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}

	handle := fset.AddFile(filename, -1, len(src))
	handle.SetLinesForContent(src)

	p := &parser{
		handle:  handle,
		tokens:  tokens,
		u:       universe{lib: checker.NewLibrary(target)},
		info:    checker.NewInfo(),
		values:  make(map[string]*tsType),
		aliases: make(map[string]*tsType),
	}

	file := &syntax.File{
		Name:      filename,
		FileStart: handle.Pos(0),
		FileEnd:   handle.Pos(len(src)),
		Src:       src,
		Comments:  make([]*syntax.Comment, 0, len(comments)),
	}

	for _, c := range comments {
		file.Comments = append(file.Comments, &syntax.Comment{Slash: handle.Pos(c.off), Text: c.text})
	}

	if file.Stmts, err = p.parse(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}

	return file, p.info, nil
}

var libPattern = regexp.MustCompile(`(?m)^//\s*@lib:\s*(\S+)\s*$`)

func libTarget(src []byte) (checker.Target, error) {
	target := checker.DefaultTarget

	if m := libPattern.FindSubmatch(src); m != nil {
		if err := target.UnmarshalText(m[1]); err != nil {
			return 0, err
		}
	}

	return target, nil
}

type parser struct {
	handle *token.File
	tokens []lexeme
	pos    int

	u       universe
	info    *checker.Info
	values  map[string]*tsType
	aliases map[string]*tsType
	this    *tsType
}

// bailout is used to abort parsing on the first error.
type bailout struct{ err error }

func (p *parser) errorf(format string, args ...any) {
	tok := p.tok()
	position := p.handle.Position(p.handle.Pos(tok.off))

	panic(bailout{fmt.Errorf("%d:%d: %s", position.Line, position.Column, fmt.Sprintf(format, args...))})
}

func (p *parser) parse() (stmts []syntax.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}

			stmts, err = nil, b.err
		}
	}()

	for p.tok().kind != tokEOF {
		switch {
		case p.isIdent("declare"):
			p.declaration()

		case p.isIdent("type") && p.peek(1).kind == tokIdent:
			p.alias()

		default:
			stmts = append(stmts, p.exprStmt())
		}
	}

	return stmts, nil
}

func (p *parser) tok() lexeme { return p.tokens[p.pos] }

func (p *parser) peek(n int) lexeme {
	return p.tokens[min(p.pos+n, len(p.tokens)-1)]
}

func (p *parser) next() token.Pos {
	tok := p.tok()
	if tok.kind != tokEOF {
		p.pos++
	}

	return p.handle.Pos(tok.off)
}

func (p *parser) isIdent(name string) bool {
	tok := p.tok()

	return tok.kind == tokIdent && tok.text == name
}

func (p *parser) isPunct(text string) bool {
	tok := p.tok()

	return tok.kind == tokPunct && tok.text == text
}

func (p *parser) expect(text string) token.Pos {
	if !p.isPunct(text) {
		p.errorf("expected %q, found %q", text, p.tok().text)
	}

	return p.next()
}

func (p *parser) ident() string {
	tok := p.tok()
	if tok.kind != tokIdent {
		p.errorf("expected identifier, found %q", tok.text)
	}

	p.next()

	return tok.text
}

// declaration parses an ambient declaration.
func (p *parser) declaration() {
	p.next() // declare

	switch {
	case p.isIdent("const"), p.isIdent("let"), p.isIdent("var"):
		p.next()
		name := p.ident()
		p.expect(":")
		p.values[name] = p.typ()

	case p.isIdent("function"):
		p.next()
		name := p.ident()
		p.parameters()
		p.expect(":")
		p.values[name] = p.u.function(p.typ())

	case p.isIdent("this"):
		p.next()
		p.expect(":")
		p.this = p.typ()

	default:
		p.errorf("unsupported declaration %q", p.tok().text)
	}

	p.expect(";")
}

// alias parses a type alias.
func (p *parser) alias() {
	p.next() // type
	name := p.ident()
	p.expect("=")
	p.aliases[name] = p.typ()
	p.expect(";")
}

// parameters skips a parameter list.
func (p *parser) parameters() {
	p.expect("(")

	for depth := 1; depth > 0; {
		switch {
		case p.tok().kind == tokEOF:
			p.errorf("unterminated parameter list")

		case p.isPunct("("):
			depth++

		case p.isPunct(")"):
			depth--
		}

		p.next()
	}
}

// typ parses a type.
func (p *parser) typ() *tsType {
	t := p.postfixType()

	if !p.isPunct("|") {
		return t
	}

	for p.isPunct("|") {
		p.next()
		p.postfixType()
	}

	return p.u.union()
}

func (p *parser) postfixType() *tsType {
	t := p.primaryType()

	for p.isPunct("[") && p.peek(1).kind == tokPunct && p.peek(1).text == "]" {
		p.next()
		p.next()

		t = p.u.array(t)
	}

	return t
}

var primitives = []string{
	"number", "boolean", "bigint", "any", "unknown", "void", "undefined", "null", "never",
}

func (p *parser) primaryType() *tsType {
	switch {
	case p.isPunct("("):
		p.next()
		t := p.typ()
		p.expect(")")

		return t

	case p.isPunct("{"):
		return p.objectType()
	}

	name := p.ident()

	switch {
	case name == "string":
		return p.u.str()

	case name == "String":
		return p.u.boxedString()

	case slices.Contains(primitives, name):
		return p.u.named(name)

	case name == "Array", name == "ReadonlyArray", name == "ArrayLike":
		args := p.typeArguments(1)

		return p.u.indexed(name, args[0])

	case slices.Contains(checker.TypedArrays[:], name):
		return p.u.typedArray(name)

	case name == "Record":
		args := p.typeArguments(2)

		return p.u.object(nil, args[1])
	}

	if t, ok := p.aliases[name]; ok {
		return t
	}

	p.errorf("unknown type %q", name)

	return nil
}

func (p *parser) typeArguments(n int) []*tsType {
	p.expect("<")

	args := make([]*tsType, 0, n)
	for {
		args = append(args, p.typ())
		if !p.isPunct(",") {
			break
		}

		p.next()
	}

	p.expect(">")

	if len(args) != n {
		p.errorf("expected %d type arguments, got %d", n, len(args))
	}

	return args
}

// objectType parses an object literal type with properties, methods and an index signature.
func (p *parser) objectType() *tsType {
	p.expect("{")

	fields := make(map[string]*tsType)

	var index *tsType

	for !p.isPunct("}") {
		if p.isPunct("[") {
			p.next()
			p.ident()
			p.expect(":")
			p.typ()
			p.expect("]")
			p.expect(":")
			index = p.typ()
		} else {
			name := p.ident()
			if p.isPunct("(") {
				p.parameters()
				p.expect(":")
				fields[name] = p.u.function(p.typ())
			} else {
				p.expect(":")
				fields[name] = p.typ()
			}
		}

		if p.isPunct(";") || p.isPunct(",") {
			p.next()
		}
	}

	p.expect("}")

	return p.u.object(fields, index)
}

func (p *parser) exprStmt() *syntax.ExprStmt {
	s := &syntax.ExprStmt{X: p.expr()}

	if p.isPunct(";") {
		s.Semi = p.next()
	}

	return s
}
