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
	"slices"

	"fillmore-labs.com/preferat/checker"
)

// anonymous is the symbol name of object literal and mapped types.
const anonymous = "__type"

// tsType is a type of the test language together with the types reachable from it.
type tsType struct {
	t      checker.Type
	fields map[string]*tsType // property types
	props  *tsType            // type of undeclared properties, from an index signature
	index  *tsType            // type of computed accesses
	result *tsType            // return type of calls
}

// checkerType returns the oracle type, nil for unresolved types.
func (t *tsType) checkerType() checker.Type {
	if t == nil {
		return nil
	}

	return t.t
}

func (t *tsType) field(name string) *tsType {
	if t == nil {
		return nil
	}

	if f, ok := t.fields[name]; ok {
		return f
	}

	return t.props
}

func (t *tsType) element() *tsType {
	if t == nil {
		return nil
	}

	return t.index
}

func (t *tsType) call() *tsType {
	if t == nil {
		return nil
	}

	return t.result
}

// universe creates the predeclared types of a library target.
type universe struct {
	lib *checker.Library
}

func (u universe) named(name string) *tsType {
	t := u.lib.Lookup(name)
	if t == nil {
		return nil
	}

	return &tsType{t: t}
}

func (u universe) number() *tsType { return u.named("number") }

func (u universe) boolean() *tsType { return u.named("boolean") }

func (u universe) str() *tsType {
	s := u.named("string")
	s.fields = map[string]*tsType{"length": u.number()}
	s.index = u.named("string")

	return s
}

func (u universe) boxedString() *tsType {
	s := u.named("String")
	s.fields = map[string]*tsType{"length": u.number()}
	s.index = u.str()

	return s
}

func (u universe) numberLiteral() *tsType { return &tsType{t: u.lib.NumberLiteral()} }

func (u universe) bigintLiteral() *tsType {
	return &tsType{t: checker.NewType("", checker.FlagBigIntLiteral)}
}

func (u universe) stringLiteral() *tsType {
	return &tsType{
		t:      u.lib.StringLiteral(),
		fields: map[string]*tsType{"length": u.number()},
		index:  u.str(),
	}
}

// indexed returns an array-like type with the given symbol and element type.
func (u universe) indexed(symbol string, elem *tsType) *tsType {
	var t checker.Type
	if lt := u.lib.Lookup(symbol); lt != nil {
		t = lt
	} else {
		t = checker.NewType(symbol, checker.FlagObject, "length")
	}

	return &tsType{
		t:      t,
		fields: map[string]*tsType{"length": u.number()},
		index:  elem,
	}
}

func (u universe) array(elem *tsType) *tsType { return u.indexed("Array", elem) }

func (u universe) typedArray(name string) *tsType {
	elem := u.number()
	if name == "BigInt64Array" || name == "BigUint64Array" {
		elem = u.named("bigint")
	}

	return u.indexed(name, elem)
}

// object returns an object literal type with the given properties and optional index signature.
func (u universe) object(fields map[string]*tsType, index *tsType) *tsType {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	slices.Sort(names)

	return &tsType{
		t:      checker.NewType(anonymous, checker.FlagObject, names...),
		fields: fields,
		props:  index,
		index:  index,
	}
}

func (u universe) function(result *tsType) *tsType {
	return &tsType{
		t:      checker.NewType(anonymous, checker.FlagObject, "apply", "bind", "call"),
		result: result,
	}
}

func (u universe) union() *tsType {
	return &tsType{t: checker.NewType("", checker.FlagUnion)}
}
