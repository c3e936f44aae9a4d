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

package checker

import (
	"fmt"
	"slices"
	"strings"
)

// Target is an ECMAScript library level.
type Target uint8

const (
	ES2021 Target = iota
	ES2022
	ESNext

	// DefaultTarget is the library level used when none is configured.
	DefaultTarget = ES2022
)

var targetNames = [...]string{"es2021", "es2022", "esnext"}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}

	return fmt.Sprintf("Target(%d)", t)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Target) MarshalText() ([]byte, error) {
	if int(t) >= len(targetNames) {
		return nil, fmt.Errorf("unknown library target %d", t)
	}

	return []byte(targetNames[t]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Target) UnmarshalText(text []byte) error {
	switch s := strings.ToLower(string(text)); s {
	case "":
		*t = DefaultTarget

	case "latest":
		*t = ESNext

	default:
		i := slices.Index(targetNames[:], s)
		if i < 0 {
			return fmt.Errorf("unknown library target %q", string(text))
		}

		*t = Target(i)
	}

	return nil
}

// TypedArrays lists the fixed-width typed array constructors.
var TypedArrays = [...]string{
	"Int8Array", "Uint8Array", "Uint8ClampedArray",
	"Int16Array", "Uint16Array",
	"Int32Array", "Float32Array", "Uint32Array", "Float64Array",
	"BigInt64Array", "BigUint64Array",
}

var (
	arrayMembers = []string{
		"length", "concat", "copyWithin", "entries", "every", "fill", "filter", "find", "findIndex",
		"forEach", "includes", "indexOf", "join", "keys", "lastIndexOf", "map", "reduce", "reduceRight",
		"reverse", "slice", "some", "sort", "toString", "values",
	}
	mutableArrayMembers = []string{"flat", "flatMap", "pop", "push", "shift", "splice", "unshift"}
	typedArrayMembers   = []string{"buffer", "byteLength", "byteOffset", "set", "subarray"}
	stringMembers       = []string{
		"length", "charAt", "charCodeAt", "codePointAt", "concat", "endsWith", "includes", "indexOf",
		"lastIndexOf", "padEnd", "padStart", "repeat", "replace", "replaceAll", "slice", "split",
		"startsWith", "substring", "toLowerCase", "toUpperCase", "trim", "trimEnd", "trimStart",
	}
	numberMembers = []string{"toExponential", "toFixed", "toPrecision", "toString", "valueOf"}

	// es2022Members are added to every indexable type from ES2022 on.
	es2022Members = []string{"at"}

	// esnextArrayMembers are added to arrays and typed arrays for ESNext.
	esnextArrayMembers = []string{"findLast", "findLastIndex", "toReversed", "toSorted", "with"}
)

// Library holds the declarations of the built-in types of a library level.
type Library struct {
	target Target
	types  map[string]*Declared
}

// NewLibrary returns the built-in declarations for the given target.
func NewLibrary(target Target) *Library {
	l := &Library{target: target, types: make(map[string]*Declared)}

	array := append(slices.Clone(arrayMembers), mutableArrayMembers...)
	typed := append(slices.Clone(arrayMembers), typedArrayMembers...)
	str := slices.Clone(stringMembers)

	if target >= ES2022 {
		array = append(array, es2022Members...)
		typed = append(typed, es2022Members...)
		str = append(str, es2022Members...)
	}

	if target >= ESNext {
		array = append(array, esnextArrayMembers...)
		typed = append(typed, esnextArrayMembers...)
	}

	l.types["Array"] = NewType("Array", FlagObject, array...)
	l.types["ReadonlyArray"] = NewType("ReadonlyArray", FlagObject, slices.DeleteFunc(slices.Clone(array),
		func(m string) bool { return slices.Contains(mutableArrayMembers, m) })...)

	for _, name := range TypedArrays {
		l.types[name] = NewType(name, FlagObject, typed...)
	}

	l.types["String"] = NewType("String", FlagObject, str...)
	l.types["string"] = NewType("", FlagString, str...)
	l.types["Number"] = NewType("Number", FlagObject, numberMembers...)
	l.types["number"] = NewType("", FlagNumber, numberMembers...)
	l.types["bigint"] = NewType("", FlagBigInt, "toLocaleString", "toString", "valueOf")
	l.types["boolean"] = NewType("", FlagBoolean, "valueOf")
	l.types["any"] = NewType("", FlagAny)
	l.types["unknown"] = NewType("", FlagUnknown)
	l.types["void"] = NewType("", FlagVoid)
	l.types["undefined"] = NewType("", FlagUndefined)
	l.types["null"] = NewType("", FlagNull)
	l.types["never"] = NewType("", FlagNever)

	return l
}

// Target returns the library level.
func (l *Library) Target() Target { return l.target }

// Lookup returns the built-in type with the given name, or nil if there is none.
//
// Primitive types are named in lower case ("string", "number"), their boxed
// and object counterparts by their symbol name ("String", "Array", "Int8Array").
func (l *Library) Lookup(name string) Type {
	if t, ok := l.types[name]; ok {
		return t
	}

	return nil
}

// NumberLiteral returns the type of a numeric literal.
func (l *Library) NumberLiteral() *Declared {
	return NewType("", FlagNumberLiteral, numberMembers...)
}

// StringLiteral returns the type of a string literal.
func (l *Library) StringLiteral() *Declared {
	return &Declared{flags: FlagStringLiteral, members: l.types["string"].members}
}
