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

	"fillmore-labs.com/preferat/checker"
	. "fillmore-labs.com/preferat/internal/match"
)

func TestIndexable(t *testing.T) {
	t.Parallel()

	lib := checker.NewLibrary(checker.DefaultTarget)
	allow := Indexable()

	tests := []struct {
		name string
		typ  checker.Type
		want bool
	}{
		{"Array", lib.Lookup("Array"), true},
		{"Int8Array", lib.Lookup("Int8Array"), true},
		{"BigUint64Array", lib.Lookup("BigUint64Array"), true},
		{"String", lib.Lookup("String"), true},
		{"string", lib.Lookup("string"), true},
		{"ReadonlyArray", lib.Lookup("ReadonlyArray"), false},
		{"string literal", lib.StringLiteral(), false},
		{"string union", checker.NewType("", checker.FlagString|checker.FlagUnion), false},
		{"number", lib.Lookup("number"), false},
		{"any", lib.Lookup("any"), false},
		{"custom", checker.NewType("MyArray", checker.FlagObject, "at", "length"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := allow.Allows(tt.typ); got != tt.want {
				t.Errorf("Allows(%v) = %t, want %t", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIndexableSize(t *testing.T) {
	t.Parallel()

	if got, want := len(Indexable()), 1+len(checker.TypedArrays)+2; got != want {
		t.Errorf("Got %d predicates, want %d", got, want)
	}
}

func TestPredicateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Predicate
		want string
	}{
		{ByName("Array"), "symbol Array"},
		{ByFlags(checker.FlagString), "flags String"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}

func TestEmptyAllowList(t *testing.T) {
	t.Parallel()

	var allow AllowList
	if allow.Allows(checker.NewType("Array", checker.FlagObject)) {
		t.Error("Empty allow-list accepts a type")
	}
}
