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

package match

import (
	"fmt"

	"fillmore-labs.com/preferat/checker"
)

// Predicate accepts or rejects a type.
type Predicate interface {
	Accept(t checker.Type) bool
	fmt.Stringer
}

// ByName accepts types whose symbol has the given name.
type ByName string

// Accept implements [Predicate].
func (p ByName) Accept(t checker.Type) bool { return t.Symbol() == string(p) }

func (p ByName) String() string { return "symbol " + string(p) }

// ByFlags accepts types with exactly the given flags.
type ByFlags checker.TypeFlags

// Accept implements [Predicate].
func (p ByFlags) Accept(t checker.Type) bool { return t.Flags() == checker.TypeFlags(p) }

func (p ByFlags) String() string { return "flags " + checker.TypeFlags(p).String() }

// AllowList is an ordered set of type predicates. A type is allowed when any predicate accepts it.
type AllowList []Predicate

// Allows reports whether t is accepted by any predicate.
func (a AllowList) Allows(t checker.Type) bool {
	if t == nil {
		return false
	}

	for _, p := range a {
		if p.Accept(t) {
			return true
		}
	}

	return false
}

// Indexable returns the allow-list of types supporting relative indexing:
// arrays, typed arrays and strings.
func Indexable() AllowList {
	a := make(AllowList, 0, 1+len(checker.TypedArrays)+2)

	a = append(a, ByName("Array"))
	for _, name := range checker.TypedArrays {
		a = append(a, ByName(name))
	}

	a = append(a, ByName("String"), ByFlags(checker.FlagString))

	return a
}
