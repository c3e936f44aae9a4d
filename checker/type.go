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
	"slices"
	"strings"

	"fillmore-labs.com/preferat/syntax"
)

// Oracle resolves the static type of expressions.
//
// Implementations wrap the host's type checker. A nil [Type] means the type could not be resolved.
// Oracles are queried synchronously and must not modify the syntax tree.
type Oracle interface {
	TypeOf(e syntax.Expr) Type
}

// Type is the statically resolved type of an expression.
type Type interface {
	// Symbol returns the name of the declared symbol of this type, or "" when there is none.
	Symbol() string

	// Flags returns the type flags.
	Flags() TypeFlags

	// HasMember reports whether the apparent type has a property with the given name.
	HasMember(name string) bool
}

// Declared is a [Type] described by a static declaration.
type Declared struct {
	symbol  string
	flags   TypeFlags
	members []string // sorted
}

// NewType creates a [Declared] type with the given symbol, flags and member names.
func NewType(symbol string, flags TypeFlags, members ...string) *Declared {
	m := slices.Clone(members)
	slices.Sort(m)

	return &Declared{symbol: symbol, flags: flags, members: slices.Compact(m)}
}

// Symbol implements [Type].
func (t *Declared) Symbol() string { return t.symbol }

// Flags implements [Type].
func (t *Declared) Flags() TypeFlags { return t.flags }

// HasMember implements [Type].
func (t *Declared) HasMember(name string) bool {
	_, found := slices.BinarySearch(t.members, name)

	return found
}

func (t *Declared) String() string {
	if t.symbol != "" {
		return t.symbol
	}

	return strings.ToLower(t.flags.String())
}
