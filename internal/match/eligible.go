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
	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/syntax"
)

// Accessor is the name of the relative indexing method.
const Accessor = "at"

// Checker decides whether the object of a member access supports relative indexing.
type Checker struct {
	types           checker.Oracle
	allow           AllowList
	ignoreFunctions bool
}

// NewChecker creates a [Checker] querying types, accepting the types in allow.
//
// When ignoreFunctions is set, objects whose member access chain starts at a call are rejected.
func NewChecker(types checker.Oracle, allow AllowList, ignoreFunctions bool) Checker {
	return Checker{types: types, allow: allow, ignoreFunctions: ignoreFunctions}
}

// ExpectedObject returns n as a member access if its object is an indexable type with an [Accessor] member.
func (c Checker) ExpectedObject(n syntax.Node) (*syntax.MemberExpr, bool) {
	member, ok := n.(*syntax.MemberExpr)
	if !ok {
		return nil, false
	}

	if c.ignoreFunctions && fromCall(member.Object) {
		return nil, false
	}

	t := c.types.TypeOf(member.Object)
	if !c.allow.Allows(t) || !t.HasMember(Accessor) {
		return nil, false
	}

	return member, true
}

// NumberLike reports whether the type of e is number-like.
func (c Checker) NumberLike(e syntax.Expr) bool {
	t := c.types.TypeOf(e)

	return t != nil && t.Flags().Has(checker.NumberLike)
}

// fromCall reports whether e, or any object along its member access chain, is a call.
func fromCall(e syntax.Expr) bool {
	for {
		switch x := syntax.Unparen(e).(type) {
		case *syntax.CallExpr:
			return true

		case *syntax.MemberExpr:
			e = x.Object

		default:
			return false
		}
	}
}
