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

// Source returns the verbatim source text of nodes.
type Source interface {
	Text(n syntax.Node) string
}

// Match is a recognized `obj[obj.length - offset]` expression.
type Match struct {
	Node   *syntax.MemberExpr // the complete element access
	Length *syntax.MemberExpr // the `obj.length` access
	Offset syntax.Expr        // the subtracted offset
	Object string             // source text of the indexed object
}

// Matcher recognizes last-element accesses via `length`.
type Matcher struct {
	Checker
}

// New creates a [Matcher] for the indexable types.
func New(types checker.Oracle, ignoreFunctions bool) Matcher {
	return Matcher{Checker: NewChecker(types, Indexable(), ignoreFunctions)}
}

// Subtraction returns the subtraction inside the brackets of a computed member access.
func Subtraction(n *syntax.MemberExpr) (*syntax.BinaryExpr, bool) {
	if !n.Computed {
		return nil, false
	}

	sub, ok := syntax.Unparen(n.Property).(*syntax.BinaryExpr)
	if !ok || sub.Op != syntax.Sub {
		return nil, false
	}

	return sub, true
}

// Match checks whether n indexes an object with its own length minus a numeric offset.
//
// Both mentions of the object must be textually identical; no alias analysis is attempted.
func (m Matcher) Match(src Source, n *syntax.MemberExpr) (Match, bool) {
	sub, ok := Subtraction(n)
	if !ok {
		return Match{}, false
	}

	length, ok := m.ExpectedObject(syntax.Unparen(sub.X))
	if !ok {
		return Match{}, false
	}

	if name, ok := Name(length); !ok || name != "length" {
		return Match{}, false
	}

	if !m.NumberLike(length) || !m.NumberLike(sub.Y) {
		return Match{}, false
	}

	objectName, memberName := src.Text(n.Object), src.Text(length.Object)
	if objectName != memberName {
		return Match{}, false
	}

	return Match{Node: n, Length: length, Offset: sub.Y, Object: objectName}, true
}
