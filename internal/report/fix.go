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

package report

import (
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/preferat/internal/match"
	"fillmore-labs.com/preferat/syntax"
)

const fixMessage = "Use ." + match.Accessor + "()"

// CreateFix builds the fix replacing the complete element access with a relative [match.Accessor] call.
func CreateFix(src match.Source, m match.Match) analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message: fixMessage,
		TextEdits: []analysis.TextEdit{{
			Pos:     m.Node.Pos(),
			End:     m.Node.End(),
			NewText: []byte(Replacement(src, m)),
		}},
	}
}

// Replacement returns `<object>.at(-<offset>)`.
//
// Offsets which are not atomic are parenthesized, so `a[a.length - -1]` becomes `a.at(-(-1))`.
// An optional outer access stays optional.
func Replacement(src match.Source, m match.Match) string {
	object, offset := src.Text(m.Node.Object), src.Text(m.Offset)

	var b strings.Builder
	b.Grow(len(object) + len(offset) + len("?.at(-())"))

	b.WriteString(object) // ignore error

	if m.Node.Optional {
		b.WriteString("?.") // ignore error
	} else {
		b.WriteByte('.') // ignore error
	}

	b.WriteString(match.Accessor) // ignore error
	b.WriteString("(-")           // ignore error

	if NeedParens(m.Offset) {
		b.WriteByte('(')      // ignore error
		b.WriteString(offset) // ignore error
		b.WriteByte(')')      // ignore error
	} else {
		b.WriteString(offset) // ignore error
	}

	b.WriteByte(')') // ignore error

	return b.String()
}

// NeedParens reports whether e must be parenthesized when negated.
func NeedParens(e syntax.Expr) bool {
	switch e.(type) {
	case *syntax.Ident, *syntax.ThisExpr, *syntax.NumericLit, *syntax.StringLit,
		*syntax.MemberExpr, *syntax.CallExpr, *syntax.ParenExpr:
		return false

	default:
		return true
	}
}
