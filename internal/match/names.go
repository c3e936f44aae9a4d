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

import "fillmore-labs.com/preferat/syntax"

// Name returns the display name of an identifier, or the property name of a non-computed member access.
//
// Member accesses are resolved through their property, not their object: the name of `a.b.length` is "length".
// Computed accesses deliberately have no name: `a[length]` refers to a variable, not to the length property,
// so `a[a[length] - 1]` is not mistaken for a last-element access.
func Name(n syntax.Node) (string, bool) {
	switch n := n.(type) {
	case *syntax.Ident:
		return n.Name, true

	case *syntax.MemberExpr:
		if n.Computed {
			return "", false
		}

		return Name(n.Property)

	default:
		return "", false
	}
}
