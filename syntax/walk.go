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

package syntax

import "iter"

// Inspect traverses the tree rooted at node in depth-first source order.
// It calls f(node); if f returns true, Inspect visits the children of node.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *ExprStmt:
		Inspect(n.X, f)

	case *MemberExpr:
		Inspect(n.Object, f)
		Inspect(n.Property, f)

	case *CallExpr:
		Inspect(n.Fun, f)

		for _, a := range n.Args {
			Inspect(a, f)
		}

	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)

	case *UnaryExpr:
		Inspect(n.X, f)

	case *ParenExpr:
		Inspect(n.X, f)
	}
}

// Preorder returns an iterator over all nodes of the tree rooted at root
// whose kind is one of kinds, in depth-first source order.
// Without kinds, all nodes are visited.
func Preorder(root Node, kinds ...Kind) iter.Seq[Node] {
	var mask uint64
	for _, k := range kinds {
		mask |= 1 << k
	}

	return func(yield func(Node) bool) {
		done := false

		Inspect(root, func(n Node) bool {
			if done {
				return false
			}

			if mask == 0 || mask&(1<<n.Kind()) != 0 {
				done = !yield(n)
			}

			return !done
		})
	}
}
