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

import "fillmore-labs.com/preferat/syntax"

// Info is an [Oracle] backed by a table of precomputed expression types.
//
// Parenthesized expressions without an own entry resolve to the type of the enclosed expression.
type Info struct {
	Types map[syntax.Expr]Type
}

// NewInfo returns an empty [Info].
func NewInfo() *Info {
	return &Info{Types: make(map[syntax.Expr]Type)}
}

// Record sets the type of e.
func (i *Info) Record(e syntax.Expr, t Type) {
	if t == nil {
		return
	}

	i.Types[e] = t
}

// TypeOf implements [Oracle].
func (i *Info) TypeOf(e syntax.Expr) Type {
	if i == nil {
		return nil
	}

	for {
		if t, ok := i.Types[e]; ok {
			return t
		}

		paren, ok := e.(*syntax.ParenExpr)
		if !ok {
			return nil
		}

		e = paren.X
	}
}
