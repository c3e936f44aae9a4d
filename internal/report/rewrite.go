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

	"fillmore-labs.com/preferat/internal/match"
	"fillmore-labs.com/preferat/syntax"
)

// Rewriter is a [match.Source] rendering nested matches in their rewritten form.
//
// The replacement of an access like `a[a.length - 1][a[a.length - 1].length - 1]`
// is then `a.at(-1).at(-1)`, which needs no further fix.
type Rewriter struct {
	src     match.Source
	matches []match.Match // in source order, outer before inner
}

// NewRewriter creates a [Rewriter] over src for matches in preorder.
func NewRewriter(src match.Source, matches []match.Match) Rewriter {
	return Rewriter{src: src, matches: matches}
}

// Text returns the source text of n with all matches inside n replaced.
func (r Rewriter) Text(n syntax.Node) string {
	text := r.src.Text(n)
	start, end := n.Pos(), n.End()

	var b strings.Builder

	last := start

	for _, m := range r.matches {
		pos, mend := m.Node.Pos(), m.Node.End()
		if pos >= end {
			break
		}

		if pos < last || mend > end {
			continue // outside of n or nested in an earlier replacement
		}

		b.WriteString(text[last-start : pos-start]) // ignore error
		b.WriteString(Replacement(r, m))            // ignore error

		last = mend
	}

	if last == start {
		return text
	}

	b.WriteString(text[last-start:]) // ignore error

	return b.String()
}
