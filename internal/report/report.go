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
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/preferat/internal/match"
)

// Category classifies the diagnostics of this rule.
const Category = "prefer-at"

const messageFormat = `Expected a "%[1]s.at(-1)" instead of "%[1]s[%[1]s.length - 1]"`

// Message returns the diagnostic message for the display name of an indexed object.
func Message(name string) string {
	return fmt.Sprintf(messageFormat, name)
}

// CreateDiagnostic builds the diagnostic for a match, including the suggested fix.
func CreateDiagnostic(src match.Source, m match.Match) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:            m.Node.Pos(),
		End:            m.Node.End(),
		Category:       Category,
		Message:        Message(m.Object),
		SuggestedFixes: []analysis.SuggestedFix{CreateFix(src, m)},
	}
}
