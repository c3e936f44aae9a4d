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

package analyzer

import (
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/preferat/checker"
	"fillmore-labs.com/preferat/syntax"
)

// Pass provides the parsed, type-checked files a [Rule] runs on.
//
// The host framework owns the syntax trees for the duration of the pass; the rule only reads them.
type Pass struct {
	// Fset provides position information for Files.
	Fset *token.FileSet

	// Files are the syntax trees to analyze, including their source text.
	Files []*syntax.File

	// Types resolves static types of expressions in Files.
	Types checker.Oracle

	// Report receives each diagnostic.
	Report func(analysis.Diagnostic)
}

// ErrPassIncomplete is returned when a required field of a [Pass] is missing.
var ErrPassIncomplete = errors.New("incomplete pass")

func (p *Pass) validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("%s: %w", name, ErrPassIncomplete)

	case p.Fset == nil:
		return fmt.Errorf("%s: %w: no file set", name, ErrPassIncomplete)

	case p.Types == nil:
		return fmt.Errorf("%s: %w: no type oracle", name, ErrPassIncomplete)

	case p.Report == nil:
		return fmt.Errorf("%s: %w: no reporter", name, ErrPassIncomplete)
	}

	return nil
}
