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
	"context"
	"runtime/trace"

	"fillmore-labs.com/preferat/internal/astutil"
	"fillmore-labs.com/preferat/internal/config"
	"fillmore-labs.com/preferat/internal/match"
	"fillmore-labs.com/preferat/internal/report"
	"fillmore-labs.com/preferat/syntax"
)

// run executes the prefer-at pipeline.
func (r *runOptions) run(p *Pass) error {
	if err := p.validate(); err != nil {
		return err
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "PreferAt")
	defer task.End()

	m := match.New(p.Types, r.behavior.Enabled(config.IgnoreFunctions))

	// Loop over all files
	for _, file := range p.Files {
		if file == nil {
			continue
		}

		r.checkFile(ctx, p, m, file)
	}

	return nil
}

// checkFile reports all last-element accesses via length in file.
func (r *runOptions) checkFile(ctx context.Context, p *Pass, m match.Matcher, file *syntax.File) {
	defer trace.StartRegion(ctx, "File").End()

	trace.Log(ctx, "file", file.Name)

	currentFile := astutil.NewCurrentFile(p.Fset, file)
	if !currentFile.Valid() {
		astutil.InternalError(p.Report, file, "File %s without valid info", file.Name)

		return
	}

	// Skip generated files
	if currentFile.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
		return
	}

	// Skip files with nolint comment
	if currentFile.NoLintFile() {
		return
	}

	var matches []match.Match

	for n := range syntax.Preorder(file, syntax.KindMember) {
		member := n.(*syntax.MemberExpr)

		// Only element accesses with a subtraction inside the brackets are candidates
		if _, ok := match.Subtraction(member); !ok {
			continue
		}

		found, ok := m.Match(currentFile, member)
		if !ok {
			continue
		}

		if currentFile.NoLintComment(member) {
			continue
		}

		matches = append(matches, found)
	}

	// Nested matches are part of the replacement of the enclosing one
	src := report.NewRewriter(currentFile, matches)

	for _, found := range matches {
		p.Report(report.CreateDiagnostic(src, found))
	}
}
