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

package testsource

import (
	"bytes"
	"cmp"
	"fmt"
	"go/token"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/txtar"
)

// RunFunc runs a rule on a parsed program, passing diagnostics to report.
type RunFunc func(p Program, report func(analysis.Diagnostic)) error

// RunWithSuggestedFixes runs the rule on every ".ts" file of the archive.
//
// Diagnostics are checked against `// want "regexp"` comments on the same line.
// When the archive contains a ".golden" file for the source, the suggested fixes are
// applied, the result is compared with it and analyzed again, expecting no further diagnostics.
func RunWithSuggestedFixes(t *testing.T, archive *txtar.Archive, run RunFunc) {
	t.Helper()

	golden := make(map[string][]byte)
	for _, f := range archive.Files {
		if name, ok := strings.CutSuffix(f.Name, ".golden"); ok {
			golden[name] = f.Data
		}
	}

	for _, f := range archive.Files {
		if !strings.HasSuffix(f.Name, ".ts") {
			continue
		}

		t.Run(f.Name, func(t *testing.T) {
			p := parseArchiveFile(t, f.Name, f.Data)

			diagnostics := runProgram(t, p, run)
			checkWants(t, p, diagnostics)

			want, ok := golden[f.Name]
			if !ok {
				return
			}

			fixed, err := ApplyFixes(p.Fset, f.Data, diagnostics)
			if err != nil {
				t.Fatalf("Can't apply fixes: %v", err)
			}

			if diff := gocmp.Diff(string(want), string(fixed)); diff != "" {
				t.Errorf("Fixed source mismatch (-want +got):\n%s", diff)
			}

			q := parseArchiveFile(t, f.Name, fixed)
			for _, d := range runProgram(t, q, run) {
				t.Errorf("Unexpected diagnostic after fix at %s: %s", q.Fset.Position(d.Pos), d.Message)
			}
		})
	}
}

func parseArchiveFile(t *testing.T, name string, src []byte) Program {
	t.Helper()

	fset := token.NewFileSet()

	f, info, err := ParseFile(fset, name, src)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", name, err)
	}

	return Program{Fset: fset, File: f, Info: info}
}

func runProgram(t *testing.T, p Program, run RunFunc) []analysis.Diagnostic {
	t.Helper()

	var diagnostics []analysis.Diagnostic

	if err := run(p, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	return diagnostics
}

var wantPattern = regexp.MustCompile(`^//\s*want\s+(.*)$`)

// checkWants matches diagnostics against expectations, line by line.
func checkWants(t *testing.T, p Program, diagnostics []analysis.Diagnostic) {
	t.Helper()

	wants := make(map[int][]*regexp.Regexp)

	for _, c := range p.File.Comments {
		m := wantPattern.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}

		line := p.Fset.Position(c.Pos()).Line

		expectations, err := parseExpectations(m[1])
		if err != nil {
			t.Errorf("%s:%d: invalid expectation %q: %v", p.File.Name, line, m[1], err)

			continue
		}

		wants[line] = append(wants[line], expectations...)
	}

	for _, d := range diagnostics {
		line := p.Fset.Position(d.Pos).Line

		i := slices.IndexFunc(wants[line], func(re *regexp.Regexp) bool { return re.MatchString(d.Message) })
		if i < 0 {
			t.Errorf("%s:%d: unexpected diagnostic: %s", p.File.Name, line, d.Message)

			continue
		}

		wants[line] = slices.Delete(wants[line], i, i+1)
	}

	for line, res := range wants {
		for _, re := range res {
			t.Errorf("%s:%d: no diagnostic was reported matching %q", p.File.Name, line, re)
		}
	}
}

// parseExpectations parses a space-separated list of quoted regular expressions.
func parseExpectations(s string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, err
		}

		s = s[len(quoted):]

		pattern, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, err
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}

		res = append(res, re)
	}

	return res, nil
}

// ApplyFixes applies the first suggested fix of every diagnostic to src.
//
// Fixes are taken in diagnostic order; a fix overlapping an already accepted one is dropped as a whole.
func ApplyFixes(fset *token.FileSet, src []byte, diagnostics []analysis.Diagnostic) ([]byte, error) {
	type edit struct {
		start, end int
		text       []byte
	}

	var accepted []edit

	overlaps := func(e edit) bool {
		return slices.ContainsFunc(accepted, func(a edit) bool { return e.start < a.end && a.start < e.end })
	}

	for _, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		var edits []edit

		for _, e := range d.SuggestedFixes[0].TextEdits {
			handle := fset.File(e.Pos)
			if handle == nil {
				return nil, fmt.Errorf("edit at invalid position %d", e.Pos)
			}

			end := e.End
			if !end.IsValid() {
				end = e.Pos
			}

			edits = append(edits, edit{start: handle.Offset(e.Pos), end: handle.Offset(end), text: e.NewText})
		}

		if slices.ContainsFunc(edits, overlaps) {
			continue
		}

		accepted = append(accepted, edits...)
	}

	slices.SortStableFunc(accepted, func(a, b edit) int { return cmp.Compare(a.start, b.start) })

	var out bytes.Buffer

	last := 0

	for _, e := range accepted {
		if e.start < last {
			return nil, fmt.Errorf("overlapping edits in one fix at offset %d", e.start)
		}

		out.Write(src[last:e.start]) // ignore error
		out.Write(e.text)            // ignore error

		last = e.end
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
