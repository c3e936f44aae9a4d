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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/preferat/syntax"
)

const linterName = "prefer-at"

// CurrentFile holds information about the file being analyzed.
type CurrentFile struct {
	file      *syntax.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from the given [syntax.File].
func NewCurrentFile(fset *token.FileSet, file *syntax.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil || handle.Size() != len(file.Src) {
		return CurrentFile{}
	}

	generated := isGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid reports whether file information is available.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file is generated.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Text returns the verbatim source text spanned by n.
func (c CurrentFile) Text(n syntax.Node) string {
	start, end := c.handle.Offset(n.Pos()), c.handle.Offset(n.End())

	return string(c.file.Src[start:end])
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintFile reports whether the file is excluded with a leading nolint comment.
func (c CurrentFile) NoLintFile() bool {
	for _, comment := range c.leadingComments() {
		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

// NoLintComment reports whether a comment following n on the line where n ends carries a nolint directive.
func (c CurrentFile) NoLintComment(n syntax.Node) bool {
	if c.file == nil {
		return false
	}

	end := n.End()
	line := c.line(end)

	// comments inside n are skipped
	comments := c.file.Comments

	i, _ := slices.BinarySearchFunc(comments, end,
		func(c *syntax.Comment, p token.Pos) int { return int(c.Pos() - p) })

	for _, comment := range comments[i:] {
		if c.line(comment.Pos()) != line {
			break // not on this line
		}

		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

// leadingComments returns the comments before the first statement.
func (c CurrentFile) leadingComments() []*syntax.Comment {
	return leadingComments(c.file)
}

func leadingComments(file *syntax.File) []*syntax.Comment {
	end := file.FileEnd
	if len(file.Stmts) > 0 {
		end = file.Stmts[0].Pos()
	}

	i, _ := slices.BinarySearchFunc(file.Comments, end,
		func(c *syntax.Comment, p token.Pos) int { return int(c.Pos() - p) })

	return file.Comments[:i]
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// isGenerated reports whether the file has a comment line matching the
// generated-code convention before its first statement.
func isGenerated(file *syntax.File) bool {
	for _, comment := range leadingComments(file) {
		if generatedPattern.MatchString(comment.Text) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks whether a comment contains a nolint directive for this linter.
func CommentHasNoLint(comment *syntax.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
