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

import "flag"

// Public API constants for the prefer-at rule.
const (
	name = "prefer-at"
	doc  = `prefer-at suggests relative indexing with at() over obj[obj.length - N]`
	url  = "https://pkg.go.dev/fillmore-labs.com/preferat"
)

// Rule is the prefer-at static analysis rule.
//
// A Rule is immutable after construction, except through its Flags before the first [Rule.Run].
// Run may be called concurrently for independent passes.
type Rule struct {
	// Name of the rule, as used in nolint comments and diagnostic categories.
	Name string

	// Doc is the documentation of the rule.
	Doc string

	// URL holds a link to the documentation.
	URL string

	// Flags defines any flags accepted by the rule.
	Flags flag.FlagSet

	options *runOptions
}

// New creates a new instance of the prefer-at rule.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the rule into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Rule {
	r := makeRunOptions(opts)

	a := &Rule{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	registerFlags(&a.Flags, r)

	return a
}

// Default is a pre-configured *[Rule] for detecting last-element accesses via length.
var Default = New()

// Run applies the rule to all files of the pass.
//
// It returns an error only when the pass is incomplete.
func (a *Rule) Run(p *Pass) error {
	return a.options.run(p)
}
