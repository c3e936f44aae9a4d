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

package hostplugin

import preferat "fillmore-labs.com/preferat/analyzer"

// Settings represents the options of the prefer-at rule as provided by the host.
type Settings struct {
	// IgnoreFunctions skips objects whose access chain starts at a function call.
	IgnoreFunctions *bool `json:"ignoreFunctions,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [preferat.Option] for the prefer-at rule.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []preferat.Option {
	var opts []preferat.Option

	opts = appendOption(opts, s.IgnoreFunctions, preferat.WithIgnoreFunctions)
	opts = appendOption(opts, s.Generated, preferat.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [preferat.Option] list.
func appendOption[T any](opts []preferat.Option, value *T, constructor func(T) preferat.Option) []preferat.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
