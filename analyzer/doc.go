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

// Package analyzer implements the prefer-at static analysis rule.
//
// # Overview
//
// prefer-at detects accesses to the last elements of arrays, typed arrays and
// strings spelled with the length of the indexed object, and suggests the
// relative indexing method at() instead.
//
// # Example
//
// Before:
//
//	const last = items[items.length - 1];
//
// After applying prefer-at's suggested fix:
//
//	const last = items.at(-1);
//
// # Eligibility
//
// A report is only made when
//
//   - both mentions of the object are textually identical,
//   - the object is an Array, a typed array, a String or a string,
//   - its type declares an at member (ES2022 or later), and
//   - the length and the subtracted offset are number-like.
//
// With [WithIgnoreFunctions], objects reached through a call like
// `getItems()[getItems().length - 1]` are skipped.
//
// # Integration
//
// The rule does not parse or type-check source itself. The host provides a [Pass]
// with syntax trees, a type oracle and a reporter; diagnostics carry a single
// suggested fix intended for automatic application.
package analyzer
