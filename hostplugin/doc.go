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

/*
Package hostplugin adapts the rule options of a host analysis framework to the [preferat] rule.

Hosts pass rule options as decoded JSON, for example from a configuration entry like

	{
	  "rules": {
	    "prefer-at": ["error", { "ignoreFunctions": true }]
	  }
	}

The options object is handed to [New], which returns a configured rule:

	rule, err := hostplugin.New(map[string]any{"ignoreFunctions": true})
	if err != nil {
		return err
	}

	err = rule.Run(pass)

Unknown options are rejected.

[preferat]: https://pkg.go.dev/fillmore-labs.com/preferat/analyzer
*/
package hostplugin
