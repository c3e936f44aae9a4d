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

import "strconv"

// boolValue is a boolean [flag.Getter] backed by a single flag of a bit mask.
type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

// boolFlag is implemented by pointers to a bit mask.
type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, _]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f boolValue[_, _]) Get() any {
	return f.enabled()
}

// IsBoolFlag marks this as a boolean [flag.Value], so "-flag" is accepted without a value.
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// enabled reports the current value. The zero boolValue, which the flag package creates
// to determine default values, is false.
func (f boolValue[_, B]) enabled() bool {
	var null B

	return f.flags != null && f.flags.Enabled(f.value)
}

// parseBool returns the boolean value represented by the string.
// In addition to [strconv.ParseBool] it accepts "on" and "off".
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(str)
}
