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

package checker

import (
	"strconv"
	"strings"
)

// TypeFlags classify types the same way the TypeScript checker does.
type TypeFlags uint32

const (
	FlagAny TypeFlags = 1 << iota
	FlagUnknown
	FlagString
	FlagNumber
	FlagBoolean
	FlagEnum
	FlagBigInt
	FlagStringLiteral
	FlagNumberLiteral
	FlagBooleanLiteral
	FlagEnumLiteral
	FlagBigIntLiteral
	FlagESSymbol
	FlagUniqueESSymbol
	FlagVoid
	FlagUndefined
	FlagNull
	FlagNever
	FlagTypeParameter
	FlagObject
	FlagUnion
	FlagIntersection

	// NumberLike is the set of flags of number-like types.
	NumberLike = FlagNumber | FlagNumberLiteral | FlagEnum

	// StringLike is the set of flags of string-like types.
	StringLike = FlagString | FlagStringLiteral
)

var flagNames = [...]string{
	"Any", "Unknown", "String", "Number", "Boolean", "Enum", "BigInt",
	"StringLiteral", "NumberLiteral", "BooleanLiteral", "EnumLiteral", "BigIntLiteral",
	"ESSymbol", "UniqueESSymbol", "Void", "Undefined", "Null", "Never",
	"TypeParameter", "Object", "Union", "Intersection",
}

// Has reports whether any of the flags in mask are set.
func (f TypeFlags) Has(mask TypeFlags) bool { return f&mask != 0 }

func (f TypeFlags) String() string {
	if f == 0 {
		return "None"
	}

	var b strings.Builder

	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('|') // ignore error
		}

		b.WriteString(name) // ignore error
	}

	if rest := f &^ (1<<len(flagNames) - 1); rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|') // ignore error
		}

		b.WriteString("0x")                                 // ignore error
		b.WriteString(strconv.FormatUint(uint64(rest), 16)) // ignore error
	}

	return b.String()
}
