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
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokPunct
)

// lexeme is a scanned token with its byte offset.
type lexeme struct {
	kind tokenKind
	off  int
	text string
}

// comment is a scanned comment with its byte offset.
type comment struct {
	off  int
	text string
}

// scan splits src into tokens and comments.
func scan(src []byte) ([]lexeme, []comment, error) {
	var (
		tokens   []lexeme
		comments []comment
	)

	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := i + 2
			for end < len(src) && src[end] != '\n' {
				end++
			}

			comments = append(comments, comment{off: i, text: strings.TrimRight(string(src[i:end]), "\r")})
			i = end

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(string(src[i+2:]), "*/")
			if end < 0 {
				return nil, nil, fmt.Errorf("offset %d: unterminated comment", i)
			}

			end += i + 4
			comments = append(comments, comment{off: i, text: string(src[i:end])})
			i = end

		case isIdentStart(c):
			end := i + 1
			for end < len(src) && isIdentPart(src[end]) {
				end++
			}

			tokens = append(tokens, lexeme{kind: tokIdent, off: i, text: string(src[i:end])})
			i = end

		case isDigit(c) || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			end := i + 1
			for end < len(src) && (isIdentPart(src[end]) || src[end] == '.') {
				end++
			}

			tokens = append(tokens, lexeme{kind: tokNumber, off: i, text: string(src[i:end])})
			i = end

		case c == '"' || c == '\'':
			end := i + 1
			for end < len(src) && src[end] != c && src[end] != '\n' {
				if src[end] == '\\' && end+1 < len(src) {
					end++ // skip escaped character
				}

				end++
			}

			if end >= len(src) || src[end] != c {
				return nil, nil, fmt.Errorf("offset %d: unterminated string", i)
			}

			tokens = append(tokens, lexeme{kind: tokString, off: i, text: string(src[i : end+1])})
			i = end + 1

		case c == '?' && i+1 < len(src) && src[i+1] == '.' && (i+2 >= len(src) || !isDigit(src[i+2])):
			tokens = append(tokens, lexeme{kind: tokPunct, off: i, text: "?."})
			i += 2

		case strings.IndexByte(".[](){},;:-+*/%!<>=|&?", c) >= 0:
			tokens = append(tokens, lexeme{kind: tokPunct, off: i, text: string(c)})
			i++

		default:
			return nil, nil, fmt.Errorf("offset %d: unexpected character %q", i, c)
		}
	}

	tokens = append(tokens, lexeme{kind: tokEOF, off: len(src)})

	return tokens, comments, nil
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
