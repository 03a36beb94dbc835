// Copyright 2015 Google Inc.
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

package minjson

import "fmt"

// DebugTokens lexes input and returns one line per token describing its
// kind, position, and (for strings and numbers) lexeme. It stops at the
// first lexical error and appends a final line describing it. This is a
// debugging aid only, standing in for the reference implementation's
// lexer_print_tokens; core Parse callers never need it.
func DebugTokens(input []byte) []string {
	l := newLexer(input)
	defer l.tokens.Destroy()

	err := NewError()
	ok := l.lex(err)

	var lines []string
	for t := l.head; t != nil; t = t.next {
		switch t.kind {
		case tString, tNumber:
			lines = append(lines, fmt.Sprintf("%s %q (line %d, col %d)", t.kind, t.lexeme, t.line, t.col))
		default:
			lines = append(lines, fmt.Sprintf("%s (line %d, col %d)", t.kind, t.line, t.col))
		}
	}
	if !ok {
		lines = append(lines, fmt.Sprintf("error: %s", err))
	}
	return lines
}
