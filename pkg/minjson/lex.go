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

// This file implements the lexical tokenization of JSON. The lexer walks
// the input once, left to right, and appends tokens to a singly linked
// list carved out of a temporary arena.Pool, so the whole token stream can
// be discarded in one call once the parser is done with it.

import (
	"github.com/openconfig/minjson/pkg/arena"
)

// kind is a token's lexical category. Single-character punctuation tokens
// are distinct kinds rather than their byte value, unlike the teacher's
// YANG lexer, since JSON's punctuation set is closed and small.
type kind int8

const (
	tString kind = iota
	tNumber
	tNull
	tTrue
	tFalse
	tOpenBrace
	tCloseBrace
	tOpenBracket
	tCloseBracket
	tColon
	tComma
)

func (k kind) String() string {
	switch k {
	case tString:
		return "string"
	case tNumber:
		return "number"
	case tNull:
		return "null"
	case tTrue:
		return "true"
	case tFalse:
		return "false"
	case tOpenBrace:
		return "'{'"
	case tCloseBrace:
		return "'}'"
	case tOpenBracket:
		return "'['"
	case tCloseBracket:
		return "']'"
	case tColon:
		return "':'"
	case tComma:
		return "','"
	}
	return "<unknown>"
}

// token is a single lexical unit. lexeme is a non-owning view into the
// lexer's input buffer: the caller of Parse must keep that buffer alive
// for the duration of the parse. Tokens are linked in emission order and
// live entirely in the lexer's temporary pool; nothing about a token
// survives past Parse returning.
type token struct {
	kind      kind
	lexeme    []byte
	line, col int
	next      *token
}

// lexer turns raw input into the token list consumed by the parser. Unlike
// pkg/yang's channel-driven, coroutine-style lexer, minjson's lexer runs to
// completion before the parser sees anything: the spec's pipeline is
// strictly lex-then-parse, not interleaved.
type lexer struct {
	tokens     *arena.Pool[token]
	head, tail *token
	input      []byte
	pos        int
	line, col  int
}

func newLexer(input []byte) *lexer {
	return &lexer{tokens: arena.NewPool[token](0), input: input, line: 1, col: 1}
}

func (l *lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) byteAt(i int) byte {
	if i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

func isLiteralTerminator(c byte, eof bool) bool {
	if eof {
		return true
	}
	switch c {
	case 0, ' ', '\t', '\n', '\r', ',', '}', ']':
		return true
	}
	return false
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isOneToNine(c byte) bool { return c >= '1' && c <= '9' }

// advance moves the cursor forward n bytes, updating column. It must not be
// used to cross a '\n'; newline handles that itself.
func (l *lexer) advance(n int) {
	l.pos += n
	l.col += n
}

func (l *lexer) newline() {
	l.pos++
	l.line++
	l.col = 1
}

func (l *lexer) emit(k kind, start, length int) {
	t := l.tokens.Alloc()
	t.kind = k
	t.lexeme = l.input[start : start+length]
	t.line = l.line
	t.col = l.col
	t.next = nil

	if l.tail != nil {
		l.tail.next = t
	} else {
		l.head = t
	}
	l.tail = t
}

// lex tokenizes the entire input, returning ok=false and populating err on
// the first lexical error.
func (l *lexer) lex(err *Error) bool {
	for !l.atEOF() {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.advance(1)
		case c == '\n':
			l.newline()
		case c == '{':
			l.emit(tOpenBrace, l.pos, 1)
			l.advance(1)
		case c == '}':
			l.emit(tCloseBrace, l.pos, 1)
			l.advance(1)
		case c == '[':
			l.emit(tOpenBracket, l.pos, 1)
			l.advance(1)
		case c == ']':
			l.emit(tCloseBracket, l.pos, 1)
			l.advance(1)
		case c == ':':
			l.emit(tColon, l.pos, 1)
			l.advance(1)
		case c == ',':
			l.emit(tComma, l.pos, 1)
			l.advance(1)
		case c == '"':
			if !l.lexString(err) {
				return false
			}
		case c == 't':
			if !l.matchLiteral(tTrue, "true", err) {
				return false
			}
		case c == 'f':
			if !l.matchLiteral(tFalse, "false", err) {
				return false
			}
		case c == 'n':
			if !l.matchLiteral(tNull, "null", err) {
				return false
			}
		case c == '-' || isDigit(c):
			if !l.lexNumber(err) {
				return false
			}
		default:
			err.set(ErrToken, l.line, l.col, "unexpected byte %q at line %d, column %d", c, l.line, l.col)
			return false
		}
	}
	return true
}

// lexString handles a double-quoted string. Contents span from the byte
// after the opening quote to the next unescaped quote; escape sequences
// are recorded verbatim, not decoded (see package doc). The cursor moves
// past the opening quote before the position is recorded, since the lexeme
// view (and thus a string token's reported position) excludes the quotes
// themselves.
func (l *lexer) lexString(err *Error) bool {
	l.advance(1) // past the opening quote
	line, col := l.line, l.col
	start := l.pos
	i := start
	for {
		c := l.byteAt(i)
		if c == '"' {
			break
		}
		if c == '\n' || c == 0 {
			err.set(ErrString, line, col, "unterminated string starting at line %d, column %d", line, col)
			return false
		}
		if c == '\\' && l.byteAt(i+1) != '\n' && l.byteAt(i+1) != 0 {
			i++ // the escaped byte belongs to the lexeme, even if it is '"'
		}
		i++
	}
	l.emit(tString, start, i-start)
	l.advance(i - l.pos + 1) // past the closing quote
	return true
}

// matchLiteral requires an exact byte match for literal, followed by a
// valid literal terminator; this rejects inputs like "truefoo" or "nullx".
func (l *lexer) matchLiteral(k kind, literal string, err *Error) bool {
	n := len(literal)
	for i := 0; i < n; i++ {
		if l.byteAt(l.pos+i) != literal[i] {
			err.set(ErrLiteral, l.line, l.col, "invalid literal at line %d, column %d", l.line, l.col)
			return false
		}
	}
	if !isLiteralTerminator(l.byteAt(l.pos+n), l.pos+n >= len(l.input)) {
		err.set(ErrLiteral, l.line, l.col, "invalid literal at line %d, column %d", l.line, l.col)
		return false
	}
	l.emit(k, l.pos, n)
	l.advance(n)
	return true
}

// number DFA states, matching spec.md's Q0..Q8.
type numState int8

const (
	q0Start numState = iota
	q1Minus
	q2LeadingZero // accept
	q3Digits      // accept
	q4Frac
	q5FracDigits // accept
	q6Exp
	q7ExpSign
	q8ExpDigits // accept
	qFail
)

func numStep(s numState, c byte) numState {
	switch s {
	case q0Start:
		switch {
		case c == '-':
			return q1Minus
		case c == '0':
			return q2LeadingZero
		case isOneToNine(c):
			return q3Digits
		}
	case q1Minus:
		switch {
		case c == '0':
			return q2LeadingZero
		case isOneToNine(c):
			return q3Digits
		}
	case q2LeadingZero:
		switch {
		case c == '.':
			return q4Frac
		case c == 'e' || c == 'E':
			return q6Exp
		}
	case q3Digits:
		switch {
		case isDigit(c):
			return q3Digits
		case c == '.':
			return q4Frac
		case c == 'e' || c == 'E':
			return q6Exp
		}
	case q4Frac:
		if isDigit(c) {
			return q5FracDigits
		}
	case q5FracDigits:
		switch {
		case isDigit(c):
			return q5FracDigits
		case c == 'e' || c == 'E':
			return q6Exp
		}
	case q6Exp:
		switch {
		case c == '+' || c == '-':
			return q7ExpSign
		case isDigit(c):
			return q8ExpDigits
		}
	case q7ExpSign:
		if isDigit(c) {
			return q8ExpDigits
		}
	case q8ExpDigits:
		if isDigit(c) {
			return q8ExpDigits
		}
	}
	return qFail
}

func numAccepting(s numState) bool {
	switch s {
	case q2LeadingZero, q3Digits, q5FracDigits, q8ExpDigits:
		return true
	}
	return false
}

// lexNumber runs the number DFA until a literal terminator, accepting only
// if the terminal state is one of the DFA's accept states.
func (l *lexer) lexNumber(err *Error) bool {
	start := l.pos
	state := q0Start
	i := start
	for !isLiteralTerminator(l.byteAt(i), i >= len(l.input)) {
		state = numStep(state, l.input[i])
		if state == qFail {
			err.set(ErrNumber, l.line, l.col, "invalid number at line %d, column %d", l.line, l.col)
			return false
		}
		i++
	}
	if !numAccepting(state) {
		err.set(ErrNumber, l.line, l.col, "invalid number at line %d, column %d", l.line, l.col)
		return false
	}
	l.emit(tNumber, start, i-start)
	l.advance(i - start)
	return true
}
