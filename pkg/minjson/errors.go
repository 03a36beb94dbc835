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

// Code identifies the kind of problem a parse encountered.
type Code int

// Error codes. OK means no error.
const (
	OK Code = iota
	ErrAllocator
	ErrToken
	ErrString
	ErrLiteral
	ErrNumber
	ErrObject
	ErrArray
	ErrValue
	ErrDepth
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case ErrAllocator:
		return "ALLOCATOR"
	case ErrToken:
		return "TOKEN"
	case ErrString:
		return "STRING"
	case ErrLiteral:
		return "LITERAL"
	case ErrNumber:
		return "NUMBER"
	case ErrObject:
		return "OBJECT"
	case ErrArray:
		return "ARRAY"
	case ErrValue:
		return "VALUE"
	case ErrDepth:
		return "NESTING"
	}
	return "UNKNOWN"
}

// maxMessage bounds Error.Message the way the source's fixed message buffer
// did; Go has no fixed-size string, so Error simply never formats past it.
const maxMessage = 128

// Error is a caller-owned diagnostic record. The zero value (via NewError)
// has Code OK. A Parse call that fails populates code, message, and
// position; it never returns a partial document alongside a non-OK Error.
type Error struct {
	Code    Code
	Message string
	Line    int
	Col     int
}

// NewError returns a zeroed Error with Code OK.
func NewError() *Error {
	return &Error{Code: OK}
}

func (e *Error) String() string {
	if e == nil || e.Code == OK {
		return "OK"
	}
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.Code, e.Message, e.Line, e.Col)
}

// Error implements the standard error interface so an *Error can be
// passed directly to errdiff.Substring and similar error-message tooling.
func (e *Error) Error() string {
	return e.String()
}

// set fills in e in place. A nil e is permitted: diagnostic detail is then
// discarded, matching the source contract that a null error pointer is
// valid input.
func (e *Error) set(code Code, line, col int, format string, args ...interface{}) {
	if e == nil {
		return
	}
	e.Code = code
	e.Line = line
	e.Col = col
	if code == ErrAllocator {
		e.Message = "memory allocator failed"
		return
	}
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxMessage {
		msg = msg[:maxMessage]
	}
	e.Message = msg
}
