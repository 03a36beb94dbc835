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

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func lexAll(t *testing.T, input string) ([]kind, error) {
	t.Helper()
	l := newLexer([]byte(input))
	defer l.tokens.Destroy()
	err := NewError()
	if !l.lex(err) {
		return nil, err
	}
	var kinds []kind
	for tok := l.head; tok != nil; tok = tok.next {
		kinds = append(kinds, tok.kind)
	}
	return kinds, nil
}

func TestLexPunctuationAndLiterals(t *testing.T) {
	kinds, err := lexAll(t, `{ "a" : [ true , false , null ] }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []kind{tOpenBrace, tString, tColon, tOpenBracket, tTrue, tComma, tFalse, tComma, tNull, tCloseBracket, tCloseBrace}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{input: "0"},
		{input: "-0"},
		{input: "123"},
		{input: "-123"},
		{input: "0.5"},
		{input: "1.25e10"},
		{input: "1E+10"},
		{input: "1e-10"},
		{input: "01", wantErr: "invalid number"},
		{input: "1.", wantErr: "invalid number"},
		{input: ".5", wantErr: "unexpected byte"},
		{input: "1e", wantErr: "invalid number"},
		{input: "-", wantErr: "invalid number"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.input)
		if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
			t.Errorf("input %q: %s", tt.input, diff)
		}
	}
}

func TestLexStrings(t *testing.T) {
	kinds, err := lexAll(t, `"hello world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kinds) != 1 || kinds[0] != tString {
		t.Fatalf("got %v, want single string token", kinds)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lexAll(t, `"hello`)
	if diff := errdiff.Substring(err, "unterminated string"); diff != "" {
		t.Error(diff)
	}
}

func TestLexStringColumnTracking(t *testing.T) {
	l := newLexer([]byte(`{"a":"b"}`))
	defer l.tokens.Destroy()
	err := NewError()
	if !l.lex(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	var cols []int
	for tok := l.head; tok != nil; tok = tok.next {
		if tok.kind == tString {
			cols = append(cols, tok.col)
		}
	}
	// "a" starts at column 3 (past '{' and the opening quote), "b" at
	// column 7, not the columns of their opening quotes.
	want := []int{3, 7}
	if len(cols) != len(want) {
		t.Fatalf("got %d string tokens, want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("string token %d: col %d, want %d", i, cols[i], want[i])
		}
	}
}

func TestLexUnterminatedStringColumn(t *testing.T) {
	l := newLexer([]byte(`"abc`))
	defer l.tokens.Destroy()
	err := NewError()
	if l.lex(err) {
		t.Fatalf("expected error")
	}
	if err.Col != 2 {
		t.Errorf("unterminated string error Col = %d, want 2 (first lexeme byte)", err.Col)
	}
}

func TestLexLineColumnTracking(t *testing.T) {
	l := newLexer([]byte("{\n  \"a\"\n}"))
	defer l.tokens.Destroy()
	err := NewError()
	if !l.lex(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	var lines []int
	for tok := l.head; tok != nil; tok = tok.next {
		lines = append(lines, tok.line)
	}
	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("token %d: line %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestLexInvalidLiteral(t *testing.T) {
	_, err := lexAll(t, "truthy")
	if diff := errdiff.Substring(err, "invalid literal"); diff != "" {
		t.Error(diff)
	}
}

func TestLexUnexpectedByte(t *testing.T) {
	_, err := lexAll(t, "@")
	if diff := errdiff.Substring(err, "unexpected byte"); diff != "" {
		t.Error(diff)
	}
}
