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

import "testing"

func TestDebugTokens(t *testing.T) {
	lines := DebugTokens([]byte(`{"a": 1}`))
	want := 5 // '{' 'a' ':' '1' '}'
	if len(lines) != want {
		t.Fatalf("got %d lines, want %d: %v", len(lines), want, lines)
	}
}

func TestDebugTokensReportsLexError(t *testing.T) {
	lines := DebugTokens([]byte(`{"a": @}`))
	if len(lines) == 0 {
		t.Fatal("expected at least an error line")
	}
	last := lines[len(lines)-1]
	if last[:6] != "error:" {
		t.Errorf("last line = %q, want it to start with \"error:\"", last)
	}
}
