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

func TestNilValuePredicatesAreSafe(t *testing.T) {
	var v *Value
	if v.IsNull() {
		t.Error("nil *Value should report IsNull() false")
	}
	if v.IsBool() || v.IsNumber() || v.IsString() || v.IsArray() || v.IsObject() {
		t.Error("nil *Value should report false for every other predicate")
	}
	if v.Bool() != false || v.Number() != 0 || v.String() != "" {
		t.Error("nil *Value scalar accessors should report zero values")
	}
	if v.Len() != 0 || v.Index(0) != nil || v.Field("x") != nil || v.Keys() != nil {
		t.Error("nil *Value container accessors should report empty/zero results")
	}
	if v.Kind() != KindNull {
		t.Errorf("Kind() = %s, want null", v.Kind())
	}
}

func TestNilDocumentIsSafe(t *testing.T) {
	var d *Document
	if d.Root() != nil {
		t.Error("nil *Document.Root() should be nil")
	}
	if d.Get("x") != nil {
		t.Error("nil *Document.Get should be nil")
	}
	d.Close() // must not panic
}

func TestWrongKindAccessorsReportZeroValue(t *testing.T) {
	doc, err := Parse(nil, []byte(`{"n": 1, "s": "x"}`), Options{})
	if err.Code != OK {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	n := doc.Get("n")
	if n.String() != "" {
		t.Errorf(`number Value.String() = %q, want ""`, n.String())
	}
	if n.Len() != 0 || n.Index(0) != nil || n.Field("x") != nil {
		t.Error("number Value should report zero container results")
	}

	s := doc.Get("s")
	if s.Number() != 0 {
		t.Errorf("string Value.Number() = %v, want 0", s.Number())
	}
}

func TestArrayOutOfRangeIndex(t *testing.T) {
	doc, err := Parse(nil, []byte(`[1, 2, 3]`), Options{})
	if err.Code != OK {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()

	root := doc.Root()
	if got := root.Index(-1); got != nil {
		t.Errorf("Index(-1) = %#v, want nil", got)
	}
	if got := root.Index(3); got != nil {
		t.Errorf("Index(3) = %#v, want nil", got)
	}
	if got := root.Index(2).Number(); got != 3 {
		t.Errorf("Index(2).Number() = %v, want 3", got)
	}
}
