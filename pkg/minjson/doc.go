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

// Package minjson implements a small, arena-backed JSON decoder.
//
// A document is read with Parse and walked through Value's accessors:
//
//	doc, err := minjson.Parse(nil, data, minjson.Options{})
//	if err.Code != minjson.OK {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//	name := doc.Get("name").String()
//
// Parse's first argument is an optional caller-owned DocumentArena; pass
// nil to let Parse allocate and own the document's storage, as above.
//
// String values are returned with escape sequences undecoded, and object
// field lookup is first-match rather than last-write-wins; see
// Value.Field and the package's design notes for the full list of
// deliberately unresolved edge cases.
package minjson
