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

// Package indent inserts a prefix at the start of every line of text,
// used by cmd/minjson to pretty-print tree dumps and token listings.
package indent

import (
	"bytes"
	"io"
)

// String returns s with prefix inserted before every line. A line is any
// run of bytes up to and including a '\n', or the final run with no
// trailing newline. An empty s returns "" regardless of prefix.
func String(prefix, s string) string {
	return string(Bytes([]byte(prefix), []byte(s)))
}

// Bytes is the []byte equivalent of String.
func Bytes(prefix, b []byte) []byte {
	if len(b) == 0 {
		return b
	}
	var out bytes.Buffer
	atLineStart := true
	for _, c := range b {
		if atLineStart {
			out.Write(prefix)
		}
		out.WriteByte(c)
		atLineStart = c == '\n'
	}
	return out.Bytes()
}

// Writer wraps an io.Writer, inserting prefix before every line written
// to it. State (whether the next byte starts a new line) persists across
// Write calls, so callers may write in arbitrarily sized chunks.
type Writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// NewWriter returns a Writer that indents everything written to it with
// prefix before passing it on to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write indents data and writes it to the underlying writer in a single
// call. Its return value counts input bytes, not the (larger, due to
// inserted prefixes) number of bytes actually written downstream: if the
// underlying Write is short, Write reports only the input bytes whose
// entire indented representation (any prefix plus the byte itself) was
// confirmed written.
func (w *Writer) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	boundary := make([]int, len(data))
	atLineStart := w.atLineStart
	for i, c := range data {
		if atLineStart {
			buf.Write(w.prefix)
		}
		buf.WriteByte(c)
		boundary[i] = buf.Len()
		atLineStart = c == '\n'
	}

	n, err := w.w.Write(buf.Bytes())

	done := 0
	for i, b := range boundary {
		if b > n {
			break
		}
		done = i + 1
	}

	if done == len(data) {
		w.atLineStart = atLineStart
	} else if done > 0 {
		w.atLineStart = data[done-1] == '\n'
	}

	return done, err
}
