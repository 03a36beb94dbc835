// Copyright 2020 Google Inc.
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

// Package util contains minjson utility functions that could be useful for
// external users.
package util

import (
	"fmt"
	"os"

	"github.com/openconfig/minjson/pkg/minjson"
)

// ParseFile reads the file at path and parses its contents as JSON,
// returning the resulting Document. It is the file-reading collaborator
// that minjson's core package deliberately leaves out, following
// pkg/util's original role of wrapping the parser with filesystem access.
func ParseFile(path string, opts minjson.Options) (*minjson.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, perr := minjson.Parse(nil, data, opts)
	if perr.Code != minjson.OK {
		return nil, fmt.Errorf("parsing %s: %w", path, perr)
	}
	return doc, nil
}
