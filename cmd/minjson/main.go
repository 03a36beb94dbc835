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

// Program minjson parses JSON files (or standard input) and displays
// their parsed structure, or the raw token stream, for inspection.
//
// Usage: minjson [--format FORMAT] [--dump-tokens] [FILE ...]
//
// If no FILEs are given, standard input is read and treated as a single
// document.
//
// FORMAT, which defaults to "tree", selects how a successfully parsed
// document is displayed. Use "minjson --help" for the list of available
// formats.
//
// THIS PROGRAM IS A DEVELOPMENT TOOL, not part of the minjson library API.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/openconfig/minjson/pkg/indent"
	"github.com/openconfig/minjson/pkg/minjson"
	"github.com/pborman/getopt"
)

// Each output format registers a formatter with register. f is called
// once per successfully parsed document.
type formatter struct {
	name string
	f    func(w io.Writer, v *minjson.Value)
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

func init() {
	register(&formatter{name: "tree", f: printTree, help: "indented key/value tree"})
	register(&formatter{name: "compact", f: printCompact, help: "single-line compact rendering"})
}

var stop = os.Exit

func exitIfError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
}

func main() {
	var format string
	var dumpTokens bool
	var maxDepth int
	var help bool

	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.BoolVarLong(&dumpTokens, "dump-tokens", 0, "print the raw token stream instead of parsing")
	getopt.IntVarLong(&maxDepth, "max-depth", 0, "maximum object/array nesting depth (0 means the library default)", "N")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
		}
		stop(0)
	}

	if format == "" {
		format = "tree"
	}
	fm, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format. Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	files := getopt.Args()
	opts := minjson.Options{MaxDepth: maxDepth}

	if len(files) == 0 {
		runOne(os.Stdin, "<STDIN>", opts, dumpTokens, fm)
		return
	}
	for _, name := range files {
		fp, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		runOne(fp, name, opts, dumpTokens, fm)
		fp.Close()
	}
}

func runOne(r io.Reader, name string, opts minjson.Options, dumpTokens bool, fm *formatter) {
	data, err := ioutil.ReadAll(r)
	exitIfError(err)

	if dumpTokens {
		dumpTokenStream(os.Stdout, data, name)
		return
	}

	doc, perr := minjson.Parse(nil, data, opts)
	if perr.Code != minjson.OK {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, perr)
		stop(1)
	}
	defer doc.Close()

	fm.f(os.Stdout, doc.Root())
}

// printTree writes v, and all of its children, to w in an indented tree
// format, nesting each level through an indent.Writer rather than
// threading a prefix string by hand.
func printTree(w io.Writer, v *minjson.Value) {
	switch v.Kind() {
	case minjson.KindObject:
		for _, k := range v.Keys() {
			child := v.Field(k)
			if child.IsObject() || child.IsArray() {
				fmt.Fprintf(w, "%s:\n", k)
				printTree(indent.NewWriter(w, "  "), child)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", k, scalarString(child))
		}
	case minjson.KindArray:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.IsObject() || elem.IsArray() {
				fmt.Fprintf(w, "[%d]:\n", i)
				printTree(indent.NewWriter(w, "  "), elem)
				continue
			}
			fmt.Fprintf(w, "[%d]: %s\n", i, scalarString(elem))
		}
	default:
		fmt.Fprintf(w, "%s\n", scalarString(v))
	}
}

func scalarString(v *minjson.Value) string {
	switch v.Kind() {
	case minjson.KindNull:
		return "null"
	case minjson.KindBool:
		return fmt.Sprintf("%v", v.Bool())
	case minjson.KindNumber:
		return fmt.Sprintf("%v", v.Number())
	case minjson.KindString:
		return v.String()
	}
	return ""
}

func printCompact(w io.Writer, v *minjson.Value) {
	writeCompact(w, v)
	fmt.Fprintln(w)
}

func writeCompact(w io.Writer, v *minjson.Value) {
	switch v.Kind() {
	case minjson.KindObject:
		fmt.Fprint(w, "{")
		for i, k := range v.Keys() {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, "%q:", k)
			writeCompact(w, v.Field(k))
		}
		fmt.Fprint(w, "}")
	case minjson.KindArray:
		fmt.Fprint(w, "[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			writeCompact(w, v.Index(i))
		}
		fmt.Fprint(w, "]")
	case minjson.KindString:
		fmt.Fprintf(w, "%q", v.String())
	default:
		fmt.Fprint(w, scalarString(v))
	}
}

// dumpTokenStream lexes data without parsing and prints each token one
// per line, indented under the source name; this supplements the
// original C's lexer_print_tokens debug dump (see SPEC_FULL.md).
func dumpTokenStream(w io.Writer, data []byte, name string) {
	var buf strings.Builder
	for _, line := range minjson.DebugTokens(data) {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintf(w, "%s\n", name)
	iw := indent.NewWriter(w, "  ")
	io.WriteString(iw, buf.String())
}
