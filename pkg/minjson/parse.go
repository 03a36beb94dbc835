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

// This file implements the recursive-descent parser that turns a token
// stream into a Document. It walks the lexer's linked token list with a
// single cursor, dispatching on each token's kind in parseValue, and
// reports through one Error record instead of accumulating to an error
// slice, since minjson.Parse always stops at the first problem.

import (
	"strconv"

	"github.com/openconfig/minjson/pkg/arena"
)

// Options configures a Parse call. The zero value uses the package
// defaults.
type Options struct {
	// MaxDepth bounds object/array nesting. 0 means DefaultMaxDepth.
	MaxDepth int
	// RegionSize sets the document arena's initial region size in bytes.
	// 0 means arena.DefaultRegionSize.
	RegionSize int
}

// DefaultMaxDepth is the nesting bound used when Options.MaxDepth is 0.
const DefaultMaxDepth = 1024

// objectEntry is one key/value pair in an object, linked in source order.
type objectEntry struct {
	key   string
	value *Value
	next  *objectEntry
}

// arrayEntry is one element in an array, linked in source order.
type arrayEntry struct {
	value *Value
	next  *arrayEntry
}

// Kind discriminates the type of a parsed Value.
type Kind int8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is one node of a parsed document tree. Values are immutable once
// returned from Parse and live entirely inside the Document's arenas; they
// must not be used after those arenas are destroyed (by the owning
// Document's Close when Parse created them, or by DocumentArena.Destroy
// when the caller supplied them).
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	objHead *objectEntry
	arrHead *arrayEntry
	arrLen  int
}

// DocumentArena bundles the allocators backing a parsed Document's tree:
// copied key/string bytes plus the three node-type pools. A caller that
// wants a document's storage to outlive the Parse call that builds it, or
// that wants to amortize allocation across several parses, creates one
// with NewDocumentArena and passes it to Parse; Parse never destroys an
// arena it did not create itself.
type DocumentArena struct {
	bytes *arena.Arena // copied key/string payloads
	nodes *arena.Pool[Value]
	objs  *arena.Pool[objectEntry]
	arrs  *arena.Pool[arrayEntry]
}

// NewDocumentArena creates a DocumentArena whose byte arena starts with an
// initial region of regionSize bytes (0 means arena.DefaultRegionSize).
func NewDocumentArena(regionSize int) *DocumentArena {
	return &DocumentArena{
		bytes: arena.New(regionSize),
		nodes: arena.NewPool[Value](0),
		objs:  arena.NewPool[objectEntry](0),
		arrs:  arena.NewPool[arrayEntry](0),
	}
}

// Destroy releases every allocator in a. A document built from a that is
// still in use must not be touched afterward. A nil DocumentArena and
// repeated Destroy calls are both safe no-ops.
func (a *DocumentArena) Destroy() {
	if a == nil {
		return
	}
	a.bytes.Destroy()
	a.nodes.Destroy()
	a.objs.Destroy()
	a.arrs.Destroy()
}

// Document is the result of a successful Parse: a root Value plus the
// arena that backs every node and string reachable from it. Close
// releases that arena, unless it was supplied by the caller, in which
// case the caller owns its lifetime and Close leaves it untouched.
type Document struct {
	arena *DocumentArena
	owned bool // Parse created arena itself and must Destroy it on Close
	root  *Value
}

// Root returns the document's top-level Value.
func (d *Document) Root() *Value {
	if d == nil {
		return nil
	}
	return d.root
}

// Close releases d's arena if Parse created it; if the caller passed its
// own DocumentArena to Parse, that arena is never destroyed by Close, per
// the arena's own lifecycle (see DocumentArena.Destroy). A nil Document
// and repeated Close calls are both safe no-ops.
func (d *Document) Close() {
	if d == nil {
		return
	}
	if d.owned {
		d.arena.Destroy()
	}
}

// parser holds the state threaded through the recursive-descent
// productions: the current token cursor and the document's arenas.
// Nesting depth is threaded as an explicit parameter through parseValue
// and its callees instead of living here, since it shrinks with each
// recursive call rather than being shared mutable state.
type parser struct {
	tok *token
	doc *Document
}

// Parse lexes and parses input, returning a Document on success. docArena,
// if non-nil, is used as the returned document's storage instead of one
// Parse creates itself; Parse never destroys a caller-supplied docArena,
// on success or failure, so the caller may reuse or outlive the Document
// built from it (pass nil to let Parse own the document's storage, the
// common case). The returned *Error is never nil: on success its Code is
// OK, and on failure Parse returns a nil Document and an Error describing
// the first problem encountered.
func Parse(docArena *DocumentArena, input []byte, opts Options) (*Document, *Error) {
	err := NewError()

	lx := newLexer(input)
	if !lx.lex(err) {
		lx.tokens.Destroy()
		return nil, err
	}

	if lx.head == nil {
		lx.tokens.Destroy()
		err.set(ErrValue, 1, 1, "empty input")
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	owned := docArena == nil
	if owned {
		docArena = NewDocumentArena(opts.RegionSize)
	}
	doc := &Document{arena: docArena, owned: owned}

	p := &parser{tok: lx.head, doc: doc}
	root, ok := p.parseValue(maxDepth, err)
	lx.tokens.Destroy() // tokens are never needed past the parse

	if !ok {
		doc.Close()
		return nil, err
	}
	if p.tok != nil {
		err.set(ErrValue, p.tok.line, p.tok.col, "unexpected trailing input at line %d, column %d", p.tok.line, p.tok.col)
		doc.Close()
		return nil, err
	}

	doc.root = root
	return doc, err
}

func (p *parser) advance() *token {
	t := p.tok
	if t != nil {
		p.tok = t.next
	}
	return t
}

func (p *parser) peek() *token {
	return p.tok
}

// parseValue dispatches on the next token's kind. depth is the number of
// further nested values still permitted; it is decremented on entry to
// object/array productions only, matching the spec's nesting bound being
// about container depth, not scalar values.
func (p *parser) parseValue(depth int, err *Error) (*Value, bool) {
	t := p.peek()
	if t == nil {
		err.set(ErrValue, 0, 0, "unexpected end of input")
		return nil, false
	}

	switch t.kind {
	case tString:
		p.advance()
		v := p.doc.arena.nodes.Alloc()
		v.kind = KindString
		v.strVal = string(p.doc.arena.bytes.CopyBytes(t.lexeme))
		return v, true
	case tNumber:
		p.advance()
		f, parseErr := strconv.ParseFloat(string(t.lexeme), 64)
		if parseErr != nil {
			err.set(ErrNumber, t.line, t.col, "invalid number literal at line %d, column %d", t.line, t.col)
			return nil, false
		}
		v := p.doc.arena.nodes.Alloc()
		v.kind = KindNumber
		v.numVal = f
		return v, true
	case tTrue:
		p.advance()
		v := p.doc.arena.nodes.Alloc()
		v.kind = KindBool
		v.boolVal = true
		return v, true
	case tFalse:
		p.advance()
		v := p.doc.arena.nodes.Alloc()
		v.kind = KindBool
		v.boolVal = false
		return v, true
	case tNull:
		p.advance()
		v := p.doc.arena.nodes.Alloc()
		v.kind = KindNull
		return v, true
	case tOpenBrace:
		return p.parseObject(depth, err)
	case tOpenBracket:
		return p.parseArray(depth, err)
	default:
		err.set(ErrValue, t.line, t.col, "unexpected token %s at line %d, column %d", t.kind, t.line, t.col)
		return nil, false
	}
}

// parseObject consumes '{' ( string ':' value ( ',' string ':' value )* )? '}'.
func (p *parser) parseObject(depth int, err *Error) (*Value, bool) {
	open := p.advance() // '{'
	if depth <= 0 {
		err.set(ErrDepth, open.line, open.col, "nesting depth exceeded at line %d, column %d", open.line, open.col)
		return nil, false
	}

	v := p.doc.arena.nodes.Alloc()
	v.kind = KindObject

	if t := p.peek(); t != nil && t.kind == tCloseBrace {
		p.advance()
		return v, true
	}

	var head, tail *objectEntry
	for {
		keyTok := p.peek()
		if keyTok == nil || keyTok.kind != tString {
			line, col := 0, 0
			if keyTok != nil {
				line, col = keyTok.line, keyTok.col
			}
			err.set(ErrObject, line, col, "expected string key at line %d, column %d", line, col)
			return nil, false
		}
		p.advance()
		key := string(p.doc.arena.bytes.CopyBytes(keyTok.lexeme))

		colon := p.peek()
		if colon == nil || colon.kind != tColon {
			line, col := 0, 0
			if colon != nil {
				line, col = colon.line, colon.col
			}
			err.set(ErrObject, line, col, "expected ':' at line %d, column %d", line, col)
			return nil, false
		}
		p.advance()

		val, ok := p.parseValue(depth-1, err)
		if !ok {
			return nil, false
		}

		entry := p.doc.arena.objs.Alloc()
		entry.key = key
		entry.value = val
		if tail != nil {
			tail.next = entry
		} else {
			head = entry
		}
		tail = entry

		sep := p.peek()
		if sep == nil {
			err.set(ErrObject, 0, 0, "unexpected end of input inside object")
			return nil, false
		}
		if sep.kind == tComma {
			p.advance()
			continue
		}
		if sep.kind == tCloseBrace {
			p.advance()
			break
		}
		err.set(ErrObject, sep.line, sep.col, "expected ',' or '}' at line %d, column %d", sep.line, sep.col)
		return nil, false
	}

	v.objHead = head
	return v, true
}

// parseArray consumes '[' ( value ( ',' value )* )? ']'. This is the
// grammar spec.md describes in prose but the reference C left
// unimplemented; see SPEC_FULL.md's supplemented-features note.
func (p *parser) parseArray(depth int, err *Error) (*Value, bool) {
	open := p.advance() // '['
	if depth <= 0 {
		err.set(ErrDepth, open.line, open.col, "nesting depth exceeded at line %d, column %d", open.line, open.col)
		return nil, false
	}

	v := p.doc.arena.nodes.Alloc()
	v.kind = KindArray

	if t := p.peek(); t != nil && t.kind == tCloseBracket {
		p.advance()
		return v, true
	}

	var head, tail *arrayEntry
	n := 0
	for {
		val, ok := p.parseValue(depth-1, err)
		if !ok {
			return nil, false
		}

		entry := p.doc.arena.arrs.Alloc()
		entry.value = val
		if tail != nil {
			tail.next = entry
		} else {
			head = entry
		}
		tail = entry
		n++

		sep := p.peek()
		if sep == nil {
			err.set(ErrArray, 0, 0, "unexpected end of input inside array")
			return nil, false
		}
		if sep.kind == tComma {
			p.advance()
			continue
		}
		if sep.kind == tCloseBracket {
			p.advance()
			break
		}
		err.set(ErrArray, sep.line, sep.col, "expected ',' or ']' at line %d, column %d", sep.line, sep.col)
		return nil, false
	}

	v.arrHead = head
	v.arrLen = n
	return v, true
}
