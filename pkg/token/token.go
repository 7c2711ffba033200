/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

import "strings"

// Position is a location in the lexed source. The zero value means
// "unpositioned", which is what synthetic tokens carry.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Valid reports whether p refers to an actual source location.
func (p Position) Valid() bool {
	return p.Line > 0
}

// Token is a single lexical unit: a value, an optional set of semantic type
// tags, and an optional source position. Tokens are created by a lexer and
// are read-only to the matching engine; none of the fields are ever mutated
// after construction.
type Token struct {
	value    string
	types    []string
	position Position
}

// New returns an untagged, unpositioned token.
func New(value string) Token {
	return Token{value: value}
}

// WithTypes returns a token carrying the given semantic type tags.
func WithTypes(value string, types ...string) Token {
	t := Token{value: value}
	if len(types) > 0 {
		t.types = append([]string{}, types...)
	}
	return t
}

// At returns a copy of t placed at the given position.
func (t Token) At(pos Position) Token {
	t.position = pos
	return t
}

func (t Token) Value() string {
	return t.value
}

// Types returns a copy of the token's type tags.
func (t Token) Types() []string {
	if t.types == nil {
		return nil
	}
	return append([]string{}, t.types...)
}

func (t Token) Position() Position {
	return t.position
}

// HasType reports whether the token carries the given type tag.
func (t Token) HasType(tag string) bool {
	for _, ty := range t.types {
		if ty == tag {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	if len(t.types) == 0 {
		return t.value
	}
	return t.value + "<" + strings.Join(t.types, ",") + ">"
}

// Values flattens a token slice into the underlying strings. Handy for tests
// and for the REPL's token dump.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.value
	}
	return out
}
