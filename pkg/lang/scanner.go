/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package lang implements the rule expression language: a small functional
// notation for composing matching rules, e.g.
//
//	seq(value("let"), type("word"), optional(pattern("[0-9]+")))
//
// The scanner and parser follow the usual Emit/Rewind shape; the parser
// produces rule.Rule trees.
package lang

import (
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/stratum/pkg/common/parse"
)

type Scanner struct {
	Input     string
	Start     int
	Pos       int
	LastWidth int
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier.
//
// Grammar:
//
//	identifier      = 1*(ALPHA / DIGIT / '-' / '_')
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) || unicode.IsLetter(r) || r == '-' || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is an
// integer.
//
// Grammar:
//
//	number          = 1*DIGIT
func (s *Scanner) MatchNumber() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for i := s.Pos; unicode.IsDigit(r); {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchString returns the length of the next token, assuming it is a
// double-quoted string. Backslash escapes the next rune, so patterns can
// contain quotes.
//
// Grammar:
//
//	string          = DQUOTE *( escaped / CHAR ) DQUOTE
func (s *Scanner) MatchString() int {
	i := s.Pos + 1
	for i < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		switch r {
		case '\\':
			_, escaped := utf8.DecodeRuneInString(s.Input[i+width:])
			i += width + escaped
		case '"':
			return i - s.Pos + width
		case utf8.RuneError:
			return 0
		default:
			i += width
		}
	}
	return 0
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	oldStart := s.Start

	for {
		if s.Pos >= len(s.Input) {
			s.Start = s.Pos
			t.Type = TOK_EOF
			break
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case unicode.IsSpace(r):
			skip = width
			found = false
		case r == '(':
			t.Type = TOK_PAREN_L
			skip = width
		case r == ')':
			t.Type = TOK_PAREN_R
			skip = width
		case r == ',':
			t.Type = TOK_COMMA
			skip = width
		case r == '"':
			skip = s.MatchString()
			if skip > 0 {
				t.Type = TOK_STRING
			} else {
				t.Type = TOK_INVALID
				skip = len(s.Input) - s.Pos
			}
		case unicode.IsDigit(r):
			t.Type = TOK_NUMBER
			skip = s.MatchNumber()
		case unicode.IsLetter(r) || r == '_':
			t.Type = TOK_IDENTIFIER
			skip = s.MatchIdentifier()
		default:
			t.Type = TOK_INVALID
			skip = width
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	s.LastWidth = s.Start - oldStart

	return t
}

// Rewind the last read token
func (s *Scanner) Rewind() {
	s.Start -= s.LastWidth
	s.Pos = s.Start
	s.LastWidth = 0
}
