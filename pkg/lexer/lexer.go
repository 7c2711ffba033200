/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package lexer turns plain text into tagged tokens for the matching engine.
// It is deliberately small: words, numbers, quoted strings, and single-rune
// symbols, each tagged with its class and carrying its source position. The
// engine itself never tokenizes; anything producing token.Token values can
// stand in for this package.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/dburkart/stratum/pkg/token"
)

const (
	TypeWord   = "word"
	TypeNumber = "number"
	TypeString = "string"
	TypeSymbol = "symbol"
)

type Scanner struct {
	Input string
	Pos   int

	line int
	col  int
}

// MatchWord returns the length of the next token, assuming it is a word.
//
// Grammar:
//
//	word            = 1*(ALPHA / DIGIT / '_')
func (s *Scanner) MatchWord() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) || unicode.IsLetter(r) || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is an
// integer or decimal number.
//
// Grammar:
//
//	number          = 1*DIGIT [ "." 1*DIGIT ]
func (s *Scanner) MatchNumber() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	if r != '.' {
		return size
	}

	frac := 0
	j := i + width
	r, width = utf8.DecodeRuneInString(s.Input[j:])
	for unicode.IsDigit(r) {
		frac += width
		j += width
		r, width = utf8.DecodeRuneInString(s.Input[j:])
	}

	if frac == 0 {
		return size
	}
	return size + 1 + frac
}

// MatchString returns the length of the next token, assuming it is a quoted
// string, including both quote runes. Zero means unterminated.
func (s *Scanner) MatchString() int {
	quote, width := utf8.DecodeRuneInString(s.Input[s.Pos:])

	i := s.Pos + width
	for i < len(s.Input) {
		r, w := utf8.DecodeRuneInString(s.Input[i:])
		if r == quote {
			return i - s.Pos + w
		}
		if r == '\n' {
			return 0
		}
		i += w
	}
	return 0
}

// Emit returns the next token and true, or false when the input is
// exhausted.
func (s *Scanner) Emit() (token.Token, bool, error) {
	for s.Pos < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])

		if r == '\n' {
			s.advance(width)
			s.line++
			s.col = 0
			continue
		}
		if unicode.IsSpace(r) {
			s.advance(width)
			continue
		}

		pos := token.Position{Line: s.line + 1, Column: s.col + 1, Offset: s.Pos}

		switch {
		case unicode.IsDigit(r):
			size := s.MatchNumber()
			return s.emit(size, TypeNumber, pos), true, nil
		case r == '\'' || r == '"':
			size := s.MatchString()
			if size == 0 {
				return token.Token{}, false, errors.Errorf("unterminated string at line %d, column %d", pos.Line, pos.Column)
			}
			value := s.Input[s.Pos+1 : s.Pos+size-1]
			s.advance(size)
			return token.WithTypes(value, TypeString).At(pos), true, nil
		case unicode.IsLetter(r) || r == '_':
			size := s.MatchWord()
			return s.emit(size, TypeWord, pos), true, nil
		default:
			return s.emit(width, TypeSymbol, pos), true, nil
		}
	}

	return token.Token{}, false, nil
}

func (s *Scanner) emit(size int, tag string, pos token.Position) token.Token {
	value := s.Input[s.Pos : s.Pos+size]
	s.advance(size)
	return token.WithTypes(value, tag).At(pos)
}

func (s *Scanner) advance(size int) {
	s.Pos += size
	s.col += size
}

// Tokenize scans the whole input into a token slice.
func Tokenize(input string) ([]token.Token, error) {
	s := Scanner{Input: input}

	var tokens []token.Token
	for {
		t, ok, err := s.Emit()
		if err != nil {
			return nil, errors.Wrap(err, "lexing failed")
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}
