/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import "testing"

func TestScannerEmit(t *testing.T) {
	s := Scanner{Input: `seq(value("let"), repeated(type("word"), 1, 3))`}

	expected := []struct {
		ty     TokenType
		lexeme string
	}{
		{TOK_IDENTIFIER, "seq"},
		{TOK_PAREN_L, "("},
		{TOK_IDENTIFIER, "value"},
		{TOK_PAREN_L, "("},
		{TOK_STRING, `"let"`},
		{TOK_PAREN_R, ")"},
		{TOK_COMMA, ","},
		{TOK_IDENTIFIER, "repeated"},
		{TOK_PAREN_L, "("},
		{TOK_IDENTIFIER, "type"},
		{TOK_PAREN_L, "("},
		{TOK_STRING, `"word"`},
		{TOK_PAREN_R, ")"},
		{TOK_COMMA, ","},
		{TOK_NUMBER, "1"},
		{TOK_COMMA, ","},
		{TOK_NUMBER, "3"},
		{TOK_PAREN_R, ")"},
		{TOK_PAREN_R, ")"},
		{TOK_EOF, ""},
	}

	for i, want := range expected {
		tok := s.Emit()
		if tok.Type != want.ty {
			t.Errorf("token %d: wanted %s, got %s", i, want.ty.ToString(), tok.Type.(TokenType).ToString())
		}
		if tok.Lexeme != want.lexeme {
			t.Errorf("token %d: wanted '%s', got '%s'", i, want.lexeme, tok.Lexeme)
		}
	}
}

func TestScannerStringEscapes(t *testing.T) {
	s := Scanner{Input: `pattern("\"[a-z]+\"")`}

	s.Emit() // pattern
	s.Emit() // (
	tok := s.Emit()

	if tok.Type != TOK_STRING {
		t.Fatalf("wanted a string, got %s", tok.Type.(TokenType).ToString())
	}
	if tok.Lexeme != `"\"[a-z]+\""` {
		t.Errorf("wanted the escaped lexeme, got %s", tok.Lexeme)
	}
}

func TestScannerIdentifierHyphens(t *testing.T) {
	s := Scanner{Input: "value-fold min-length"}

	tok := s.Emit()
	if tok.Type != TOK_IDENTIFIER || tok.Lexeme != "value-fold" {
		t.Errorf("wanted 'value-fold', got '%s'", tok.Lexeme)
	}

	tok = s.Emit()
	if tok.Type != TOK_IDENTIFIER || tok.Lexeme != "min-length" {
		t.Errorf("wanted 'min-length', got '%s'", tok.Lexeme)
	}
}

func TestScannerRewind(t *testing.T) {
	s := Scanner{Input: "any(x, y)"}

	first := s.Emit()
	s.Rewind()
	again := s.Emit()

	if first.Lexeme != again.Lexeme || first.Type != again.Type {
		t.Errorf("rewind did not restore the scanner: '%s' vs '%s'", first.Lexeme, again.Lexeme)
	}
}

func TestScannerUnterminatedString(t *testing.T) {
	s := Scanner{Input: `value("oops`}

	s.Emit() // value
	s.Emit() // (
	tok := s.Emit()

	if tok.Type != TOK_INVALID {
		t.Errorf("wanted TOK_INVALID for an unterminated string, got %s", tok.Type.(TokenType).ToString())
	}
}
