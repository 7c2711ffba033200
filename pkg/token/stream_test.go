/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

import "testing"

func TestStreamCursor(t *testing.T) {
	s := NewStream([]Token{New("a"), New("b"), New("c")})

	if s.Len() != 3 {
		t.Errorf("wanted length 3, got %d", s.Len())
	}

	tok, ok := s.Current()
	if !ok || tok.Value() != "a" {
		t.Errorf("wanted current 'a', got '%s'", tok.Value())
	}

	if idx := s.Advance(); idx != 1 {
		t.Errorf("wanted index 1 after advance, got %d", idx)
	}

	s.Advance()
	s.Advance()
	if s.HasMore() {
		t.Error("stream should be exhausted")
	}

	if _, ok := s.Current(); ok {
		t.Error("Current on an exhausted stream should report not ok")
	}

	// Advancing an exhausted stream stays put
	if idx := s.Advance(); idx != 3 {
		t.Errorf("wanted index 3, got %d", idx)
	}
}

func TestStreamCopyIsIndependent(t *testing.T) {
	s := NewStream([]Token{New("a"), New("b")})
	s.Advance()

	c := s.Copy()
	if c.Index() != 1 {
		t.Errorf("wanted copy cursor 1, got %d", c.Index())
	}

	c.Advance()
	if s.Index() != 1 {
		t.Errorf("advancing the copy moved the original to %d", s.Index())
	}

	r := s.Reset()
	if r.Index() != 0 || s.Index() != 1 {
		t.Errorf("Reset should produce a fresh cursor: got %d and %d", r.Index(), s.Index())
	}
}

func TestStreamSeekClamps(t *testing.T) {
	s := NewStream([]Token{New("a"), New("b")})

	s.Seek(10)
	if s.Index() != 2 {
		t.Errorf("wanted cursor clamped to 2, got %d", s.Index())
	}

	s.Seek(-4)
	if s.Index() != 0 {
		t.Errorf("wanted cursor clamped to 0, got %d", s.Index())
	}
}

func TestStreamRange(t *testing.T) {
	s := NewStream([]Token{New("a"), New("b"), New("c")})

	got := Values(s.Range(1, 3))
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("wanted [b c], got %v", got)
	}

	if s.Range(2, 2) != nil {
		t.Error("empty range should be nil")
	}
}

func TestTokenTypes(t *testing.T) {
	tok := WithTypes("let", "word", "keyword")

	if !tok.HasType("keyword") {
		t.Error("wanted token to carry 'keyword'")
	}
	if tok.HasType("number") {
		t.Error("token should not carry 'number'")
	}

	// Types returns a copy; mutating it must not leak back
	tok.Types()[0] = "mutated"
	if !tok.HasType("word") {
		t.Error("token tags should be immutable")
	}
}

func TestTokenPosition(t *testing.T) {
	tok := New("x")
	if tok.Position().Valid() {
		t.Error("fresh token should be unpositioned")
	}

	placed := tok.At(Position{Line: 1, Column: 4, Offset: 3})
	if !placed.Position().Valid() || placed.Position().Column != 4 {
		t.Errorf("wanted column 4, got %d", placed.Position().Column)
	}
}
