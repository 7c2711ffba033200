/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

// Stream is a cursor over a fixed, ordered token sequence. The backing slice
// is shared between copies; only the cursor is owned. That makes Copy O(1),
// which is what lets rules speculate on a private view and leave the caller's
// stream untouched when they fail.
//
// The cursor is always in [0, Len()]. A rule that fails must leave the stream
// it was handed exactly where it found it; the convention throughout pkg/rule
// is to work on a Copy and Seek the shared stream only after success.
type Stream struct {
	tokens []Token
	cursor int
}

// NewStream wraps tokens in a stream with the cursor at 0.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// NewStreamAt wraps tokens with the cursor at index. Index is clamped to
// [0, len(tokens)].
func NewStreamAt(tokens []Token, index int) *Stream {
	s := &Stream{tokens: tokens}
	s.Seek(index)
	return s
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

// Index returns the current cursor position.
func (s *Stream) Index() int {
	return s.cursor
}

// HasMore reports whether a token remains at the cursor.
func (s *Stream) HasMore() bool {
	return s.cursor < len(s.tokens)
}

// Current returns the token at the cursor. The second return is false when
// the stream is exhausted.
func (s *Stream) Current() (Token, bool) {
	if !s.HasMore() {
		return Token{}, false
	}
	return s.tokens[s.cursor], true
}

// Advance moves the cursor forward by one token and returns the new index.
// Advancing an exhausted stream is a no-op.
func (s *Stream) Advance() int {
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
	return s.cursor
}

// Seek moves the cursor to index, clamped to [0, Len()].
func (s *Stream) Seek(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(s.tokens) {
		index = len(s.tokens)
	}
	s.cursor = index
}

// Copy returns an independent stream over the same backing tokens, with its
// own cursor at the same position. Used for speculative matching.
func (s *Stream) Copy() *Stream {
	return &Stream{tokens: s.tokens, cursor: s.cursor}
}

// Reset returns an independent stream over the same backing tokens with the
// cursor back at 0. Used when probing a rule against the original input.
func (s *Stream) Reset() *Stream {
	return &Stream{tokens: s.tokens}
}

// Range returns the tokens in [i, j). The returned slice aliases the backing
// array and must be treated as read-only.
func (s *Stream) Range(i, j int) []Token {
	if i < 0 {
		i = 0
	}
	if j > len(s.tokens) {
		j = len(s.tokens)
	}
	if i >= j {
		return nil
	}
	return s.tokens[i:j]
}
