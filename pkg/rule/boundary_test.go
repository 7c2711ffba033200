/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import "testing"

func TestBoundaryEarliestEnd(t *testing.T) {
	// With a match-anything between rule, the span reaching the second
	// 'end' would also validate, but the earliest valid end must win.
	s := stream("start", "end", "middle", "end")

	m := Boundary(Value("start"), Value("end")).Match(s, NewContext())
	if m == nil {
		t.Fatal("wanted a match")
	}
	if m.Len() != 2 {
		t.Errorf("wanted exactly [start, end] consumed, got %d tokens", m.Len())
	}
	if s.Index() != 2 {
		t.Errorf("wanted cursor 2, got %d", s.Index())
	}
}

func TestBoundaryEmptyZone(t *testing.T) {
	// An empty zone qualifies even when between could never match it.
	s := stream("start", "end")

	m := BoundaryWith(Value("start"), NeverMatch(), Value("end")).Match(s, NewContext())
	if m == nil {
		t.Fatal("wanted a match over the empty zone")
	}
	if m.Len() != 2 {
		t.Errorf("wanted 2 tokens consumed, got %d", m.Len())
	}
}

func TestBoundaryZoneValidation(t *testing.T) {
	// The first candidate 'end' at index 2 has a one-token zone; a between
	// rule that consumes tokens in pairs rejects it, so scanning resumes
	// and closes at the later 'end' whose four-token zone divides evenly.
	s := stream("start", "x", "end", "x", "x", "end")

	pair := Sequence(AlwaysMatch(), AlwaysMatch())
	m := BoundaryWith(Value("start"), pair, Value("end")).Match(s, NewContext())
	if m == nil {
		t.Fatal("wanted a match at the second candidate end")
	}
	if m.Len() != 6 {
		t.Errorf("wanted 6 tokens consumed, got %d", m.Len())
	}
}

func TestBoundaryOvershootRejectsCandidate(t *testing.T) {
	// between consumes two tokens at a time; a zone of one token cannot
	// be exactly consumed, and no later end exists.
	s := stream("start", "x", "end")

	pair := Sequence(AlwaysMatch(), AlwaysMatch())
	if BoundaryWith(Value("start"), pair, Value("end")).Match(s, NewContext()) != nil {
		t.Fatal("zone of odd length should not validate against a pairwise between rule")
	}
	if s.Index() != 0 {
		t.Errorf("failed boundary moved the cursor to %d", s.Index())
	}
}

func TestBoundaryNoEnd(t *testing.T) {
	s := stream("start", "a", "b")

	if Boundary(Value("start"), Value("end")).Match(s, NewContext()) != nil {
		t.Fatal("boundary should fail without a closing match")
	}
	if s.Index() != 0 {
		t.Errorf("failed boundary moved the cursor to %d", s.Index())
	}
}

func TestBoundaryZeroWidthEnd(t *testing.T) {
	// A zero-width end rule can close the boundary at the end of input.
	s := stream("start", "a", "b")

	m := Boundary(Value("start"), EndOfStream()).Match(s, NewContext())
	if m == nil {
		t.Fatal("wanted the boundary to close at end of stream")
	}
	if m.Len() != 3 {
		t.Errorf("wanted 3 tokens consumed, got %d", m.Len())
	}
}

func TestBoundaryComponentNegation(t *testing.T) {
	b := BoundaryWith(Value("("), AlwaysMatch(), Value(")"))

	n, ok := b.Not().(*boundaryRule)
	if !ok {
		t.Fatal("boundary negation should stay a boundary")
	}
	if n.start.String() != `not(value("("))` {
		t.Errorf("wanted a component-wise negated start, got %s", n.start)
	}

	// [x, (] — start now means "anything but '('"
	s := stream("x", "y", "(")
	if n.Match(s, NewContext()) == nil {
		t.Error("wanted the negated boundary to match")
	}
}
