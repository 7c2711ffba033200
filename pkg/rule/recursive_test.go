/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import "testing"

func TestRecursiveNesting(t *testing.T) {
	r := Recursive(func(self Rule) Rule {
		return AnyOf(
			Value("base"),
			Sequence(Value("open"), self, Value("close")),
		)
	})

	s := stream("open", "open", "base", "close", "close")
	m := r.Match(s, NewContext())
	if m == nil {
		t.Fatal("wanted the nested grammar to match")
	}
	if m.Len() != 5 {
		t.Errorf("wanted the full 5-token span, got %d", m.Len())
	}
}

func TestRecursiveBaseCase(t *testing.T) {
	r := Recursive(func(self Rule) Rule {
		return AnyOf(
			Value("base"),
			Sequence(Value("open"), self, Value("close")),
		)
	})

	m := r.Match(stream("base"), NewContext())
	if m == nil || m.Len() != 1 {
		t.Error("wanted the base case to match a single token")
	}
}

func TestRecursiveRewindsOnFailure(t *testing.T) {
	r := Recursive(func(self Rule) Rule {
		return AnyOf(
			Value("base"),
			Sequence(Value("open"), self, Value("close")),
		)
	})

	s := stream("open", "open", "base", "close")
	if r.Match(s, NewContext()) != nil {
		t.Fatal("unbalanced input should not match")
	}
	if s.Index() != 0 {
		t.Errorf("failed recursion moved the cursor to %d", s.Index())
	}
}

func TestRecursiveBodyBuiltOnce(t *testing.T) {
	builds := 0
	r := Recursive(func(self Rule) Rule {
		builds++
		return AnyOf(
			Value("base"),
			Sequence(Value("open"), self, Value("close")),
		)
	})

	ctx := NewContext()
	r.Match(stream("base"), ctx)
	r.Match(stream("open", "base", "close"), ctx)

	if builds != 1 {
		t.Errorf("grammar body built %d times, wanted once", builds)
	}
}

func TestEnclosed(t *testing.T) {
	r := Enclosed(
		Value("("),
		func(self Rule) Rule {
			return AnyOf(Value("item"), self)
		},
		Value(")"),
	)

	m := r.Match(stream("(", "(", "item", ")", ")"), NewContext())
	if m == nil {
		t.Fatal("wanted the enclosed grammar to match")
	}
	if m.Len() != 5 {
		t.Errorf("wanted 5 tokens, got %d", m.Len())
	}
}

func TestRecursiveNilCallback(t *testing.T) {
	defer func() {
		if _, ok := recover().(ArgumentError); !ok {
			t.Error("wanted an ArgumentError for a nil callback")
		}
	}()
	Recursive(nil)
}

func TestRecursiveString(t *testing.T) {
	r := Recursive(func(self Rule) Rule {
		return AnyOf(Value("base"), Sequence(Value("("), self, Value(")")))
	})

	want := `rec(any(value("base"), seq(value("("), self, value(")"))))`
	if r.String() != want {
		t.Errorf("wanted %s, got %s", want, r.String())
	}
}
