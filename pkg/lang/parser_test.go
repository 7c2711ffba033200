/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/dburkart/stratum/pkg/rule"
	"github.com/dburkart/stratum/pkg/token"
)

// Expressions written in canonical form parse to rule trees that print
// themselves back identically.
func TestParseRoundTrip(t *testing.T) {
	expressions := []string{
		`value("let")`,
		`value-fold("SELECT")`,
		`pattern("[0-9]+")`,
		`type("word")`,
		`length(3)`,
		`length(2, 4)`,
		`min-length(1)`,
		`max-length(8)`,
		`always`,
		`never`,
		`end`,
		`not(value("x"))`,
		`seq(value("let"), type("word"), value("="))`,
		`any(type("number"), type("word"))`,
		`all(pattern("[a-z]+"), length(3))`,
		`optional(value(";"))`,
		`repeated(type("word"), 1, 3)`,
		`boundary(value("("), always, value(")"))`,
		`rec(any(value("base"), seq(value("("), self, value(")"))))`,
	}

	for _, expr := range expressions {
		r, err := Parse(expr)
		if err != nil {
			t.Errorf("failed to parse %s: %v", expr, err)
			continue
		}
		if actual := r.String(); actual != expr {
			t.Errorf("round trip mismatch:\n%s", diff.LineDiff(expr, actual))
		}
	}
}

func TestParseErrors(t *testing.T) {
	expressions := []string{
		``,
		`unknown("x")`,
		`seq(`,
		`seq()`,
		`any(value("x"))`,
		`value(42)`,
		`repeated(value("x"), 3, 1)`,
		`pattern("(")`,
		`self`,
		`value("x") trailing`,
	}

	for _, expr := range expressions {
		if _, err := Parse(expr); err == nil {
			t.Errorf("expected expression to fail: %s", expr)
		}
	}
}

func TestParseErrorCaret(t *testing.T) {
	_, err := Parse(`seq(value("a"), unknown("b"))`)
	if err == nil {
		t.Fatal("wanted a syntax error")
	}
	if !strings.Contains(err.Error(), "^") {
		t.Errorf("wanted a caret diagnostic, got: %v", err)
	}
	if !strings.Contains(err.Error(), "unknown rule") {
		t.Errorf("wanted the unknown-rule message, got: %v", err)
	}
}

func TestParsedRuleMatches(t *testing.T) {
	r, err := Parse(`seq(value("let"), type("word"), value("="), any(type("number"), type("string")))`)
	if err != nil {
		t.Fatal(err)
	}

	s := token.NewStream([]token.Token{
		token.WithTypes("let", "word"),
		token.WithTypes("x", "word"),
		token.WithTypes("=", "symbol"),
		token.WithTypes("1", "number"),
	})

	m := r.Match(s, rule.NewContext())
	if m == nil {
		t.Fatal("wanted the parsed rule to match")
	}
	if m.Len() != 4 {
		t.Errorf("wanted 4 tokens consumed, got %d", m.Len())
	}
}

func TestParsedRecursiveMatches(t *testing.T) {
	r, err := Parse(`rec(any(type("word"), seq(value("("), self, value(")"))))`)
	if err != nil {
		t.Fatal(err)
	}

	s := token.NewStream([]token.Token{
		token.New("("),
		token.New("("),
		token.WithTypes("x", "word"),
		token.New(")"),
		token.New(")"),
	})

	m := r.Match(s, rule.NewContext())
	if m == nil {
		t.Fatal("wanted the recursive expression to match")
	}
	if m.Len() != 5 {
		t.Errorf("wanted 5 tokens consumed, got %d", m.Len())
	}
}

func TestParsedNotSelf(t *testing.T) {
	// 'not(self)' has to work even though self is bound lazily.
	r, err := Parse(`rec(seq(value("a"), optional(not(self))))`)
	if err != nil {
		t.Fatal(err)
	}

	m := r.Match(token.NewStream([]token.Token{token.New("a"), token.New("b")}), rule.NewContext())
	if m == nil {
		t.Fatal("wanted a match")
	}
}
