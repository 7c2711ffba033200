/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dburkart/stratum/pkg/token"
)

// matchOne applies a single-token predicate at the cursor, consuming the
// token on success.
func matchOne(r Rule, stream *token.Stream, pred func(token.Token) bool) *Match {
	start := stream.Index()
	tok, ok := stream.Current()
	if !ok || !pred(tok) {
		return nil
	}
	end := stream.Advance()
	return &Match{Start: start, End: end, Tokens: stream.Range(start, end), Rule: r}
}

type valueRule struct {
	literal string
	fold    bool
}

// Value matches a token whose value equals literal.
func Value(literal string) Rule {
	return &valueRule{literal: literal}
}

// ValueFold is Value with case-insensitive comparison.
func ValueFold(literal string) Rule {
	return &valueRule{literal: literal, fold: true}
}

func (r *valueRule) Match(stream *token.Stream, ctx *Context) *Match {
	return matchOne(r, stream, func(t token.Token) bool {
		if r.fold {
			return strings.EqualFold(t.Value(), r.literal)
		}
		return t.Value() == r.literal
	})
}

func (r *valueRule) Not() Rule { return &notRule{inner: r} }

func (r *valueRule) String() string {
	if r.fold {
		return fmt.Sprintf("value-fold(%q)", r.literal)
	}
	return fmt.Sprintf("value(%q)", r.literal)
}

type patternRule struct {
	expr string
	re   *regexp.Regexp
}

// Pattern matches a token whose whole value matches the regular expression
// expr. This is whole-value equality, not substring search. An invalid
// expression panics an ArgumentError at construction.
func Pattern(expr string) Rule {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		panic(argErrorf("invalid pattern %q: %v", expr, err))
	}
	return &patternRule{expr: expr, re: re}
}

func (r *patternRule) Match(stream *token.Stream, ctx *Context) *Match {
	return matchOne(r, stream, func(t token.Token) bool {
		return r.re.MatchString(t.Value())
	})
}

func (r *patternRule) Not() Rule { return &notRule{inner: r} }

func (r *patternRule) String() string {
	return fmt.Sprintf("pattern(%q)", r.expr)
}

type typeRule struct {
	tag string
}

// Type matches a token carrying the given semantic type tag.
func Type(tag string) Rule {
	if tag == "" {
		panic(argErrorf("type tag must not be empty"))
	}
	return &typeRule{tag: tag}
}

func (r *typeRule) Match(stream *token.Stream, ctx *Context) *Match {
	return matchOne(r, stream, func(t token.Token) bool {
		return t.HasType(r.tag)
	})
}

func (r *typeRule) Not() Rule { return &notRule{inner: r} }

func (r *typeRule) String() string {
	return fmt.Sprintf("type(%q)", r.tag)
}

type lengthRule struct {
	min, max int
}

// ExactLength matches a token whose value is exactly n characters long.
func ExactLength(n int) Rule {
	return LengthBetween(n, n)
}

// MinLength matches a token whose value is at least n characters long.
func MinLength(n int) Rule {
	return LengthBetween(n, -1)
}

// MaxLength matches a token whose value is at most n characters long.
func MaxLength(n int) Rule {
	return LengthBetween(0, n)
}

// LengthBetween matches a token whose value length lies in [min, max].
// A max of -1 means unbounded.
func LengthBetween(min, max int) Rule {
	if min < 0 {
		panic(argErrorf("length minimum must not be negative, got %d", min))
	}
	if max != -1 && max < min {
		panic(argErrorf("length maximum %d is below minimum %d", max, min))
	}
	return &lengthRule{min: min, max: max}
}

func (r *lengthRule) Match(stream *token.Stream, ctx *Context) *Match {
	return matchOne(r, stream, func(t token.Token) bool {
		n := len([]rune(t.Value()))
		if n < r.min {
			return false
		}
		return r.max == -1 || n <= r.max
	})
}

func (r *lengthRule) Not() Rule { return &notRule{inner: r} }

func (r *lengthRule) String() string {
	switch {
	case r.min == r.max:
		return fmt.Sprintf("length(%d)", r.min)
	case r.max == -1:
		return fmt.Sprintf("min-length(%d)", r.min)
	case r.min == 0:
		return fmt.Sprintf("max-length(%d)", r.max)
	}
	return fmt.Sprintf("length(%d, %d)", r.min, r.max)
}

type alwaysRule struct{}

// AlwaysMatch unconditionally consumes one token, failing only on an
// exhausted stream.
func AlwaysMatch() Rule {
	return &alwaysRule{}
}

func (r *alwaysRule) Match(stream *token.Stream, ctx *Context) *Match {
	return matchOne(r, stream, func(token.Token) bool { return true })
}

func (r *alwaysRule) Not() Rule { return &notRule{inner: r} }

func (r *alwaysRule) String() string { return "always" }

type neverRule struct{}

// NeverMatch fails at every position without consuming anything.
func NeverMatch() Rule {
	return &neverRule{}
}

func (r *neverRule) Match(stream *token.Stream, ctx *Context) *Match {
	return nil
}

func (r *neverRule) Not() Rule { return &notRule{inner: r} }

func (r *neverRule) String() string { return "never" }

type endRule struct{}

// EndOfStream matches only when the stream is exhausted, consuming nothing.
func EndOfStream() Rule {
	return &endRule{}
}

func (r *endRule) Match(stream *token.Stream, ctx *Context) *Match {
	if stream.HasMore() {
		return nil
	}
	at := stream.Index()
	return &Match{Start: at, End: at, Rule: r}
}

func (r *endRule) Not() Rule { return &notRule{inner: r} }

func (r *endRule) String() string { return "end" }
