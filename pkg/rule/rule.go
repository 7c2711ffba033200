/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package rule is a pattern-matching engine over token streams: a regular
// expression engine in spirit, but operating on typed tokens instead of
// characters, with support for recursive grammars.
//
// Rules come in two kinds. Leaves (Value, Pattern, Type, length predicates,
// AlwaysMatch, NeverMatch, EndOfStream) test exactly one token at the cursor.
// Combinators (Sequence, AnyOf, AllOf, Optional, Repeated, Boundary,
// Recursive) compose other rules. Matching is synchronous, deterministic,
// and free of error recovery: alternation is priority-ordered, repetition is
// greedy, and a failed rule simply reports no match.
//
// Every rule obeys the rewind invariant: if Match returns nil, the stream's
// cursor is exactly where it was before the call. Rules speculate on private
// stream copies and seek the shared stream only on success.
package rule

import (
	"fmt"

	"github.com/dburkart/stratum/pkg/token"
)

// Rule is the contract every leaf and combinator implements.
//
// Match attempts the rule at the stream's cursor. On success it advances the
// stream past the consumed span and returns the match; on failure it returns
// nil and leaves the cursor untouched. Repeating an identical call against an
// unchanged stream always yields the identical result.
//
// Not returns the rule's negation. For leaves that is the single-token
// complement; combinators each document their own convention. Applying Not
// twice always yields a rule equal to the original.
type Rule interface {
	fmt.Stringer

	Match(stream *token.Stream, ctx *Context) *Match
	Not() Rule
}

// requireRules validates a combinator's sub-rule list at construction time.
func requireRules(name string, rules []Rule, min int) []Rule {
	if len(rules) < min {
		panic(argErrorf("%s requires at least %d rules, got %d", name, min, len(rules)))
	}
	for i, r := range rules {
		if r == nil {
			panic(argErrorf("%s rule %d is nil", name, i))
		}
	}
	return append([]Rule{}, rules...)
}

// notRule is the generic complement wrapper: it succeeds on the single token
// at the cursor exactly when the wrapped rule fails there, and vice versa.
// Not on the wrapper hands back the wrapped rule itself, so double negation
// is the original rule, not a new wrapper.
type notRule struct {
	inner Rule
}

func (r *notRule) Match(stream *token.Stream, ctx *Context) *Match {
	start := stream.Index()
	if _, ok := stream.Current(); !ok {
		return nil
	}
	if m := r.inner.Match(stream.Copy(), ctx); m != nil {
		return nil
	}
	end := stream.Advance()
	return &Match{Start: start, End: end, Tokens: stream.Range(start, end), Rule: r}
}

func (r *notRule) Not() Rule {
	return r.inner
}

func (r *notRule) String() string {
	return fmt.Sprintf("not(%s)", r.inner)
}
