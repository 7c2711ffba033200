/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import (
	"fmt"
	"strings"

	"github.com/dburkart/stratum/pkg/token"
)

func joinRules(rules []Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

type sequenceRule struct {
	rules []Rule
}

// Sequence matches its sub-rules one after another, each consuming its own
// span. If any sub-rule fails the whole sequence fails and the stream is
// rewound; no partial consumption is ever observed by the caller.
func Sequence(rules ...Rule) Rule {
	return &sequenceRule{rules: requireRules("sequence", rules, 1)}
}

func (r *sequenceRule) Match(stream *token.Stream, ctx *Context) *Match {
	start := stream.Index()
	probe := stream.Copy()

	var tokens []token.Token
	for _, sub := range r.rules {
		m := sub.Match(probe, ctx)
		if m == nil {
			return nil
		}
		tokens = append(tokens, m.Tokens...)
	}

	end := probe.Index()
	stream.Seek(end)
	return &Match{Start: start, End: end, Tokens: tokens, Rule: r}
}

// Not follows the component-list convention: the negation of a sequence is
// an alternation over the same sub-rules. A single-element sequence negates
// to the negation of its only element.
func (r *sequenceRule) Not() Rule {
	if len(r.rules) == 1 {
		return r.rules[0].Not()
	}
	return AnyOf(r.rules...)
}

func (r *sequenceRule) String() string {
	return fmt.Sprintf("seq(%s)", joinRules(r.rules))
}

type anyOfRule struct {
	rules []Rule
}

// AnyOf tries its alternatives strictly in declared order and returns the
// first success. There is no longest-match search; priority is positional.
// The returned match identifies the winning branch.
func AnyOf(rules ...Rule) Rule {
	return &anyOfRule{rules: requireRules("anyOf", rules, 2)}
}

func (r *anyOfRule) Match(stream *token.Stream, ctx *Context) *Match {
	for i, sub := range r.rules {
		if m := sub.Match(stream, ctx); m != nil {
			ctx.log.Trace().Int("branch", i).Stringer("rule", sub).Msg("alternation matched")
			return m
		}
	}
	return nil
}

// Not is the dual of Sequence.Not: an in-order conjunction over the same
// sub-rules.
func (r *anyOfRule) Not() Rule {
	return Sequence(r.rules...)
}

func (r *anyOfRule) String() string {
	return fmt.Sprintf("any(%s)", joinRules(r.rules))
}

type allOfRule struct {
	rules []Rule
}

// AllOf matches every sub-rule at the same starting position, each against
// an unconsumed view of the stream. All must succeed and all must agree on
// the consumed span; a disagreement panics an InconsistentMatchError, since
// it means the caller composed mutually incompatible predicates.
func AllOf(rules ...Rule) Rule {
	return &allOfRule{rules: requireRules("allOf", rules, 2)}
}

func (r *allOfRule) Match(stream *token.Stream, ctx *Context) *Match {
	start := stream.Index()

	var first *Match
	for _, sub := range r.rules {
		m := sub.Match(stream.Copy(), ctx)
		if m == nil {
			return nil
		}
		if first == nil {
			first = m
			continue
		}
		if m.End != first.End {
			panic(InconsistentMatchError{Rule: r, Want: first.End - start, Got: m.End - start})
		}
	}

	stream.Seek(first.End)
	return &Match{Start: start, End: first.End, Tokens: first.Tokens, Rule: r}
}

// Not follows the same component-list convention as Sequence.
func (r *allOfRule) Not() Rule {
	return AnyOf(r.rules...)
}

func (r *allOfRule) String() string {
	return fmt.Sprintf("all(%s)", joinRules(r.rules))
}

type optionalRule struct {
	inner Rule
}

// Optional tries its inner rule once and, when that fails, succeeds with an
// empty span and no cursor movement. It never fails.
func Optional(inner Rule) Rule {
	if inner == nil {
		panic(argErrorf("optional rule is nil"))
	}
	return &optionalRule{inner: inner}
}

func (r *optionalRule) Match(stream *token.Stream, ctx *Context) *Match {
	if m := r.inner.Match(stream, ctx); m != nil {
		return &Match{Start: m.Start, End: m.End, Tokens: m.Tokens, Rule: r}
	}
	at := stream.Index()
	return &Match{Start: at, End: at, Rule: r}
}

func (r *optionalRule) Not() Rule { return &notRule{inner: r} }

func (r *optionalRule) String() string {
	return fmt.Sprintf("optional(%s)", r.inner)
}

type repeatedRule struct {
	inner Rule
	min   int
	max   int
}

// Repeated applies its inner rule greedily, left to right, between min and
// max times inclusive. It stops at the first failure or at max, and fails
// (rewinding the stream) only when fewer than min applications succeeded.
func Repeated(inner Rule, min, max int) Rule {
	if inner == nil {
		panic(argErrorf("repeated rule is nil"))
	}
	if min < 0 {
		panic(argErrorf("repetition minimum must not be negative, got %d", min))
	}
	if max < 1 {
		panic(argErrorf("repetition maximum must be positive, got %d", max))
	}
	if max < min {
		panic(argErrorf("repetition maximum %d is below minimum %d", max, min))
	}
	return &repeatedRule{inner: inner, min: min, max: max}
}

func (r *repeatedRule) Match(stream *token.Stream, ctx *Context) *Match {
	start := stream.Index()
	probe := stream.Copy()

	var tokens []token.Token
	count := 0
	for count < r.max {
		m := r.inner.Match(probe, ctx)
		if m == nil {
			break
		}
		// A zero-width inner match would repeat forever; treat it as done.
		if m.Len() == 0 {
			break
		}
		tokens = append(tokens, m.Tokens...)
		count++
	}

	if count < r.min {
		return nil
	}

	end := probe.Index()
	stream.Seek(end)
	return &Match{Start: start, End: end, Tokens: tokens, Rule: r}
}

func (r *repeatedRule) Not() Rule { return &notRule{inner: r} }

func (r *repeatedRule) String() string {
	return fmt.Sprintf("repeated(%s, %d, %d)", r.inner, r.min, r.max)
}
