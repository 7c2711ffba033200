/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import (
	"fmt"

	"github.com/dburkart/stratum/pkg/token"
)

type recursiveRule struct {
	build func(self Rule) Rule
	inner Rule
}

// Recursive constructs a self-referential rule. The build callback receives
// a proxy for the rule being defined and returns the grammar body, which may
// embed the proxy anywhere a rule is expected:
//
//	brackets := rule.Recursive(func(self rule.Rule) rule.Rule {
//		return rule.AnyOf(
//			rule.Type("word"),
//			rule.Sequence(rule.Value("("), self, rule.Value(")")),
//		)
//	})
//
// The body is built and cached on first use. Matching terminates only
// because the body offers a non-recursive base case it can pick before
// descending; a grammar without one recurses until the stream runs out of
// positions to try.
func Recursive(build func(self Rule) Rule) Rule {
	if build == nil {
		panic(argErrorf("recursive build callback is nil"))
	}
	return &recursiveRule{build: build}
}

// Enclosed is shorthand for the common bracketed-recursion shape: a rule
// matching open, then content (given the self-reference), then close.
func Enclosed(open Rule, content func(self Rule) Rule, close Rule) Rule {
	if open == nil {
		panic(argErrorf("enclosed opening rule is nil"))
	}
	if content == nil {
		panic(argErrorf("enclosed content callback is nil"))
	}
	if close == nil {
		panic(argErrorf("enclosed closing rule is nil"))
	}
	return Recursive(func(self Rule) Rule {
		return Sequence(open, content(self), close)
	})
}

// rule resolves the grammar body, building it exactly once. The body can't
// exist before the recursiveRule does, so the self-reference handed to the
// callback is a proxy that forwards back here.
func (r *recursiveRule) rule() Rule {
	if r.inner == nil {
		inner := r.build(&selfRule{owner: r})
		if inner == nil {
			panic(argErrorf("recursive build callback returned nil"))
		}
		r.inner = inner
	}
	return r.inner
}

func (r *recursiveRule) Match(stream *token.Stream, ctx *Context) *Match {
	return r.rule().Match(stream, ctx)
}

func (r *recursiveRule) Not() Rule { return &notRule{inner: r} }

func (r *recursiveRule) String() string {
	return fmt.Sprintf("rec(%s)", r.rule())
}

// selfRule stands in for a recursive rule inside its own body.
type selfRule struct {
	owner *recursiveRule
}

func (r *selfRule) Match(stream *token.Stream, ctx *Context) *Match {
	return r.owner.rule().Match(stream, ctx)
}

func (r *selfRule) Not() Rule { return &notRule{inner: r} }

func (r *selfRule) String() string { return "self" }
