/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"github.com/dburkart/stratum/pkg/rule"
	"github.com/dburkart/stratum/pkg/token"
)

// deferredRule is the parse-time stand-in for 'self' inside rec(...). The
// body of a recursive expression is parsed before the recursive rule exists,
// so 'self' resolves to this placeholder; the rec() callback binds target to
// the real self-reference before the body ever matches.
type deferredRule struct {
	target rule.Rule
}

func (r *deferredRule) Match(stream *token.Stream, ctx *rule.Context) *rule.Match {
	return r.target.Match(stream, ctx)
}

func (r *deferredRule) Not() rule.Rule {
	return &deferredNotRule{inner: r}
}

func (r *deferredRule) String() string { return "self" }

// deferredNotRule is the single-token complement of a deferredRule. It exists
// because 'not(self)' can appear in an expression before the placeholder is
// bound, so the negation has to be as lazy as the self-reference itself.
type deferredNotRule struct {
	inner *deferredRule
}

func (r *deferredNotRule) Match(stream *token.Stream, ctx *rule.Context) *rule.Match {
	start := stream.Index()
	if _, ok := stream.Current(); !ok {
		return nil
	}
	if m := r.inner.Match(stream.Copy(), ctx); m != nil {
		return nil
	}
	end := stream.Advance()
	return &rule.Match{Start: start, End: end, Tokens: stream.Range(start, end), Rule: r}
}

func (r *deferredNotRule) Not() rule.Rule {
	return r.inner
}

func (r *deferredNotRule) String() string { return "not(self)" }
