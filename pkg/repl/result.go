/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strings"

	"github.com/dburkart/stratum/pkg/rule"
	"github.com/dburkart/stratum/pkg/token"
)

// Printable is anything the output writers can render.
type Printable interface {
	Headers() []string
	Values() [][]string
}

// MatchResult is the outcome of running a named rule over lexed input.
type MatchResult struct {
	Name   string        `json:"name"`
	Tokens []token.Token `json:"-"`
	Match  *rule.Match   `json:"-"`

	Matched  bool     `json:"matched"`
	Start    int      `json:"start,omitempty"`
	End      int      `json:"end,omitempty"`
	Consumed []string `json:"consumed,omitempty"`
}

func (r *MatchResult) Headers() []string {
	return []string{"rule", "matched", "span", "consumed", "variant"}
}

func (r *MatchResult) Values() [][]string {
	if r.Match == nil {
		return [][]string{{r.Name, "no", "-", "-", "-"}}
	}
	return [][]string{{
		r.Name,
		"yes",
		fmt.Sprintf("[%d, %d)", r.Match.Start, r.Match.End),
		strings.Join(token.Values(r.Match.Tokens), " "),
		r.Match.Rule.String(),
	}}
}

// Finalize populates the JSON-facing fields from the raw match. Writers call
// this before encoding.
func (r *MatchResult) Finalize() *MatchResult {
	if r.Match != nil {
		r.Matched = true
		r.Start = r.Match.Start
		r.End = r.Match.End
		r.Consumed = token.Values(r.Match.Tokens)
	}
	return r
}

// TokensResult is a token dump for the 'tokens' command.
type TokensResult struct {
	Tokens []token.Token `json:"-"`
}

func (r *TokensResult) Headers() []string {
	return []string{"index", "value", "types", "position"}
}

func (r *TokensResult) Values() [][]string {
	rows := make([][]string, len(r.Tokens))
	for i, t := range r.Tokens {
		pos := "-"
		if t.Position().Valid() {
			pos = fmt.Sprintf("%d:%d", t.Position().Line, t.Position().Column)
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			t.Value(),
			strings.Join(t.Types(), ","),
			pos,
		}
	}
	return rows
}

// RuleList renders the session's rule table for the 'list' command.
type RuleList struct {
	Names       []string `json:"names"`
	Expressions []string `json:"expressions"`
}

func (r *RuleList) Headers() []string {
	return []string{"name", "expression"}
}

func (r *RuleList) Values() [][]string {
	rows := make([][]string, len(r.Names))
	for i, name := range r.Names {
		rows[i] = []string{name, r.Expressions[i]}
	}
	return rows
}
