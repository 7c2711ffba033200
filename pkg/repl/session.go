/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package repl holds the interactive shell's command model: named rule
// definitions, match execution against lexed input, and output writers for
// the results.
package repl

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dburkart/stratum/pkg/lang"
	"github.com/dburkart/stratum/pkg/lexer"
	"github.com/dburkart/stratum/pkg/rule"
	"github.com/dburkart/stratum/pkg/token"
)

// Session is the live state of one shell: rules defined so far, by name.
type Session struct {
	rules map[string]rule.Rule
	exprs map[string]string
	log   zerolog.Logger
}

func NewSession() *Session {
	return &Session{
		rules: map[string]rule.Rule{},
		exprs: map[string]string{},
		log:   zerolog.Nop(),
	}
}

// WithLogger routes match tracing to log.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log
	return s
}

// Define compiles expr and stores it under name, replacing any previous
// definition.
func (s *Session) Define(name, expr string) error {
	r, err := lang.Parse(expr)
	if err != nil {
		return errors.Wrapf(err, "rule '%s'", name)
	}
	s.rules[name] = r
	s.exprs[name] = expr
	return nil
}

// Rule returns the named rule.
func (s *Session) Rule(name string) (rule.Rule, bool) {
	r, ok := s.rules[name]
	return r, ok
}

// Expression returns the source expression the named rule was defined from.
func (s *Session) Expression(name string) (string, bool) {
	e, ok := s.exprs[name]
	return e, ok
}

// Names returns the defined rule names in sorted order.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match lexes input and attempts the named rule at the start of the token
// stream. A nil match inside the result is an ordinary "no match".
func (s *Session) Match(name, input string) (*MatchResult, error) {
	r, ok := s.rules[name]
	if !ok {
		return nil, errors.Errorf("no rule named '%s'", name)
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}

	stream := token.NewStream(tokens)
	ctx := rule.NewContext().WithLogger(s.log)

	return &MatchResult{
		Name:   name,
		Tokens: tokens,
		Match:  r.Match(stream, ctx),
	}, nil
}

// Tokens lexes input without matching anything against it.
func (s *Session) Tokens(input string) (*TokensResult, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &TokensResult{Tokens: tokens}, nil
}
