/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dburkart/stratum/pkg/common/parse"
	"github.com/dburkart/stratum/pkg/rule"
)

// Parse compiles a rule expression into a rule tree.
func Parse(input string) (rule.Rule, error) {
	p := Parser{Scanner: Scanner{Input: input}}
	return p.Parse()
}

type Parser struct {
	Scanner Scanner

	// Innermost-first stack of self-references for rec() bodies.
	selves []*deferredRule
}

func (p *Parser) Parse() (r rule.Rule, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch v := e.(type) {
			case parse.SyntaxError:
				err = errors.New(v.FormatError(p.Scanner.Input))
			case rule.ArgumentError:
				err = errors.Wrap(v, "invalid rule expression")
			default:
				panic(e)
			}
			r = nil
		}
	}()

	p.Scanner.Input = strings.Trim(p.Scanner.Input, " \t\n")

	r = p.rule()

	// If we didn't parse all the input, return an error
	if p.Scanner.Pos != len(p.Scanner.Input) {
		syntaxError := parse.NewSyntaxError(parse.Token{
			Type:     TOK_INVALID,
			Location: parse.Location{Start: p.Scanner.Pos, End: len(p.Scanner.Input) - 1},
		}, "Error: expression is not valid, starting here")
		err = errors.New(syntaxError.FormatError(p.Scanner.Input))
		r = nil
	}

	return
}

// rule returns the rule for the next expression form
//
// Grammar:
//
//	rule            = leaf / combinator / "self" / "always" / "never" / "end"
//	combinator      = name "(" args ")"
//	args            = arg *( "," arg )
func (p *Parser) rule() rule.Rule {
	tok := p.Scanner.Emit()

	if tok.Type != TOK_IDENTIFIER {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected a rule name", tok.Lexeme)))
	}

	switch tok.Lexeme {
	case "self":
		if len(p.selves) == 0 {
			panic(parse.NewSyntaxError(tok, "Error: 'self' is only valid inside rec(...)"))
		}
		return p.selves[len(p.selves)-1]
	case "always":
		return rule.AlwaysMatch()
	case "never":
		return rule.NeverMatch()
	case "end":
		return rule.EndOfStream()
	case "value":
		return rule.Value(p.stringArg(tok))
	case "value-fold":
		return rule.ValueFold(p.stringArg(tok))
	case "pattern":
		return rule.Pattern(p.stringArg(tok))
	case "type":
		return rule.Type(p.stringArg(tok))
	case "length":
		nums := p.numberArgs(tok, 1, 2)
		if len(nums) == 1 {
			return rule.ExactLength(nums[0])
		}
		return rule.LengthBetween(nums[0], nums[1])
	case "min-length":
		return rule.MinLength(p.numberArgs(tok, 1, 1)[0])
	case "max-length":
		return rule.MaxLength(p.numberArgs(tok, 1, 1)[0])
	case "not":
		return p.ruleArgs(tok, 1, 1)[0].Not()
	case "seq":
		return rule.Sequence(p.ruleArgs(tok, 1, -1)...)
	case "any":
		return rule.AnyOf(p.ruleArgs(tok, 2, -1)...)
	case "all":
		return rule.AllOf(p.ruleArgs(tok, 2, -1)...)
	case "optional":
		return rule.Optional(p.ruleArgs(tok, 1, 1)[0])
	case "repeated":
		return p.repeated(tok)
	case "boundary":
		args := p.ruleArgs(tok, 2, 3)
		if len(args) == 2 {
			return rule.Boundary(args[0], args[1])
		}
		return rule.BoundaryWith(args[0], args[1], args[2])
	case "rec":
		return p.recursive(tok)
	}

	panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unknown rule '%s'", tok.Lexeme)))
}

// repeated parses the bounded-repetition form
//
// Grammar:
//
//	repeated        = "repeated" "(" rule "," number "," number ")"
func (p *Parser) repeated(name parse.Token) rule.Rule {
	p.expect(TOK_PAREN_L, "'('")
	inner := p.rule()
	p.expect(TOK_COMMA, "','")
	min := p.number()
	p.expect(TOK_COMMA, "','")
	max := p.number()
	p.expect(TOK_PAREN_R, "')'")
	return rule.Repeated(inner, min, max)
}

// recursive parses a self-referential grammar
//
// Grammar:
//
//	recursive       = "rec" "(" rule ")"
//
// The body is parsed eagerly with a placeholder on the self stack; the
// placeholder is bound to the real self-reference the first time the rule
// is used.
func (p *Parser) recursive(name parse.Token) rule.Rule {
	deferred := &deferredRule{}

	p.expect(TOK_PAREN_L, "'('")
	p.selves = append(p.selves, deferred)
	body := p.rule()
	p.selves = p.selves[:len(p.selves)-1]
	p.expect(TOK_PAREN_R, "')'")

	return rule.Recursive(func(self rule.Rule) rule.Rule {
		deferred.target = self
		return body
	})
}

// ruleArgs parses a parenthesized, comma-separated rule list and enforces
// the combinator's arity. A max of -1 means unbounded.
func (p *Parser) ruleArgs(name parse.Token, min, max int) []rule.Rule {
	p.expect(TOK_PAREN_L, "'('")

	var rules []rule.Rule
	for {
		rules = append(rules, p.rule())

		tok := p.Scanner.Emit()
		if tok.Type == TOK_PAREN_R {
			break
		}
		if tok.Type != TOK_COMMA {
			panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected ',' or ')'", tok.Lexeme)))
		}
	}

	if len(rules) < min || (max != -1 && len(rules) > max) {
		panic(parse.NewSyntaxError(name, fmt.Sprintf("Error: '%s' takes %s, got %d",
			name.Lexeme, describeArity(min, max), len(rules))))
	}

	return rules
}

func describeArity(min, max int) string {
	switch {
	case max == -1:
		return fmt.Sprintf("at least %d rules", min)
	case min == max && min == 1:
		return "exactly 1 rule"
	case min == max:
		return fmt.Sprintf("exactly %d rules", min)
	}
	return fmt.Sprintf("%d to %d rules", min, max)
}

// stringArg parses a single parenthesized string argument.
func (p *Parser) stringArg(name parse.Token) string {
	p.expect(TOK_PAREN_L, "'('")
	tok := p.Scanner.Emit()
	if tok.Type != TOK_STRING {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected a string", tok.Lexeme)))
	}
	value, err := strconv.Unquote(tok.Lexeme)
	if err != nil {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: invalid string literal %s", tok.Lexeme)))
	}
	p.expect(TOK_PAREN_R, "')'")
	return value
}

// numberArgs parses a parenthesized, comma-separated number list.
func (p *Parser) numberArgs(name parse.Token, min, max int) []int {
	p.expect(TOK_PAREN_L, "'('")

	var nums []int
	for {
		nums = append(nums, p.number())

		tok := p.Scanner.Emit()
		if tok.Type == TOK_PAREN_R {
			break
		}
		if tok.Type != TOK_COMMA {
			panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected ',' or ')'", tok.Lexeme)))
		}
	}

	if len(nums) < min || len(nums) > max {
		panic(parse.NewSyntaxError(name, fmt.Sprintf("Error: '%s' takes between %d and %d numbers, got %d",
			name.Lexeme, min, max, len(nums))))
	}

	return nums
}

func (p *Parser) number() int {
	tok := p.Scanner.Emit()
	if tok.Type != TOK_NUMBER {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected a number", tok.Lexeme)))
	}
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: invalid number '%s'", tok.Lexeme)))
	}
	return n
}

func (p *Parser) expect(ty TokenType, what string) parse.Token {
	tok := p.Scanner.Emit()
	if tok.Type != ty {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected %s", tok.Lexeme, what)))
	}
	return tok
}
