/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"

	"github.com/pkg/errors"
)

type CommandKind int

const (
	CommandInvalid CommandKind = iota
	CommandRule
	CommandMatch
	CommandTokens
	CommandList
	CommandHelp
	CommandExit
)

// Command is one parsed REPL input line.
type Command struct {
	Kind       CommandKind
	Name       string
	Expression string
	Input      string
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'. Forms:
//
//	rule NAME = EXPRESSION
//	match NAME INPUT...
//	tokens INPUT...
//	list / help / exit
func ParseREPLCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)

	cmd := line
	rest := ""
	if ind := strings.IndexByte(line, ' '); ind != -1 {
		cmd = line[:ind]
		rest = strings.TrimSpace(line[ind+1:])
	}

	switch strings.ToLower(cmd) {
	case "rule":
		eq := strings.IndexByte(rest, '=')
		if eq == -1 {
			return Command{}, errors.New("usage: rule NAME = EXPRESSION")
		}
		name := strings.TrimSpace(rest[:eq])
		expr := strings.TrimSpace(rest[eq+1:])
		if name == "" || expr == "" {
			return Command{}, errors.New("usage: rule NAME = EXPRESSION")
		}
		return Command{Kind: CommandRule, Name: name, Expression: expr}, nil
	case "match":
		ind := strings.IndexByte(rest, ' ')
		if ind == -1 {
			return Command{}, errors.New("usage: match NAME INPUT")
		}
		return Command{
			Kind:  CommandMatch,
			Name:  rest[:ind],
			Input: strings.TrimSpace(rest[ind+1:]),
		}, nil
	case "tokens":
		if rest == "" {
			return Command{}, errors.New("usage: tokens INPUT")
		}
		return Command{Kind: CommandTokens, Input: rest}, nil
	case "list":
		return Command{Kind: CommandList}, nil
	case "help":
		return Command{Kind: CommandHelp}, nil
	case "exit", "quit":
		return Command{Kind: CommandExit}, nil
	}

	return Command{}, errors.Errorf("unknown command '%s'", cmd)
}
