/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package parse holds the token and error types shared by the rule
// expression language's scanner and parser.
package parse

type TokenType interface {
	ToString() string
}

// Location is a byte range in the scanned expression text.
type Location struct {
	Start int
	End   int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}
