/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_STRING
	TOK_NUMBER
	TOK_COMMA

	TOK_PAREN_L
	TOK_PAREN_R
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	}
	return "TOK_UNKNOWN"
}
