/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import "github.com/dburkart/stratum/pkg/token"

// Match is the result of a successful rule application: the consumed span
// [Start, End) of the stream, the tokens inside it, and the concrete rule
// variant that produced it. For an alternation that is the winning branch,
// which is what a downstream rewriting stage keys off of.
//
// Matches are transient and never mutated after construction.
type Match struct {
	Start  int
	End    int
	Tokens []token.Token
	Rule   Rule
}

// Len returns the number of tokens consumed. Zero-width matches (Optional
// falling through, EndOfStream) have Len 0.
func (m *Match) Len() int {
	return m.End - m.Start
}
