/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import "fmt"

// ArgumentError is panicked by rule constructors handed structurally invalid
// arguments: nil sub-rules, rule lists below the combinator's arity, negative
// or inverted repetition bounds, or an uncompilable pattern. Construction
// problems surface immediately, never at match time.
type ArgumentError struct {
	Reason string
}

func (e ArgumentError) Error() string {
	return "rule: " + e.Reason
}

func argErrorf(format string, args ...interface{}) ArgumentError {
	return ArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// InconsistentMatchError is panicked when the sub-rules of an AllOf disagree
// on the consumed span. That is a contract violation by the caller, not an
// ordinary non-match: conjunction only makes sense when every predicate
// describes the same token span.
type InconsistentMatchError struct {
	Rule Rule
	Want int
	Got  int
}

func (e InconsistentMatchError) Error() string {
	return fmt.Sprintf("rule: inconsistent match length in %s: %d vs %d tokens", e.Rule, e.Want, e.Got)
}
