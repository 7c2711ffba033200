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

type boundaryRule struct {
	start   Rule
	between Rule
	end     Rule
}

// Boundary matches delimited content: start, then any tokens, then the
// earliest position at which end matches. Equivalent to BoundaryWith using
// AlwaysMatch for the content.
func Boundary(start, end Rule) Rule {
	return BoundaryWith(start, AlwaysMatch(), end)
}

// BoundaryWith matches start, then scans forward for the earliest candidate
// position at which end matches and the zone between them can be exactly
// consumed by repeated applications of between. Each application of between
// must consume at least one token and must not cross the candidate end; a
// candidate whose zone cannot be consumed is rejected and the scan resumes
// further on. An empty zone trivially qualifies.
func BoundaryWith(start, between, end Rule) Rule {
	if start == nil {
		panic(argErrorf("boundary start rule is nil"))
	}
	if between == nil {
		panic(argErrorf("boundary between rule is nil"))
	}
	if end == nil {
		panic(argErrorf("boundary end rule is nil"))
	}
	return &boundaryRule{start: start, between: between, end: end}
}

func (r *boundaryRule) Match(stream *token.Stream, ctx *Context) *Match {
	begin := stream.Index()
	probe := stream.Copy()

	if m := r.start.Match(probe, ctx); m == nil {
		return nil
	}
	zoneStart := probe.Index()

	// Earliest valid end wins. Candidates run through the zero-width
	// position at the end of the stream, so a zero-width end rule can
	// still close the boundary there.
	for at := zoneStart; at <= probe.Len(); at++ {
		endProbe := probe.Copy()
		endProbe.Seek(at)

		if m := r.end.Match(endProbe, ctx); m == nil {
			continue
		}
		if !r.zoneConsumed(probe, zoneStart, at, ctx) {
			continue
		}

		end := endProbe.Index()
		ctx.log.Trace().Int("zone", at-zoneStart).Int("end", end).Msg("boundary closed")
		stream.Seek(end)
		return &Match{Start: begin, End: end, Tokens: stream.Range(begin, end), Rule: r}
	}

	return nil
}

// zoneConsumed reports whether between, applied repeatedly from the zone's
// first token, consumes the tokens in [from, to) exactly.
func (r *boundaryRule) zoneConsumed(stream *token.Stream, from, to int, ctx *Context) bool {
	if from == to {
		return true
	}

	zone := stream.Copy()
	zone.Seek(from)
	for zone.Index() < to {
		m := r.between.Match(zone, ctx)
		if m == nil || m.Len() == 0 {
			return false
		}
		if zone.Index() > to {
			// Overshot the candidate end.
			return false
		}
	}
	return true
}

// Not negates each component independently. Note that this is not the
// logical complement of the boundary's match predicate as a whole.
func (r *boundaryRule) Not() Rule {
	return &boundaryRule{start: r.start.Not(), between: r.between.Not(), end: r.end.Not()}
}

func (r *boundaryRule) String() string {
	return fmt.Sprintf("boundary(%s, %s, %s)", r.start, r.between, r.end)
}
