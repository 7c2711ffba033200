/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rule

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context is the mutable environment for one top-level match attempt. It is
// created fresh per attempt and threaded unchanged through every nested rule
// call, which gives cross-cutting features (tracing today, captures or
// memoization tomorrow) a home without widening rule signatures.
//
// A Context is never shared across concurrent matches; each attempt owns its
// own instance.
type Context struct {
	id     uuid.UUID
	values map[string]interface{}
	log    zerolog.Logger
}

func NewContext() *Context {
	return &Context{
		id:     uuid.New(),
		values: map[string]interface{}{},
		log:    zerolog.Nop(),
	}
}

// WithLogger attaches a trace logger to the context. Rules emit trace events
// tagged with the attempt id; the default logger discards everything.
func (c *Context) WithLogger(log zerolog.Logger) *Context {
	c.log = log.With().Str("attempt", c.id.String()).Logger()
	return c
}

// ID identifies this match attempt in trace output.
func (c *Context) ID() uuid.UUID {
	return c.id
}

func (c *Context) Set(key string, value interface{}) {
	c.values[key] = value
}

func (c *Context) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

func (c *Context) Delete(key string) {
	delete(c.values, key)
}
