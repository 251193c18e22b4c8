// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/bureau-foundation/paramkit/lib/clock"
)

type settings struct {
	summary     string
	description string
	aliases     []string
	permission  string

	logger *slog.Logger
	clock  clock.Clock
	tracer trace.Tracer
}

// Option configures a [Command] during [New].
type Option func(*settings)

// WithSummary sets the one-line description shown in listings.
func WithSummary(summary string) Option {
	return func(s *settings) { s.summary = summary }
}

// WithDescription sets the long help text.
func WithDescription(description string) Option {
	return func(s *settings) { s.description = strings.TrimSpace(description) }
}

// WithAliases adds alternative names for the last word of the
// command's path.
func WithAliases(aliases ...string) Option {
	return func(s *settings) { s.aliases = append(s.aliases, aliases...) }
}

// WithPermission overrides the permission key. The default is
// "command." followed by the path words joined with dots.
func WithPermission(key string) Option {
	return func(s *settings) { s.permission = key }
}

// WithLogger sets the logger for per-execution debug records. Nil is
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to timestamp invocations. Nil is
// ignored.
func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithTracer sets the tracer for execution spans. Nil is ignored.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}
