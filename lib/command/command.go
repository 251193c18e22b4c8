// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bureau-foundation/paramkit/lib/clock"
	"github.com/bureau-foundation/paramkit/lib/parameter"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

const tracerName = "github.com/bureau-foundation/paramkit/lib/command"

// RunFunc is a command's execution body. It reads its parameters
// through inv and returns the invocation's result.
type RunFunc[R any] func(ctx context.Context, inv *Invocation) (R, error)

// Runner is the type-erased view of a [Command] used by command trees,
// manifests, and other tooling that handles commands of mixed result
// types.
type Runner interface {
	Declarer
	sender.Permission

	Name() string
	Path() []string
	Aliases() []string
	Summary() string
	Description() string
	Usage() string
	CompletionSuggestions(named []string, flags []rune, ordered int, includeFlags bool) []string
	Invoke(ctx context.Context, s sender.Sender, args map[*parameter.Descriptor]any) (any, error)
}

// Command is an executable command producing results of type R. It
// owns one parameter registry for its whole lifetime. Parameters are
// declared against it with [Value], [List], [Set], [Collection], and
// [Iterable] while it is being constructed; the registry is frozen on
// the first Execute.
type Command[R any] struct {
	name       string
	parameters *parameter.Registry
	run        RunFunc[R]
	settings   settings
}

var _ Runner = (*Command[any])(nil)

// New returns a command named name. Names containing spaces denote a
// path in a command tree ("config set").
func New[R any](name string, options ...Option) *Command[R] {
	settings := settings{
		logger: slog.New(slog.DiscardHandler),
		clock:  clock.Real(),
		tracer: otel.Tracer(tracerName),
	}
	for _, option := range options {
		option(&settings)
	}

	name = strings.Join(strings.Fields(name), " ")
	if settings.permission == "" {
		settings.permission = "command." + strings.ReplaceAll(name, " ", ".")
	}

	return &Command[R]{
		name:       name,
		parameters: parameter.NewRegistry(),
		settings:   settings,
	}
}

// Handle sets the execution body.
func (c *Command[R]) Handle(run RunFunc[R]) {
	c.run = run
}

// Name returns the command's full name.
func (c *Command[R]) Name() string { return c.name }

// Path returns the words of the command's name.
func (c *Command[R]) Path() []string { return strings.Fields(c.name) }

// Aliases returns alternative names for the last word of the path.
func (c *Command[R]) Aliases() []string { return slices.Clone(c.settings.aliases) }

// Summary returns the one-line description.
func (c *Command[R]) Summary() string { return c.settings.summary }

// Description returns the long description.
func (c *Command[R]) Description() string { return c.settings.description }

// PermissionKey returns the permission a sender needs to run the
// command. The engine never checks it; dispatch code does.
func (c *Command[R]) PermissionKey() string { return c.settings.permission }

// Parameters returns the command's registry.
func (c *Command[R]) Parameters() *parameter.Registry { return c.parameters }

// ParameterMap returns the declared parameters keyed by name. The map
// is a copy; use Parameters().All() for declaration order.
func (c *Command[R]) ParameterMap() map[string]*parameter.Descriptor {
	return c.parameters.Map()
}

// Execute runs the command once as s with the raw arguments args.
//
// Every key of args must be a descriptor declared by this command,
// otherwise a [*ForeignParameterError] is returned and nothing is
// bound. Required parameters that are neither supplied nor defaulted
// produce a [*MissingParameterError]. Values are then coerced into a
// fresh [Invocation]; a [*parameter.TypeMismatchError] aborts the call.
// The body runs exactly once. The invocation is ended before Execute
// returns, whether the body succeeded, failed, or panicked, so reads
// through it afterwards fail with [*InvocationStateError].
func (c *Command[R]) Execute(ctx context.Context, s sender.Sender, args map[*parameter.Descriptor]any) (result R, err error) {
	c.parameters.Freeze()

	if c.run == nil {
		return result, fmt.Errorf("command %q: %w", c.name, ErrNoHandler)
	}
	if err := c.validate(args); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	invocation := newInvocation(c.name, c.parameters, s, c.settings.clock.Now())
	ctx, span := c.settings.tracer.Start(ctx, "command.execute", trace.WithAttributes(
		attribute.String("command.name", c.name),
		attribute.String("command.invocation", invocation.ID().String()),
	))
	defer func() {
		invocation.end()
		if recovered := recover(); recovered != nil {
			c.finish(invocation, span, fmt.Errorf("command %q panicked: %v", c.name, recovered))
			panic(recovered)
		}
		c.finish(invocation, span, err)
	}()

	if err := invocation.bind(args); err != nil {
		return result, err
	}
	return c.run(ctx, invocation)
}

// Invoke is Execute with the result boxed as any.
func (c *Command[R]) Invoke(ctx context.Context, s sender.Sender, args map[*parameter.Descriptor]any) (any, error) {
	return c.Execute(ctx, s, args)
}

// validate rejects foreign descriptors and unbound required
// parameters.
func (c *Command[R]) validate(args map[*parameter.Descriptor]any) error {
	var foreign []string
	for descriptor := range args {
		if !c.parameters.Contains(descriptor) {
			foreign = append(foreign, descriptorName(descriptor))
		}
	}
	if len(foreign) > 0 {
		slices.Sort(foreign)
		return &ForeignParameterError{Command: c.name, Parameters: foreign}
	}

	for descriptor := range c.parameters.All() {
		if !descriptor.Required() || args[descriptor] != nil {
			continue
		}
		if value, ok := descriptor.Default(); ok && value != nil {
			continue
		}
		return &MissingParameterError{Command: c.name, Parameter: descriptor.Name()}
	}
	return nil
}

func (c *Command[R]) finish(invocation *Invocation, span trace.Span, err error) {
	duration := clock.Since(c.settings.clock, invocation.Started())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	c.settings.logger.Debug("command executed",
		"command", c.name,
		"invocation", invocation.ID().String(),
		"sender", senderName(invocation.Sender()),
		"duration", duration,
		"error", err,
	)
}

func descriptorName(d *parameter.Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return d.Name()
}

func senderName(s sender.Sender) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
