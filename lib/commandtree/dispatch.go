// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/parameter"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

// PermissionError rejects a dispatch whose sender lacks the command's
// permission. The command body does not run.
type PermissionError struct {
	Command    string
	Sender     string
	Permission string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s may not run %q (requires %s)", e.Sender, e.Command, e.Permission)
}

// Code returns [command.PermissionDenied].
func (e *PermissionError) Code() command.ErrorCode { return command.PermissionDenied }

// ErrNoSender rejects a dispatch made without a sender.
var ErrNoSender = &SenderError{Reason: "no sender"}

// SenderError rejects a dispatch whose sender cannot run commands at
// all. The command body does not run.
type SenderError struct {
	Reason string
}

func (e *SenderError) Error() string { return "cannot dispatch: " + e.Reason }

// Code returns [command.IncompatibleSender].
func (e *SenderError) Code() command.ErrorCode { return command.IncompatibleSender }

// DuplicateArgumentError rejects arguments that spell the same
// parameter more than once ("dryRun" and "dry-run").
type DuplicateArgumentError struct {
	Command   string
	Parameter string
	Names     []string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("%s: parameter %q given more than once as %s", e.Command, e.Parameter, strings.Join(e.Names, ", "))
}

// Code returns [command.InvalidParameter].
func (e *DuplicateArgumentError) Code() command.ErrorCode { return command.InvalidParameter }

// Dispatch runs the command at path words for s. Arguments are keyed
// by parameter name and must already carry their Go types; the
// command coerces shapes but never parses text.
//
// Words must name a command exactly: trailing words are a
// [command.NotACommand] [*LookupError]. A sender without the command's
// permission gets a [*PermissionError], and names the command does not
// declare get a [*command.ForeignParameterError]. Two names that
// spell the same parameter get a [*DuplicateArgumentError], and a nil
// sender gets [ErrNoSender]. In every failure case the body does not
// run.
func (t *Tree) Dispatch(ctx context.Context, s sender.Sender, words []string, args map[string]any) (any, error) {
	if s == nil {
		return nil, ErrNoSender
	}
	runner, rest, err := t.Lookup(words)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, &LookupError{Kind: command.NotACommand, Words: words}
	}

	if !s.HasPermissionFor(runner) {
		return nil, &PermissionError{
			Command:    runner.Name(),
			Sender:     s.Name(),
			Permission: runner.PermissionKey(),
		}
	}

	bound, err := descriptorArguments(runner, args)
	if err != nil {
		return nil, err
	}
	return runner.Invoke(ctx, s, bound)
}

func descriptorArguments(runner command.Runner, args map[string]any) (map[*parameter.Descriptor]any, error) {
	registry := runner.Parameters()
	bound := make(map[*parameter.Descriptor]any, len(args))
	spelled := make(map[*parameter.Descriptor]string, len(args))
	var unknown []string
	for _, name := range slices.Sorted(maps.Keys(args)) {
		descriptor, ok := registry.Get(parameter.ID(name))
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if first, seen := spelled[descriptor]; seen {
			return nil, &DuplicateArgumentError{
				Command:   runner.Name(),
				Parameter: descriptor.Name(),
				Names:     []string{first, name},
			}
		}
		spelled[descriptor] = name
		bound[descriptor] = args[name]
	}
	if len(unknown) > 0 {
		return nil, &command.ForeignParameterError{Command: runner.Name(), Parameters: unknown}
	}
	return bound, nil
}
