// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bureau-foundation/paramkit/lib/parameter"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

// Invocation is one execution of a command: who sent it and the
// resolved value of every parameter. It is active only while the
// execution body runs.
type Invocation struct {
	id       uuid.UUID
	command  string
	registry *parameter.Registry
	sender   sender.Sender
	started  time.Time

	// values is written once by bind, before the body runs, and only
	// read afterwards. Absent parameters have no entry.
	values map[*parameter.Descriptor]any
	active atomic.Bool
}

func newInvocation(command string, registry *parameter.Registry, s sender.Sender, started time.Time) *Invocation {
	invocation := &Invocation{
		id:       uuid.Must(uuid.NewV7()),
		command:  command,
		registry: registry,
		sender:   s,
		started:  started,
		values:   make(map[*parameter.Descriptor]any, registry.Len()),
	}
	invocation.active.Store(true)
	return invocation
}

// ID returns the invocation's UUIDv7, which sorts by start time.
func (inv *Invocation) ID() uuid.UUID { return inv.id }

// Command returns the name of the command being executed.
func (inv *Invocation) Command() string { return inv.command }

// Sender returns the originator of the invocation.
func (inv *Invocation) Sender() sender.Sender { return inv.sender }

// Started returns when the invocation began, per the command's clock.
func (inv *Invocation) Started() time.Time { return inv.started }

// Active reports whether the execution body is still running.
func (inv *Invocation) Active() bool { return inv.active.Load() }

// SenderAs returns the invocation's sender as S, for bodies that need a
// sender-specific capability.
func SenderAs[S sender.Sender](inv *Invocation) (S, bool) {
	s, ok := inv.sender.(S)
	return s, ok
}

// bind coerces every supplied value and applies defaults. The first
// coercion failure is returned and leaves the invocation partially
// bound; the caller ends it regardless.
func (inv *Invocation) bind(args map[*parameter.Descriptor]any) error {
	for descriptor := range inv.registry.All() {
		if raw := args[descriptor]; raw != nil {
			value, err := descriptor.Coerce(raw)
			if err != nil {
				return err
			}
			if value != nil {
				inv.values[descriptor] = value
			}
			continue
		}
		if value, ok := descriptor.Default(); ok && value != nil {
			inv.values[descriptor] = value
		}
	}
	return nil
}

func (inv *Invocation) end() {
	inv.active.Store(false)
}

// lookup returns the bound value of d. It fails when the invocation is
// nil or ended, or was not created by d's command.
func (inv *Invocation) lookup(d *parameter.Descriptor) (any, bool, error) {
	if inv == nil {
		return nil, false, &InvocationStateError{Parameter: d.Name(), Reason: "no active invocation"}
	}
	if d.Owner() != inv.registry {
		return nil, false, &InvocationStateError{
			Parameter: d.Name(),
			Reason:    "invocation belongs to command " + strconv.Quote(inv.command),
		}
	}
	if !inv.active.Load() {
		return nil, false, &InvocationStateError{Parameter: d.Name(), Reason: "invocation has ended"}
	}
	value, ok := inv.values[d]
	return value, ok, nil
}
