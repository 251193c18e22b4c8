// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog is the built-in command set that paramkit inspects
// and runs. Each command exercises a different parameter shape so the
// catalog doubles as a reference for declaring commands.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/commandtree"
)

// New builds the catalog tree. options are applied to every command,
// which is how the CLI threads its logger, clock, and tracer through.
func New(options ...command.Option) (*commandtree.Tree, error) {
	tree := commandtree.New()
	runners := []command.Runner{
		commandtree.NewHelp(tree, options...),
		newEcho(options...),
		newWhoAmI(options...),
		newSum(options...),
		newWait(options...),
	}
	for _, runner := range runners {
		if err := tree.Add(runner); err != nil {
			return nil, fmt.Errorf("adding %q to the catalog: %w", runner.Name(), err)
		}
	}
	return tree, nil
}

func withDefaults(options []command.Option, defaults ...command.Option) []command.Option {
	return append(defaults, options...)
}

func newEcho(options ...command.Option) *command.Command[string] {
	echo := command.New[string]("echo", withDefaults(options,
		command.WithSummary("Repeat words back to the sender"),
		command.WithDescription(`
Joins the words with the separator, optionally upper-cases them, and
sends the line to the sender as many times as requested.`),
	)...)

	words := command.List[string](echo, "words").
		Description("Words to echo").
		Required().
		MustBuild()
	separator := command.Value[string](echo, "separator").
		Description("Text placed between words").
		Default(" ").
		MustBuild()
	upper := command.Value[bool](echo, "upper").
		Description("Upper-case the line").
		Flags('u').
		MustBuild()
	repeat := command.Value[int](echo, "repeat").
		Description("Number of times to send the line").
		Default(1).
		Flags('r').
		Suggestions(func() []string { return []string{"1", "2", "3"} }).
		MustBuild()

	echo.Handle(func(ctx context.Context, inv *command.Invocation) (string, error) {
		count := repeat.MustGet(inv)
		if count < 0 {
			return "", fmt.Errorf("repeat must not be negative, got %d", count)
		}
		line := strings.Join(words.MustGet(inv), separator.MustGet(inv))
		if upper.MustGet(inv) {
			line = strings.ToUpper(line)
		}
		for range count {
			inv.Sender().SendMessage(line)
		}
		return line, nil
	})
	return echo
}

// Identity is the result of the whoami command.
type Identity struct {
	Sender     string    `json:"sender" yaml:"sender"`
	Invocation string    `json:"invocation" yaml:"invocation"`
	Started    time.Time `json:"started" yaml:"started"`
}

func newWhoAmI(options ...command.Option) *command.Command[Identity] {
	whoami := command.New[Identity]("whoami", withDefaults(options,
		command.WithSummary("Show the invoking sender"),
	)...)
	whoami.Handle(func(ctx context.Context, inv *command.Invocation) (Identity, error) {
		identity := Identity{
			Sender:     inv.Sender().Name(),
			Invocation: inv.ID().String(),
			Started:    inv.Started(),
		}
		inv.Sender().SendMessage(identity.Sender)
		return identity, nil
	})
	return whoami
}

func newSum(options ...command.Option) *command.Command[int] {
	sum := command.New[int]("math sum", withDefaults(options,
		command.WithSummary("Add integers"),
		command.WithAliases("add"),
	)...)
	numbers := command.Iterable[int](sum, "numbers").
		Description("Integers to add").
		Required().
		MustBuild()
	sum.Handle(func(ctx context.Context, inv *command.Invocation) (int, error) {
		total := 0
		for number := range numbers.MustGet(inv) {
			total += number
		}
		inv.Sender().SendMessage(fmt.Sprint(total))
		return total, nil
	})
	return sum
}

func newWait(options ...command.Option) *command.Command[time.Duration] {
	wait := command.New[time.Duration]("wait", withDefaults(options,
		command.WithSummary("Pause for a duration"),
		command.WithDescription("Waits for the duration or until the invocation is canceled."),
		command.WithPermission("catalog.wait"),
	)...)
	duration := command.Value[time.Duration](wait, "duration").
		Description("How long to wait").
		Default(time.Second).
		Suggestions(func() []string { return []string{"100ms", "1s", "5s"} }).
		MustBuild()
	wait.Handle(func(ctx context.Context, inv *command.Invocation) (time.Duration, error) {
		length := duration.MustGet(inv)
		timer := time.NewTimer(length)
		defer timer.Stop()
		select {
		case <-timer.C:
			return length, nil
		case <-ctx.Done():
			return time.Since(inv.Started()), ctx.Err()
		}
	})
	return wait
}
