// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package command binds raw invocation arguments to strongly-typed
// parameter handles and runs a command's execution body with them.
//
// A command is declared once, at construction time, by building
// parameter handles against it:
//
//	greet := command.New[string]("greet", command.WithSummary("Say hello"))
//	name := command.Value[string](greet, "name").Default("world").MustBuild()
//	loud := command.Value[bool](greet, "loud").Flags('l').MustBuild()
//	greet.Handle(func(ctx context.Context, inv *command.Invocation) (string, error) {
//		message := "hello " + name.MustGet(inv)
//		if loud.MustGet(inv) {
//			message = strings.ToUpper(message)
//		}
//		return message, nil
//	})
//
// Each handle wraps a [parameter.Descriptor] registered in the command's
// [parameter.Registry]. Hosts (a CLI parser, a chat dispatcher, a test)
// look descriptors up through [Command.Parameters], build a map from
// descriptor to raw value, and call [Command.Execute].
//
// Execute validates the map, coerces each value into its declared shape,
// and hands the body an [Invocation]. Handles read through the
// invocation they are given ([Param.Get]); there is no ambient "current
// invocation", so concurrent executions of the same command never see
// each other's values. The invocation is ended before Execute returns,
// on every path, and any later read through it fails with
// [*InvocationStateError].
//
// Errors carry an [ErrorCode] ([CodeOf]) so that hosts can map them to
// their own reporting without matching on message text.
package command
