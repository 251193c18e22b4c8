// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/paramkit/cmd/paramkit/cli"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

// dispatch runs a catalog command through the permission-checked
// dispatcher. In text mode the environment's sender receives the
// command's messages; in machine formats a silent sender stands in
// and the result is encoded instead.
func dispatch(ctx context.Context, env *Environment, output *cli.OutputFormat, words []string, args map[string]any) error {
	caller := env.Sender
	machine := output.Format != "" && output.Format != cli.TextFormat
	if machine {
		caller = sender.NewStatic(env.Sender.Name(), "*")
	}

	result, err := env.Catalog.Dispatch(ctx, caller, words, args)
	if err != nil {
		return cli.Categorize(err)
	}
	if machine {
		_, err := output.Emit(env.Stdout, result)
		return err
	}
	return nil
}

func usageCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "usage",
		Summary: "Run the catalog's help command",
		Description: `Runs the catalog's own "help" command, optionally restricted to a
command or group, and prints one usage line per command.`,
		Usage: "paramkit usage [command...] [--format text|json|yaml|cbor|diag]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("usage", pflag.ContinueOnError)
			output.AddFlag(flagSet, env.Config.Output.Format)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			var arguments map[string]any
			if len(args) > 0 {
				arguments = map[string]any{"command": strings.Join(args, " ")}
			}
			return dispatch(ctx, env, &output, []string{"help"}, arguments)
		},
	}
}

func whoamiCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "whoami",
		Summary: "Run the catalog's whoami command",
		Usage:   "paramkit whoami [--format text|json|yaml|cbor|diag]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			output.AddFlag(flagSet, env.Config.Output.Format)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("whoami takes no arguments, got %q", args[0])
			}
			return dispatch(ctx, env, &output, []string{"whoami"}, nil)
		},
	}
}

func versionCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			output.AddFlag(flagSet, cli.TextFormat)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			info := versionInfo()
			if done, err := output.Emit(env.Stdout, info); done {
				return err
			}
			_, err := io.WriteString(env.Stdout, "paramkit "+info.Full()+"\n")
			return err
		},
	}
}
