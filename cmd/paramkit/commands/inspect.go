// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/paramkit/cmd/paramkit/cli"
	"github.com/bureau-foundation/paramkit/lib/manifest"
)

func listCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "list",
		Summary: "List catalog commands",
		Usage:   "paramkit list [--format text|json|yaml|cbor|diag]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			output.AddFlag(flagSet, env.Config.Output.Format)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("list takes no arguments, got %q", args[0])
			}
			var manifests []manifest.Command
			for runner := range env.Catalog.All() {
				manifests = append(manifests, manifest.Describe(runner))
			}
			if done, err := output.Emit(env.Stdout, manifests); done {
				return err
			}
			_, err := io.WriteString(env.Stdout, env.renderer().List(manifests))
			return err
		},
	}
}

func describeCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "describe",
		Summary: "Show a command's parameters",
		Usage:   "paramkit describe <command> [--format text|json|yaml|cbor|diag]",
		Examples: []cli.Example{
			{Description: "Describe a grouped command", Command: "paramkit describe math sum"},
			{Description: "Export one manifest as YAML", Command: "paramkit describe echo --format yaml"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("describe", pflag.ContinueOnError)
			output.AddFlag(flagSet, env.Config.Output.Format)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			runner, err := env.lookup(args)
			if err != nil {
				return err
			}
			described := manifest.Describe(runner)
			if done, err := output.Emit(env.Stdout, described); done {
				return err
			}
			_, err = io.WriteString(env.Stdout, env.renderer().Command(described))
			return err
		},
	}
}

func schemaCommand(env *Environment) *cli.Command {
	var output cli.OutputFormat
	return &cli.Command{
		Name:    "schema",
		Summary: "Print the JSON Schema of a command's inputs",
		Usage:   "paramkit schema <command> [--format json|yaml|cbor|diag]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("schema", pflag.ContinueOnError)
			output.AddFlag(flagSet, string(manifest.JSON))
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			runner, err := env.lookup(args)
			if err != nil {
				return err
			}
			if output.Format == cli.TextFormat {
				return cli.Validation("schema has no text form; use --format json, yaml, or cbor")
			}
			_, err = output.Emit(env.Stdout, manifest.InputSchema(runner.Parameters()))
			return err
		},
	}
}

func completeCommand(env *Environment) *cli.Command {
	return &cli.Command{
		Name:    "complete",
		Summary: "Print completions for a partial command line",
		Description: `Prints one candidate per line for the word after the given words:
subcommand names inside a group, then parameter suggestions and flag
spellings once the words name a command.`,
		Usage: "paramkit complete [--] [words...]",
		Examples: []cli.Example{
			{Description: "Flags and values for echo", Command: "paramkit complete -- echo hello"},
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			for _, candidate := range env.Catalog.Complete(args) {
				if _, err := fmt.Fprintln(env.Stdout, candidate); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
