// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the paramkit CLI command tree. Every
// subcommand works against the [Environment] it is given, so tests can
// build a root over buffers and a fixed configuration.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/paramkit/cmd/paramkit/cli"
	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/commandtree"
	"github.com/bureau-foundation/paramkit/lib/config"
	"github.com/bureau-foundation/paramkit/lib/sender"
	"github.com/bureau-foundation/paramkit/lib/tui"
)

// Environment is everything a subcommand needs from the process.
type Environment struct {
	// Stdout receives command output.
	Stdout io.Writer

	// Config is the loaded, validated configuration.
	Config *config.Config

	// Logger is the command logger.
	Logger *slog.Logger

	// Catalog is the command tree being inspected.
	Catalog *commandtree.Tree

	// Sender is the identity catalog commands run as. Usually a
	// [sender.Console] writing to Stdout.
	Sender sender.Sender

	// Width is the terminal width of Stdout, or zero when Stdout is
	// not a terminal.
	Width int
}

// Root builds and returns the complete paramkit CLI command tree.
func Root(env *Environment) *cli.Command {
	return &cli.Command{
		Name: "paramkit",
		Description: `paramkit: typed command parameters and argument binding.

Inspect the built-in command catalog: list and describe commands,
export their manifests and input schemas, compute completions, and run
catalog commands through the permission-checked dispatcher.`,
		Usage: "paramkit [--config file] <command> [flags]",
		Subcommands: []*cli.Command{
			listCommand(env),
			describeCommand(env),
			schemaCommand(env),
			manifestCommand(env),
			completeCommand(env),
			usageCommand(env),
			whoamiCommand(env),
			versionCommand(env),
		},
	}
}

// renderer returns a terminal renderer for the environment's stdout.
func (env *Environment) renderer() *tui.Renderer {
	mode, err := tui.ParseColorMode(env.Config.Output.Color)
	if err != nil {
		mode = tui.ColorAuto
	}
	renderer := tui.NewRenderer(env.Stdout, mode, tui.DefaultTheme)
	renderer.SetWidth(env.Width)
	return renderer
}

// lookup resolves words to exactly one catalog command. Unknown names
// get a suggestion from the catalog's command names.
func (env *Environment) lookup(words []string) (command.Runner, error) {
	if len(words) == 0 {
		return nil, cli.Validation("a command path is required")
	}
	runner, rest, err := env.Catalog.Lookup(words)
	if err == nil && len(rest) > 0 {
		err = &commandtree.LookupError{Kind: command.NotACommand, Words: words}
	}
	if err != nil {
		toolErr := cli.NotFound("%w", err)
		if suggestion := cli.Closest(strings.Join(words, " "), env.Catalog.Names()); suggestion != "" {
			toolErr.WithHint(fmt.Sprintf("Did you mean %q?", suggestion))
		}
		return nil, toolErr
	}
	return runner, nil
}
