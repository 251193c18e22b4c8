// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"

	"github.com/bureau-foundation/paramkit/cmd/paramkit/catalog"
	"github.com/bureau-foundation/paramkit/cmd/paramkit/cli"
	"github.com/bureau-foundation/paramkit/cmd/paramkit/commands"
	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/config"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

const tracerName = "github.com/bureau-foundation/paramkit/cmd/paramkit"

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like manifest --check)
		// return an ExitError with the desired exit code. Don't print a
		// redundant "error:" line for those.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var toolErr *cli.ToolError
		if errors.As(err, &toolErr) {
			os.Exit(toolErr.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	global := pflag.NewFlagSet("paramkit", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	configPath := global.String("config", "", "configuration file (default: $PARAMKIT_CONFIG)")
	help := global.BoolP("help", "h", false, "show help")
	if err := global.Parse(os.Args[1:]); err != nil {
		return cli.Validation("%w", err).WithHint("Run 'paramkit --help' for usage.")
	}
	args := global.Args()
	if *help {
		args = append([]string{"--help"}, args...)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, closer, err := cli.NewCommandLogger(cfg.Log, os.Stderr)
	if err != nil {
		return cli.Validation("%w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tracer trace.Tracer
	if cfg.Tracing.Enabled {
		provider := cli.NewTracerProvider(logger)
		defer provider.Shutdown(context.WithoutCancel(ctx))
		tracer = provider.Tracer(tracerName)
	}

	tree, err := catalog.New(command.WithLogger(logger), command.WithTracer(tracer))
	if err != nil {
		return cli.Internal("%w", err)
	}

	env := &commands.Environment{
		Stdout:  os.Stdout,
		Config:  cfg,
		Logger:  logger,
		Catalog: tree,
		Sender:  sender.NewConsole(os.Stdout),
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			env.Width = width
		}
	}

	return cli.Categorize(commands.Root(env).Execute(ctx, args))
}

// loadConfig loads the file named by --config, else PARAMKIT_CONFIG,
// else the defaults, and validates the result.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}
