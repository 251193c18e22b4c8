// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bureau-foundation/paramkit/lib/config"
)

// NewCommandLogger creates a structured logger for CLI command
// operations from the log section of the configuration.
//
// Records go to stderr unless cfg.File is set, in which case they go
// to a size-rotated file. With format "auto", a terminal stderr gets
// slog.TextHandler for human-readable output; a pipe, redirect, or log
// file gets slog.JSONHandler for machine-parseable output.
//
// The returned closer releases the log file. It is a no-op for stderr.
func NewCommandLogger(cfg config.LogConfig, stderr *os.File) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	var (
		writer   io.Writer = stderr
		closer   io.Closer = nopCloser{}
		terminal           = term.IsTerminal(int(stderr.Fd()))
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		writer, closer, terminal = file, file, false
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch {
	case cfg.Format == "text", cfg.Format == "auto" && terminal:
		handler = slog.NewTextHandler(writer, options)
	default:
		handler = slog.NewJSONHandler(writer, options)
	}
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
