// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/paramkit/cmd/paramkit/cli"
	"github.com/bureau-foundation/paramkit/lib/manifest"
)

type manifestParams struct {
	Format string
	Output string
	Check  string
}

func manifestCommand(env *Environment) *cli.Command {
	var params manifestParams
	return &cli.Command{
		Name:    "manifest",
		Summary: "Export fingerprinted manifests of every command",
		Description: `Writes one entry per catalog command: its manifest plus a BLAKE3
fingerprint of the manifest's canonical CBOR encoding. With --check,
compares the catalog against a previous export instead and exits 1 when
any fingerprint differs.`,
		Usage: "paramkit manifest [--format json|yaml|cbor] [--output file] [--check file]",
		Examples: []cli.Example{
			{Description: "Export to the configured manifests directory", Command: "paramkit manifest --output catalog.yaml"},
			{Description: "Fail CI when a command's parameters change", Command: "paramkit manifest --check catalog.yaml"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("manifest", pflag.ContinueOnError)
			flagSet.StringVar(&params.Format, "format", "", "json, yaml, or cbor (default: from --output extension, else json)")
			flagSet.StringVarP(&params.Output, "output", "o", "", "write to this file; a bare name goes to paths.manifests")
			flagSet.StringVar(&params.Check, "check", "", "compare against this export instead of writing")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("manifest takes no arguments, got %q", args[0])
			}
			entries, err := catalogEntries(env)
			if err != nil {
				return err
			}
			if params.Check != "" {
				return checkManifest(env, params.Check, entries)
			}
			return writeManifest(env, params, entries)
		},
	}
}

func catalogEntries(env *Environment) ([]manifest.Entry, error) {
	var entries []manifest.Entry
	for runner := range env.Catalog.All() {
		entry, err := manifest.NewEntry(manifest.Describe(runner))
		if err != nil {
			return nil, cli.Internal("%w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// formatFor picks the explicit format, else the one implied by path's
// extension, else JSON.
func formatFor(explicit, path string) (manifest.Format, error) {
	if explicit != "" {
		format, err := manifest.ParseFormat(explicit)
		if err != nil {
			return "", cli.Validation("%w", err)
		}
		return format, nil
	}
	if extension := strings.TrimPrefix(filepath.Ext(path), "."); extension != "" {
		if format, err := manifest.ParseFormat(extension); err == nil {
			return format, nil
		}
	}
	return manifest.JSON, nil
}

func writeManifest(env *Environment, params manifestParams, entries []manifest.Entry) error {
	format, err := formatFor(params.Format, params.Output)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	if err := manifest.Encode(&buffer, format, entries); err != nil {
		return cli.Internal("encoding manifest: %w", err)
	}
	if params.Output == "" {
		_, err := env.Stdout.Write(buffer.Bytes())
		return err
	}

	path := params.Output
	if filepath.Base(path) == path {
		if err := env.Config.EnsurePaths(); err != nil {
			return cli.Internal("%w", err)
		}
		path = filepath.Join(env.Config.Paths.Manifests, path)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return cli.Internal("writing manifest: %w", err)
	}
	env.Logger.Info("manifest written", "path", path, "format", string(format), "commands", len(entries))
	return nil
}

func checkManifest(env *Environment, path string, current []manifest.Entry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NotFound("reading manifest: %w", err)
	}
	format, err := formatFor("", path)
	if err != nil {
		return err
	}
	var previous []manifest.Entry
	if err := manifest.Decode(data, format, &previous); err != nil {
		return cli.Validation("decoding %s: %w", path, err)
	}

	drift := manifestDrift(previous, current)
	for _, line := range drift {
		fmt.Fprintln(env.Stdout, line)
	}
	if len(drift) > 0 {
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintf(env.Stdout, "%d commands match %s\n", len(current), path)
	return nil
}

// manifestDrift lists commands added, removed, or changed between two
// exports, in the current catalog's order followed by removals.
func manifestDrift(previous, current []manifest.Entry) []string {
	fingerprints := make(map[string]string, len(previous))
	for _, entry := range previous {
		fingerprints[entry.Name] = entry.Fingerprint
	}

	var drift []string
	for _, entry := range current {
		fingerprint, ok := fingerprints[entry.Name]
		switch {
		case !ok:
			drift = append(drift, "added:   "+entry.Name)
		case fingerprint != entry.Fingerprint:
			drift = append(drift, "changed: "+entry.Name)
		}
		delete(fingerprints, entry.Name)
	}
	for _, entry := range previous {
		if _, ok := fingerprints[entry.Name]; ok {
			drift = append(drift, "removed: "+entry.Name)
		}
	}
	return drift
}
