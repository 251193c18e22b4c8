// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the paramkit tool.
//
// Configuration comes from at most one file, named by the
// PARAMKIT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. Without a file, [Load] starts from [Default].
//
// Files ending in .json or .jsonc are read as JSON with comments;
// everything else is YAML. The file may contain environment-specific
// sections (development, staging, production) that override base
// values when [Config].Environment matches. Production without its own
// section switches logs to JSON.
//
// A small set of PARAMKIT_* variables (PARAMKIT_ENVIRONMENT,
// PARAMKIT_ROOT, PARAMKIT_LOG_LEVEL, PARAMKIT_LOG_FORMAT,
// PARAMKIT_LOG_FILE, PARAMKIT_OUTPUT_FORMAT, PARAMKIT_COLOR,
// PARAMKIT_TRACING) is applied last, followed by ${HOME},
// ${PARAMKIT_ROOT}, and ${VAR:-default} expansion in path fields.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Log, Output, Tracing
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other paramkit packages.
package config
