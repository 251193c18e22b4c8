// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Paramkit is the command-line front end to the parameter engine. It
// inspects the built-in command catalog (list, describe, schema,
// manifest, complete) and runs catalog commands through the
// permission-checked dispatcher (usage, whoami).
//
// Configuration comes from --config or PARAMKIT_CONFIG; see package
// config for the file format and PARAMKIT_* overrides.
package main
