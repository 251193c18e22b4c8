// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commandtree dispatches words to commands.
//
// A [Tree] indexes [command.Runner] values by their path: a command
// named "config set" lives under the group "config". Lookup takes the
// longest matching prefix of the typed words, so trailing words are
// left for the command's own arguments. Children are kept in sorted
// order, which fixes the order of listings and completions.
//
// [Tree.Dispatch] is the permission gate in front of the engine: it
// resolves a path, checks the sender holds the command's permission,
// and maps already-typed arguments from parameter names onto
// descriptors. Turning argument text into typed values is left to the
// host. [NewHelp] is a help command built on the engine itself.
package commandtree
