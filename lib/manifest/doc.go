// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest exports command declarations for tooling that
// cannot link against the commands themselves: shell completion
// generators, documentation builders, and bindings in other languages.
//
// [Describe] captures a command's metadata and ordered parameters.
// [InputSchema] renders the parameters as a JSON Schema object, the
// form agent tool catalogs expect. [Encode] writes either as JSON,
// YAML, or deterministic CBOR, and [Fingerprint] hashes the CBOR form
// so that consumers can detect when a command's interface changed.
//
// A manifest is read-only. Nothing in it can execute the command.
package manifest
