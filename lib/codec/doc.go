// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the single CBOR configuration used for binary
// command manifests.
//
// Manifests are emitted as JSON and YAML for people and as CBOR for
// tools that cache or compare them. The encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): map keys are sorted, integers take their
// smallest form, and nothing is indefinite-length. The same manifest
// therefore always encodes to the same bytes, which is what makes the
// manifest fingerprint stable.
//
//	data, err := codec.Marshal(manifest)
//	err = codec.Unmarshal(data, &decoded)
//
// Manifest types carry `json` struct tags only. fxamacker/cbor falls
// back to `json` tags when no `cbor` tag is present, so one tag set
// governs field naming and omitempty in all three formats.
package codec
