// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/paramkit/lib/codec"
)

// fingerprintDomainKey is the BLAKE3 key for manifest fingerprints:
// the ASCII domain name, zero-padded to 32 bytes. Changing it changes
// every fingerprint.
var fingerprintDomainKey = [32]byte{
	'p', 'a', 'r', 'a', 'm', 'k', 'i', 't', '.', 'm', 'a', 'n', 'i', 'f', 'e', 's',
	't', '.', 'v', '1', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns the hex BLAKE3 keyed hash of manifest's CBOR
// encoding. Two manifests have the same fingerprint exactly when they
// encode to the same bytes, so any change to a name, type, default,
// flag, or suggestion yields a new fingerprint.
func Fingerprint(manifest Command) (string, error) {
	data, err := codec.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("encoding manifest %q: %w", manifest.Name, err)
	}
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		return "", fmt.Errorf("initializing fingerprint hash: %w", err)
	}
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Entry pairs a manifest with its fingerprint, the unit written by
// catalog exports.
type Entry struct {
	Command     `yaml:",inline"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// NewEntry fingerprints manifest.
func NewEntry(manifest Command) (Entry, error) {
	fingerprint, err := Fingerprint(manifest)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Command: manifest, Fingerprint: fingerprint}, nil
}
