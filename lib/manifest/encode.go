// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/paramkit/lib/codec"
)

// Format selects a manifest encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, YAML, CBOR}

// ParseFormat accepts a format name case-insensitively; "yml" is an
// alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}
	return "", fmt.Errorf("unknown manifest format %q (want json, yaml, or cbor)", name)
}

// Encode writes v to w in format. JSON is indented, YAML uses two-space
// indentation, and CBOR is deterministic.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case CBOR:
		return codec.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("unknown manifest format %q", format)
}

// Decode reads a manifest written by [Encode].
func Decode(data []byte, format Format, v any) error {
	switch format {
	case JSON:
		return json.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	case CBOR:
		return codec.Unmarshal(data, v)
	}
	return fmt.Errorf("unknown manifest format %q", format)
}
