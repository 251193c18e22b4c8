// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/paramkit/lib/codec"
	"github.com/bureau-foundation/paramkit/lib/manifest"
)

const (
	// TextFormat is the human-oriented output format.
	TextFormat = "text"

	// DiagnosticFormat prints the CBOR encoding in diagnostic
	// notation, for reading what --format cbor would write.
	DiagnosticFormat = "diag"
)

// OutputFormat is an embeddable struct that adds --format support to a
// command. Commands register the flag with [OutputFormat.AddFlag] and
// call [OutputFormat.Emit] before falling back to text rendering.
//
// Usage:
//
//	if done, err := output.Emit(stdout, entries); done {
//	    return err
//	}
//	// ... text formatting ...
type OutputFormat struct {
	Format string
}

// AddFlag registers --format on flagSet with fallback as the default.
func (o *OutputFormat) AddFlag(flagSet *pflag.FlagSet, fallback string) {
	flagSet.StringVar(&o.Format, "format", fallback, "output format: text, json, yaml, cbor, or diag")
}

// Emit writes result to w in the selected machine format. Returns
// (true, nil) on success, (true, err) on an unknown format or write
// failure, or (false, nil) when the format is text and the caller
// should proceed with text formatting.
//
// Nil slices are normalized to empty slices before serialization, so
// callers never need to guard against null output.
func (o *OutputFormat) Emit(w io.Writer, result any) (bool, error) {
	if o.Format == "" || o.Format == TextFormat {
		return false, nil
	}
	if o.Format == DiagnosticFormat {
		return true, writeDiagnostic(w, normalizeNilSlice(result))
	}
	format, err := manifest.ParseFormat(o.Format)
	if err != nil {
		return true, Validation("%w", err)
	}
	return true, manifest.Encode(w, format, normalizeNilSlice(result))
}

func writeDiagnostic(w io.Writer, result any) error {
	data, err := codec.Marshal(result)
	if err != nil {
		return Internal("encoding CBOR: %w", err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return Internal("diagnosing CBOR: %w", err)
	}
	_, err = fmt.Fprintln(w, notation)
	return err
}

// WriteJSON marshals value as indented JSON and writes it to w.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(normalizeNilSlice(value))
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that serialization produces [] instead of null.
// Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
