// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/paramkit/lib/codec"
)

type emitted struct {
	Name  string   `json:"name" yaml:"name" cbor:"name"`
	Words []string `json:"words" yaml:"words" cbor:"words"`
}

func TestOutputFormat_AddFlag(t *testing.T) {
	var output OutputFormat
	flagSet := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	output.AddFlag(flagSet, "json")

	if output.Format != "json" {
		t.Errorf("default Format = %q, want json", output.Format)
	}
	if err := flagSet.Parse([]string{"--format", "yaml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if output.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", output.Format)
	}
}

func TestOutputFormat_Emit(t *testing.T) {
	value := emitted{Name: "echo", Words: []string{"a", "b"}}

	t.Run("text", func(t *testing.T) {
		for _, format := range []string{"", TextFormat} {
			var buffer bytes.Buffer
			output := OutputFormat{Format: format}
			done, err := output.Emit(&buffer, value)
			if done || err != nil {
				t.Errorf("Emit(%q) = %v, %v, want false, nil", format, done, err)
			}
			if buffer.Len() != 0 {
				t.Errorf("Emit(%q) wrote %q", format, buffer.String())
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buffer bytes.Buffer
		output := OutputFormat{Format: "json"}
		done, err := output.Emit(&buffer, value)
		if !done || err != nil {
			t.Fatalf("Emit = %v, %v", done, err)
		}
		want := "{\n  \"name\": \"echo\",\n  \"words\": [\n    \"a\",\n    \"b\"\n  ]\n}\n"
		if buffer.String() != want {
			t.Errorf("output = %q, want %q", buffer.String(), want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buffer bytes.Buffer
		output := OutputFormat{Format: "YAML"}
		if done, err := output.Emit(&buffer, value); !done || err != nil {
			t.Fatalf("Emit = %v, %v", done, err)
		}
		want := "name: echo\nwords:\n  - a\n  - b\n"
		if buffer.String() != want {
			t.Errorf("output = %q, want %q", buffer.String(), want)
		}
	})

	t.Run("cbor", func(t *testing.T) {
		var buffer bytes.Buffer
		output := OutputFormat{Format: "cbor"}
		if done, err := output.Emit(&buffer, value); !done || err != nil {
			t.Fatalf("Emit = %v, %v", done, err)
		}
		var decoded emitted
		if err := codec.Unmarshal(buffer.Bytes(), &decoded); err != nil {
			t.Fatalf("codec.Unmarshal: %v", err)
		}
		if decoded.Name != "echo" || len(decoded.Words) != 2 {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("diag", func(t *testing.T) {
		var buffer bytes.Buffer
		output := OutputFormat{Format: DiagnosticFormat}
		if done, err := output.Emit(&buffer, value); !done || err != nil {
			t.Fatalf("Emit = %v, %v", done, err)
		}
		want := `{"name": "echo", "words": ["a", "b"]}` + "\n"
		if buffer.String() != want {
			t.Errorf("output = %q, want %q", buffer.String(), want)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		output := OutputFormat{Format: "toml"}
		done, err := output.Emit(&bytes.Buffer{}, value)
		if !done || err == nil {
			t.Fatalf("Emit = %v, %v, want true and an error", done, err)
		}
		var toolErr *ToolError
		if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
			t.Errorf("error = %#v, want validation ToolError", err)
		}
	})
}

func TestEmit_NilSliceIsEmptyArray(t *testing.T) {
	var names []string

	var buffer bytes.Buffer
	output := OutputFormat{Format: "json"}
	if _, err := output.Emit(&buffer, names); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("output = %q, want []", buffer.String())
	}

	buffer.Reset()
	if err := WriteJSON(&buffer, names); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("WriteJSON output = %q, want []", buffer.String())
	}
}
