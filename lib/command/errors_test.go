// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain", errors.New("plain"), ""},
		{"foreign", &ForeignParameterError{Command: "c", Parameters: []string{"p"}}, InvalidParameter},
		{"missing", &MissingParameterError{Command: "c", Parameter: "p"}, RequiredParameter},
		{"state", fmt.Errorf("wrapped: %w", &InvocationStateError{Parameter: "p", Reason: "r"}), InvalidState},
		{"duplicate", &parameter.DuplicateParameterError{Name: "p"}, InvalidParameter},
		{"mismatch", fmt.Errorf("default value: %w", &parameter.TypeMismatchError{Parameter: "p"}), InvalidArgument},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CodeOf(test.err); got != test.want {
				t.Errorf("CodeOf() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestErrorCodeMessage(t *testing.T) {
	if got := PermissionDenied.Message(); got != "Permission denied" {
		t.Errorf("Message() = %q, want %q", got, "Permission denied")
	}
	if got := ErrorCode("CUSTOM").Message(); got != "CUSTOM" {
		t.Errorf("Message() = %q, want %q", got, "CUSTOM")
	}
}

func TestForeignParameterErrorMessage(t *testing.T) {
	err := &ForeignParameterError{Command: "deploy", Parameters: []string{"a", "b"}}
	want := `command "deploy" does not declare parameter(s) a, b`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
