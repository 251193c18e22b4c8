// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/commandtree"
)

func TestToolError_Error(t *testing.T) {
	err := NotFound("command %q not found", "ehco")
	if err.Error() != `command "ehco" not found` {
		t.Errorf("Error() = %q", err.Error())
	}

	err.WithHint("Did you mean \"echo\"?")
	want := "command \"ehco\" not found\n\nDid you mean \"echo\"?"
	if err.Error() != want {
		t.Errorf("Error() with hint = %q, want %q", err.Error(), want)
	}
}

func TestToolError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("reading catalog: %w", fs.ErrNotExist)
	err := Internal("manifest: %w", inner)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is did not find fs.ErrNotExist through the ToolError")
	}

	var wrapped error = fmt.Errorf("outer: %w", err)
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As did not find the ToolError")
	}
	if toolErr.Category != CategoryInternal {
		t.Errorf("Category = %q, want %q", toolErr.Category, CategoryInternal)
	}
}

func TestToolError_ExitCode(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want int
	}{
		{Validation("bad"), 2},
		{NotFound("missing"), 3},
		{Forbidden("denied"), 4},
		{Internal("broken"), 1},
		{&ToolError{Category: "unknown", Err: errors.New("x")}, 1},
	}
	for _, test := range tests {
		if got := test.err.ExitCode(); got != test.want {
			t.Errorf("%s ExitCode() = %d, want %d", test.err.Category, got, test.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{
			name: "not a command",
			err:  &commandtree.LookupError{Kind: command.NotACommand, Words: []string{"nope"}},
			want: CategoryNotFound,
		},
		{
			name: "incomplete command",
			err:  &commandtree.LookupError{Kind: command.IncompleteCommand, Words: []string{"math"}},
			want: CategoryNotFound,
		},
		{
			name: "missing parameter",
			err:  &command.MissingParameterError{Command: "math sum", Parameter: "numbers"},
			want: CategoryValidation,
		},
		{
			name: "foreign parameter",
			err:  &command.ForeignParameterError{Command: "echo", Parameters: []string{"colour"}},
			want: CategoryValidation,
		},
		{
			name: "permission denied",
			err:  &commandtree.PermissionError{Command: "wait", Sender: "guest", Permission: "catalog.wait"},
			want: CategoryForbidden,
		},
		{
			name: "wrapped code",
			err:  fmt.Errorf("dispatch: %w", &command.MissingParameterError{Command: "echo", Parameter: "words"}),
			want: CategoryValidation,
		},
		{
			name: "invalid state",
			err:  &command.InvocationStateError{Parameter: "words", Reason: "no invocation"},
			want: CategoryInternal,
		},
		{
			name: "plain error",
			err:  errors.New("disk full"),
			want: CategoryInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			categorized := Categorize(test.err)
			var toolErr *ToolError
			if !errors.As(categorized, &toolErr) {
				t.Fatalf("Categorize(%v) = %T, want *ToolError", test.err, categorized)
			}
			if toolErr.Category != test.want {
				t.Errorf("Category = %q, want %q", toolErr.Category, test.want)
			}
			if !errors.Is(categorized, test.err) {
				t.Error("categorized error does not wrap the original")
			}
		})
	}
}

func TestCategorize_PassThrough(t *testing.T) {
	if Categorize(nil) != nil {
		t.Error("Categorize(nil) != nil")
	}

	existing := Forbidden("no")
	if got := Categorize(existing); got != error(existing) {
		t.Errorf("Categorize(ToolError) = %v, want the same error", got)
	}

	exit := &ExitError{Code: 1}
	if got := Categorize(exit); got != error(exit) {
		t.Errorf("Categorize(ExitError) = %v, want the same error", got)
	}
}
