// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/paramkit/lib/command"
)

// ErrorCategory classifies tool errors so that scripts can make
// programmatic decisions (fix input, escalate) without parsing error
// message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// unknown flags, missing arguments, unparseable values. The caller
	// should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced command does not exist.
	// Retrying with the same arguments will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the caller lacks permission for the
	// requested operation.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, encoding errors. The caller should report the error
	// rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// exitCodes maps categories to process exit codes. Internal errors
// share the generic code 1.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryNotFound:   3,
	CategoryForbidden:  4,
	CategoryInternal:   1,
}

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata. Use the category-specific
// constructors (Validation, NotFound, etc.) or [Categorize] rather
// than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step printed after the message.
	Hint string
}

// Error returns the underlying error message, followed by the hint
// when there is one.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// ExitCode returns the process exit code for the category.
func (e *ToolError) ExitCode() int {
	if code, ok := exitCodes[e.Category]; ok {
		return code
	}
	return 1
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced command does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Categorize wraps err in a ToolError whose category follows the
// engine's [command.ErrorCode]. Errors that already carry a category
// and [ExitError]s are returned unchanged; nil stays nil.
func Categorize(err error) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	var exitErr *ExitError
	if errors.As(err, &toolErr) || errors.As(err, &exitErr) {
		return err
	}

	category := CategoryInternal
	switch command.CodeOf(err) {
	case command.NotACommand, command.IncompleteCommand:
		category = CategoryNotFound
	case command.InvalidArgument, command.InvalidParameter, command.RequiredParameter:
		category = CategoryValidation
	case command.PermissionDenied, command.IncompatibleSender:
		category = CategoryForbidden
	}
	return &ToolError{Category: category, Err: err}
}
