// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// ErrorCode identifies a class of command error so that hosts can
// react without parsing message text.
type ErrorCode string

const (
	// NotACommand means the requested command does not exist.
	NotACommand ErrorCode = "NOT_A_COMMAND"
	// IncompleteCommand means the command path stops at a group.
	IncompleteCommand ErrorCode = "INCOMPLETE_COMMAND"
	// InvalidArgument means a value does not fit its parameter.
	InvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// InvalidParameter means a parameter is unknown to the command or
	// declared twice.
	InvalidParameter ErrorCode = "INVALID_PARAMETER"
	// IncompatibleSender means the command cannot be used by this sender.
	IncompatibleSender ErrorCode = "INCOMPATIBLE_SENDER"
	// RequiredParameter means a required parameter was not supplied.
	RequiredParameter ErrorCode = "REQUIRED_PARAMETER"
	// PermissionDenied means the sender lacks the command's permission.
	PermissionDenied ErrorCode = "PERMISSION_DENIED"
	// InvalidState means a parameter was read outside its invocation.
	InvalidState ErrorCode = "INVALID_STATE"
)

var codeMessages = map[ErrorCode]string{
	NotACommand:        "Not a command",
	IncompleteCommand:  "Incomplete command",
	InvalidArgument:    "Invalid argument",
	InvalidParameter:   "Invalid parameter",
	IncompatibleSender: "You cannot use that command",
	RequiredParameter:  "Missing a required parameter",
	PermissionDenied:   "Permission denied",
	InvalidState:       "Parameter read outside its invocation",
}

// Message returns the human-readable description of the code.
func (c ErrorCode) Message() string {
	if message, ok := codeMessages[c]; ok {
		return message
	}
	return string(c)
}

// Coder is implemented by errors that carry an [ErrorCode].
type Coder interface {
	Code() ErrorCode
}

// CodeOf returns the code of the first error in err's chain that has
// one, or "" when none does. Parameter package errors are mapped too:
// duplicates to [InvalidParameter], type mismatches to
// [InvalidArgument].
func CodeOf(err error) ErrorCode {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.Code()
	}
	var duplicate *parameter.DuplicateParameterError
	if errors.As(err, &duplicate) {
		return InvalidParameter
	}
	var mismatch *parameter.TypeMismatchError
	if errors.As(err, &mismatch) {
		return InvalidArgument
	}
	return ""
}

// ErrNoHandler is returned by Execute when no execution body was set
// with Handle.
var ErrNoHandler = errors.New("command has no handler")

// ForeignParameterError rejects an invocation whose argument map
// contains descriptors that this command did not declare. No parameter
// is bound when it is returned.
type ForeignParameterError struct {
	Command    string
	Parameters []string
}

func (e *ForeignParameterError) Error() string {
	return fmt.Sprintf("command %q does not declare parameter(s) %s",
		e.Command, strings.Join(e.Parameters, ", "))
}

// Code returns [InvalidParameter].
func (e *ForeignParameterError) Code() ErrorCode { return InvalidParameter }

// MissingParameterError rejects an invocation that does not bind a
// parameter declared as required.
type MissingParameterError struct {
	Command   string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("command %q: missing required parameter %q", e.Command, e.Parameter)
}

// Code returns [RequiredParameter].
func (e *MissingParameterError) Code() ErrorCode { return RequiredParameter }

// InvocationStateError reports a parameter read with no live invocation:
// before any invocation, after it ended, or through another command's
// invocation. It signals a programming error in the execution body.
type InvocationStateError struct {
	Parameter string
	Reason    string
}

func (e *InvocationStateError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Parameter, e.Reason)
}

// Code returns [InvalidState].
func (e *InvocationStateError) Code() ErrorCode { return InvalidState }
