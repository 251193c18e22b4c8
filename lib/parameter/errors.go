// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a parameter name normalizes to the
	// empty string.
	ErrEmptyName = errors.New("parameter name is empty")

	// ErrNilType is returned when a descriptor is constructed without a
	// Type.
	ErrNilType = errors.New("parameter type is nil")

	// ErrFrozen is returned by [Registry.Register] after the owning
	// command has started executing.
	ErrFrozen = errors.New("parameter registry is frozen")

	// ErrAlreadyRegistered is returned when a descriptor that already
	// belongs to one registry is registered with another.
	ErrAlreadyRegistered = errors.New("parameter already belongs to another registry")
)

// DuplicateParameterError reports a second declaration of a parameter
// name within one registry. It is a configuration error raised while
// the command is being constructed, never during an invocation.
type DuplicateParameterError struct {
	Name string
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("a parameter named %q already exists", e.Name)
}

// TypeMismatchError reports a raw value whose runtime shape does not
// match the declared [Type]. Parameter is empty when the mismatch was
// detected by a bare Type rather than a [Descriptor].
type TypeMismatchError struct {
	Parameter string
	Want      string
	Got       string
}

func (e *TypeMismatchError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("parameter %q: expected %s, got %s", e.Parameter, e.Want, e.Got)
}

func mismatch(t Type, raw any) *TypeMismatchError {
	return &TypeMismatchError{Want: t.String(), Got: fmt.Sprintf("%T", raw)}
}
