// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sender

// Sender is the actor issuing a command.
type Sender interface {
	// Name identifies the sender for display and name-based
	// comparisons.
	Name() string

	// SendMessage delivers text to the sender. Fire-and-forget: it
	// must not fail for ordinary text.
	SendMessage(text string)

	// HasPermission reports whether the sender holds the permission
	// named by key. Pure query, no side effects.
	HasPermission(key string) bool

	// HasPermissionFor reports whether the sender holds permission.
	// Pure query, no side effects.
	HasPermissionFor(permission Permission) bool
}

// Permission is anything that can be granted to a sender. Commands
// implement it so that dispatch code can ask whether a sender may run
// them.
type Permission interface {
	PermissionKey() string
}

// Key is a Permission backed by a plain string.
type Key string

// PermissionKey returns the key itself.
func (k Key) PermissionKey() string { return string(k) }
