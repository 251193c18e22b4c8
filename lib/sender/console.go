// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sender

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleName is the name reported by [Console] senders.
const ConsoleName = "console"

// Console is the operator at a terminal. Messages are written to the
// underlying writer one per line. The operator holds every permission.
type Console struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{writer: w}
}

// Name returns [ConsoleName].
func (c *Console) Name() string { return ConsoleName }

// SendMessage writes text followed by a newline. Write errors are
// dropped: the console has nowhere else to report them.
func (c *Console) SendMessage(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.writer, text)
}

// HasPermission always returns true.
func (c *Console) HasPermission(string) bool { return true }

// HasPermissionFor always returns true.
func (c *Console) HasPermissionFor(Permission) bool { return true }
