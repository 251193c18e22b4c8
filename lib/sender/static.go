// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sender

import (
	"slices"
	"sync"
)

// Static is a sender with a fixed name and a fixed set of granted
// permission keys. It records every message it receives. Useful for
// embedding the engine in non-interactive hosts and in tests.
type Static struct {
	name    string
	granted map[string]bool
	all     bool

	mu       sync.Mutex
	messages []string
}

// NewStatic returns a Static sender named name holding the given
// permission keys. The key "*" grants everything.
func NewStatic(name string, granted ...string) *Static {
	s := &Static{name: name, granted: make(map[string]bool, len(granted))}
	for _, key := range granted {
		if key == "*" {
			s.all = true
		}
		s.granted[key] = true
	}
	return s
}

// Name returns the fixed name.
func (s *Static) Name() string { return s.name }

// SendMessage records text.
func (s *Static) SendMessage(text string) {
	s.mu.Lock()
	s.messages = append(s.messages, text)
	s.mu.Unlock()
}

// Messages returns a copy of every message received so far, in order.
func (s *Static) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// HasPermission reports whether key was granted.
func (s *Static) HasPermission(key string) bool {
	return s.all || s.granted[key]
}

// HasPermissionFor reports whether permission's key was granted.
func (s *Static) HasPermissionFor(permission Permission) bool {
	return s.HasPermission(permission.PermissionKey())
}
