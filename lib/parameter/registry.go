// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Registry is a command's ordered set of parameter descriptors, keyed
// by name. Declaration order is preserved. Descriptors are never
// removed; once [Registry.Freeze] is called no more can be added.
//
// Registration is expected to happen while the command is constructed,
// on one goroutine. Reads are safe from any goroutine.
type Registry struct {
	mutex       sync.RWMutex
	descriptors []*Descriptor
	byName      map[string]*Descriptor
	frozen      bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds d to the registry and records the registry as its
// owner. Returns [*DuplicateParameterError] when the name is taken,
// [ErrAlreadyRegistered] when d belongs to a different registry, and
// [ErrFrozen] after [Registry.Freeze].
func (r *Registry) Register(d *Descriptor) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	if d.owner != nil && d.owner != r {
		return ErrAlreadyRegistered
	}
	if _, exists := r.byName[d.name]; exists {
		return &DuplicateParameterError{Name: d.name}
	}

	d.owner = r
	r.descriptors = append(r.descriptors, d)
	r.byName[d.name] = d
	return nil
}

// Freeze rejects every later registration. Idempotent.
func (r *Registry) Freeze() {
	r.mutex.Lock()
	r.frozen = true
	r.mutex.Unlock()
}

// Frozen reports whether [Registry.Freeze] has been called.
func (r *Registry) Frozen() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.frozen
}

// Get returns the descriptor registered under name (normalized with
// [ID]).
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	d, ok := r.byName[ID(name)]
	return d, ok
}

// At returns the descriptor at declaration position index, or nil when
// index is out of range.
func (r *Registry) At(index int) *Descriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if index < 0 || index >= len(r.descriptors) {
		return nil
	}
	return r.descriptors[index]
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.descriptors)
}

// Contains reports whether d is owned by this registry.
func (r *Registry) Contains(d *Descriptor) bool {
	return d != nil && d.owner == r
}

// All yields the descriptors in declaration order. The sequence is
// lazy and may be iterated any number of times; each iteration sees
// the descriptors registered when it started.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		r.mutex.RLock()
		snapshot := r.descriptors[:len(r.descriptors):len(r.descriptors)]
		r.mutex.RUnlock()

		for _, d := range snapshot {
			if !yield(d) {
				return
			}
		}
	}
}

// Names returns the descriptor names in declaration order.
func (r *Registry) Names() []string {
	var names []string
	for d := range r.All() {
		names = append(names, d.name)
	}
	return names
}

// Map returns a new name-to-descriptor map. Modifying the map does not
// affect the registry.
func (r *Registry) Map() map[string]*Descriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return maps.Clone(r.byName)
}

// Descriptors returns the descriptors in declaration order as a new
// slice.
func (r *Registry) Descriptors() []*Descriptor {
	return slices.Collect(r.All())
}
