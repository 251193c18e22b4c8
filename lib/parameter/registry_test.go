// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"errors"
	"slices"
	"testing"
)

func mustDescriptor(t *testing.T, name string, parameterType Type, options ...Option) *Descriptor {
	t.Helper()
	d, err := New(name, parameterType, options...)
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	return d
}

func TestRegistry_DeclarationOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"zeta", "alpha", "middle", "beta"}
	for _, name := range names {
		if err := registry.Register(mustDescriptor(t, name, Scalar[string]())); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}

	if got := registry.Names(); !slices.Equal(got, names) {
		t.Errorf("Names() = %v, want %v", got, names)
	}
	if registry.Len() != len(names) {
		t.Errorf("Len() = %d, want %d", registry.Len(), len(names))
	}
	if got := registry.At(2).Name(); got != "middle" {
		t.Errorf("At(2) = %q, want %q", got, "middle")
	}
	if registry.At(-1) != nil || registry.At(len(names)) != nil {
		t.Error("At() out of range should return nil")
	}
}

func TestRegistry_AllIsRestartable(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		if err := registry.Register(mustDescriptor(t, name, Scalar[int]())); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}

	sequence := registry.All()
	first := slices.Collect(sequence)
	second := slices.Collect(sequence)
	if !slices.Equal(first, second) {
		t.Errorf("second iteration = %v, want %v", second, first)
	}

	// Early termination must not disturb later iterations.
	for d := range sequence {
		if d.Name() == "a" {
			break
		}
	}
	if count := len(slices.Collect(sequence)); count != 3 {
		t.Errorf("iteration after break yielded %d descriptors, want 3", count)
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(mustDescriptor(t, "paramOne", Scalar[string]())); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Different spelling, same normalized name.
	err := registry.Register(mustDescriptor(t, "param-one", Scalar[int]()))
	var duplicate *DuplicateParameterError
	if !errors.As(err, &duplicate) {
		t.Fatalf("Register duplicate: err = %v, want *DuplicateParameterError", err)
	}
	if duplicate.Name != "param-one" {
		t.Errorf("DuplicateParameterError.Name = %q, want %q", duplicate.Name, "param-one")
	}
	if registry.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", registry.Len())
	}
}

func TestRegistry_ForeignOwner(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()
	d := mustDescriptor(t, "shared", Scalar[string]())

	if err := first.Register(d); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := second.Register(d); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("Register into second registry: err = %v, want ErrAlreadyRegistered", err)
	}
	if !first.Contains(d) || second.Contains(d) {
		t.Error("descriptor should be contained only by its owner")
	}
	if d.Owner() != first {
		t.Error("Owner() should be the first registry")
	}
	if first.Contains(nil) {
		t.Error("Contains(nil) = true, want false")
	}
}

func TestRegistry_Freeze(t *testing.T) {
	registry := NewRegistry()
	registry.Freeze()
	registry.Freeze()
	if !registry.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	if err := registry.Register(mustDescriptor(t, "late", Scalar[bool]())); !errors.Is(err, ErrFrozen) {
		t.Errorf("Register after Freeze: err = %v, want ErrFrozen", err)
	}
}

func TestRegistry_GetAndMap(t *testing.T) {
	registry := NewRegistry()
	d := mustDescriptor(t, "outputFormat", Scalar[string]())
	if err := registry.Register(d); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, name := range []string{"output-format", "outputFormat"} {
		got, ok := registry.Get(name)
		if !ok || got != d {
			t.Errorf("Get(%q) = %v, %v; want descriptor, true", name, got, ok)
		}
	}
	if _, ok := registry.Get("missing"); ok {
		t.Error("Get(missing) found a descriptor")
	}

	view := registry.Map()
	delete(view, "output-format")
	if _, ok := registry.Get("output-format"); !ok {
		t.Error("deleting from Map() view removed the descriptor from the registry")
	}
}
