// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"fmt"
	"reflect"
	"slices"
)

// Descriptor is the identity and metadata of one declared parameter.
// Descriptors are immutable once constructed; the owning registry is
// recorded exactly once, when the descriptor is registered.
type Descriptor struct {
	name          string
	displayName   string
	description   string
	parameterType Type
	defaultValue  any
	hasDefault    bool
	required      bool
	flags         []rune
	suggestions   func() []string

	owner *Registry
}

// Option configures a [Descriptor] during [New].
type Option func(*Descriptor)

// WithDefault sets the value used when an invocation supplies none.
// The value is coerced through the descriptor's Type when the
// descriptor is constructed, so a default of the wrong shape is a
// construction error.
func WithDefault(value any) Option {
	return func(d *Descriptor) {
		d.defaultValue = value
		d.hasDefault = true
	}
}

// WithSuggestions sets the completion source. The provider is only
// called by [Descriptor.Suggestions]; binding never invokes it.
func WithSuggestions(provider func() []string) Option {
	return func(d *Descriptor) { d.suggestions = provider }
}

// WithDescription sets the help text.
func WithDescription(description string) Option {
	return func(d *Descriptor) { d.description = description }
}

// WithFlags sets single-character flag aliases (-v for 'v').
func WithFlags(flags ...rune) Option {
	return func(d *Descriptor) { d.flags = append(d.flags, flags...) }
}

// WithRequired marks the parameter as required: an invocation that
// neither supplies a value nor has a default to fall back on is
// rejected before the execution body runs.
func WithRequired() Option {
	return func(d *Descriptor) { d.required = true }
}

// New constructs an unregistered descriptor. The name is normalized
// with [ID]. Returns [ErrEmptyName], [ErrNilType], or a wrapped
// [*TypeMismatchError] when the default does not fit the type.
func New(name string, parameterType Type, options ...Option) (*Descriptor, error) {
	id := ID(name)
	if id == "" {
		return nil, fmt.Errorf("%w (declared as %q)", ErrEmptyName, name)
	}
	if parameterType == nil {
		return nil, fmt.Errorf("parameter %q: %w", id, ErrNilType)
	}

	descriptor := &Descriptor{
		name:          id,
		displayName:   DisplayName(name),
		parameterType: parameterType,
	}
	for _, option := range options {
		option(descriptor)
	}

	if descriptor.hasDefault {
		coerced, err := descriptor.Coerce(cloneValue(descriptor.defaultValue))
		if err != nil {
			return nil, fmt.Errorf("default value: %w", err)
		}
		descriptor.defaultValue = coerced
	}

	return descriptor, nil
}

// Name returns the normalized identifier, unique within a registry.
func (d *Descriptor) Name() string { return d.name }

// DisplayName returns the space-separated human-readable name.
func (d *Descriptor) DisplayName() string { return d.displayName }

// Description returns the help text, possibly empty.
func (d *Descriptor) Description() string { return d.description }

// Type returns the declared type.
func (d *Descriptor) Type() Type { return d.parameterType }

// Shape is shorthand for d.Type().Shape().
func (d *Descriptor) Shape() Shape { return d.parameterType.Shape() }

// Default returns the coerced default value and whether one was
// declared. A declared default may itself be nil. List, set, and
// collection defaults are returned as fresh copies, so neither the
// declaring caller nor an execution body can change the stored value.
func (d *Descriptor) Default() (any, bool) {
	return cloneValue(d.defaultValue), d.hasDefault
}

// Required reports whether an invocation must bind a value.
func (d *Descriptor) Required() bool { return d.required }

// Flags returns a copy of the single-character flag aliases.
func (d *Descriptor) Flags() []rune { return slices.Clone(d.flags) }

// Owner returns the registry the descriptor was registered with, or
// nil if it has not been registered.
func (d *Descriptor) Owner() *Registry { return d.owner }

func (d *Descriptor) String() string { return d.name }

// Suggestions returns the sorted, distinct completion candidates. With
// no provider, boolean-typed parameters suggest "false" and "true" and
// everything else suggests nothing.
func (d *Descriptor) Suggestions() []string {
	var candidates []string
	switch {
	case d.suggestions != nil:
		candidates = d.suggestions()
	case d.parameterType.Elem().Kind() == reflect.Bool:
		candidates = []string{"false", "true"}
	}
	if len(candidates) == 0 {
		return nil
	}
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// Coerce applies the declared Type to raw, naming this parameter in any
// [*TypeMismatchError].
func (d *Descriptor) Coerce(raw any) (any, error) {
	value, err := d.parameterType.Coerce(raw)
	if err != nil {
		if mismatchErr, ok := err.(*TypeMismatchError); ok {
			named := *mismatchErr
			named.Parameter = d.name
			return nil, &named
		}
		return nil, fmt.Errorf("parameter %q: %w", d.name, err)
	}
	return value, nil
}
