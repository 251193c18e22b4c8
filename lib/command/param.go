// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"iter"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// Declarer is anything parameters can be declared against. [Command]
// implements it; tests and hosts may supply their own registry holder.
type Declarer interface {
	Parameters() *parameter.Registry
}

// Builder accumulates the metadata of one parameter before it is
// registered. Obtain one from [Value], [List], [Set], [Collection], or
// [Iterable] and finish it with Build or MustBuild.
type Builder[T any] struct {
	declarer      Declarer
	name          string
	parameterType parameter.Type
	options       []parameter.Option
}

func newBuilder[T any](d Declarer, name string, parameterType parameter.Type) *Builder[T] {
	return &Builder[T]{declarer: d, name: name, parameterType: parameterType}
}

// Value declares a single value of type T.
func Value[T any](d Declarer, name string) *Builder[T] {
	return newBuilder[T](d, name, parameter.Scalar[T]())
}

// List declares an ordered []E; duplicates are preserved.
func List[E any](d Declarer, name string) *Builder[[]E] {
	return newBuilder[[]E](d, name, parameter.ListOf[E]())
}

// Set declares a deduplicated set of E. Slices supplied for it are
// collapsed.
func Set[E comparable](d Declarer, name string) *Builder[parameter.Set[E]] {
	return newBuilder[parameter.Set[E]](d, name, parameter.SetOf[E]())
}

// Collection declares a list or set of E, delivered in whichever form
// the caller supplied.
func Collection[E any](d Declarer, name string) *Builder[parameter.Collection[E]] {
	return newBuilder[parameter.Collection[E]](d, name, parameter.CollectionOf[E]())
}

// Iterable declares a finite sequence of E. The body may range over it
// once; sequences backed by a list or set may be ranged over again.
func Iterable[E any](d Declarer, name string) *Builder[iter.Seq[E]] {
	return newBuilder[iter.Seq[E]](d, name, parameter.IterableOf[E]())
}

// Default sets the value read when an invocation supplies none.
func (b *Builder[T]) Default(value T) *Builder[T] {
	b.options = append(b.options, parameter.WithDefault(value))
	return b
}

// Suggestions sets the completion source. It is evaluated lazily, each
// time suggestions are requested.
func (b *Builder[T]) Suggestions(provider func() []string) *Builder[T] {
	b.options = append(b.options, parameter.WithSuggestions(provider))
	return b
}

// Description sets the help text.
func (b *Builder[T]) Description(description string) *Builder[T] {
	b.options = append(b.options, parameter.WithDescription(description))
	return b
}

// Flags adds single-character aliases.
func (b *Builder[T]) Flags(flags ...rune) *Builder[T] {
	b.options = append(b.options, parameter.WithFlags(flags...))
	return b
}

// Required rejects invocations that bind no value and have no default
// to fall back on.
func (b *Builder[T]) Required() *Builder[T] {
	b.options = append(b.options, parameter.WithRequired())
	return b
}

// Build constructs the descriptor and registers it with the declarer.
// A name already taken in the registry yields a
// [*parameter.DuplicateParameterError].
func (b *Builder[T]) Build() (*Param[T], error) {
	descriptor, err := parameter.New(b.name, b.parameterType, b.options...)
	if err != nil {
		return nil, err
	}
	if err := b.declarer.Parameters().Register(descriptor); err != nil {
		return nil, err
	}
	return &Param[T]{descriptor: descriptor}, nil
}

// MustBuild is Build for declarations made while constructing a
// command, where a failure is a programming error. It panics with the
// error Build would have returned.
func (b *Builder[T]) MustBuild() *Param[T] {
	param, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("declaring parameter %q: %w", b.name, err))
	}
	return param
}

// Param is a typed handle on one declared parameter. Handles hold no
// per-invocation state; values are read through the [Invocation]
// passed to the execution body.
type Param[T any] struct {
	descriptor *parameter.Descriptor
}

// Descriptor returns the registered descriptor, the key under which
// hosts supply raw values.
func (p *Param[T]) Descriptor() *parameter.Descriptor { return p.descriptor }

// Name returns the descriptor's normalized name.
func (p *Param[T]) Name() string { return p.descriptor.Name() }

// Get returns the value bound in inv: the supplied value, else the
// default, else the zero value of T. It fails with
// [*InvocationStateError] when inv is nil, has ended, or belongs to
// another command.
func (p *Param[T]) Get(inv *Invocation) (T, error) {
	var zero T
	value, ok, err := inv.lookup(p.descriptor)
	if err != nil || !ok {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, &parameter.TypeMismatchError{
			Parameter: p.descriptor.Name(),
			Want:      p.descriptor.Type().String(),
			Got:       fmt.Sprintf("%T", value),
		}
	}
	return typed, nil
}

// MustGet is Get for execution bodies, where a failed read is a
// programming error. It panics with the error Get would have returned.
func (p *Param[T]) MustGet(inv *Invocation) T {
	value, err := p.Get(inv)
	if err != nil {
		panic(err)
	}
	return value
}

// IsSet reports whether inv binds a value for the parameter, supplied
// or defaulted. It is false for nil or ended invocations.
func (p *Param[T]) IsSet(inv *Invocation) bool {
	_, ok, err := inv.lookup(p.descriptor)
	return err == nil && ok
}
