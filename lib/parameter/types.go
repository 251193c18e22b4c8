// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Shape is the container form a parameter binds to.
type Shape int

const (
	// ShapeScalar binds a single value of the declared type.
	ShapeScalar Shape = iota
	// ShapeList binds an ordered sequence, duplicates preserved.
	ShapeList
	// ShapeSet binds a deduplicated, unordered collection.
	ShapeSet
	// ShapeCollection binds any list or set, returned as supplied.
	ShapeCollection
	// ShapeIterable binds any finite sequence of elements.
	ShapeIterable
)

var shapeNames = [...]string{
	ShapeScalar:     "scalar",
	ShapeList:       "list",
	ShapeSet:        "set",
	ShapeCollection: "collection",
	ShapeIterable:   "iterable",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// IsCollection reports whether the shape binds more than one element.
func (s Shape) IsCollection() bool {
	return s != ShapeScalar
}

// Type describes how raw argument values are coerced into the value an
// execution body reads. Implementations are provided by [Scalar],
// [ListOf], [SetOf], [CollectionOf], and [IterableOf]; the generic
// constructor fixes the Go type of the coerced value.
type Type interface {
	// Shape returns the binding shape.
	Shape() Shape

	// Elem returns the element type: T for scalars, E for the
	// collection shapes.
	Elem() reflect.Type

	// String returns a short type name for help text and errors, such
	// as "int", "[]string", or "set[string]".
	String() string

	// Coerce converts an already-typed raw value into the declared
	// shape. A nil raw value is the absence value and coerces to nil.
	// Mismatches return a *TypeMismatchError.
	Coerce(raw any) (any, error)
}

type scalarType[T any] struct{}

// Scalar returns the Type of a single T. Raw values must be a T (or,
// when T is an interface, implement it).
func Scalar[T any]() Type { return scalarType[T]{} }

func (scalarType[T]) Shape() Shape { return ShapeScalar }
func (scalarType[T]) Elem() reflect.Type { return reflect.TypeFor[T]() }
func (t scalarType[T]) String() string { return t.Elem().String() }
func (t scalarType[T]) Coerce(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	value, ok := raw.(T)
	if !ok {
		return nil, mismatch(t, raw)
	}
	return value, nil
}

type listType[E any] struct{}

// ListOf returns the Type of an ordered []E. Accepted raw values are
// []E, [List], and []any whose items are all E.
func ListOf[E any]() Type { return listType[E]{} }

func (listType[E]) Shape() Shape { return ShapeList }
func (listType[E]) Elem() reflect.Type { return reflect.TypeFor[E]() }
func (t listType[E]) String() string { return "[]" + t.Elem().String() }
func (t listType[E]) Coerce(raw any) (any, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []E:
		return value, nil
	case List[E]:
		return []E(value), nil
	case []any:
		return fromAny[E](t, value)
	}
	return nil, mismatch(t, raw)
}

type setType[E comparable] struct{}

// SetOf returns the Type of a deduplicated [Set]. Accepted raw values
// are Set, map[E]struct{}, []E, [List], any [Collection] of E, and
// []any whose items are all E.
func SetOf[E comparable]() Type { return setType[E]{} }

func (setType[E]) Shape() Shape { return ShapeSet }
func (setType[E]) Elem() reflect.Type { return reflect.TypeFor[E]() }
func (t setType[E]) String() string { return "set[" + t.Elem().String() + "]" }
func (t setType[E]) Coerce(raw any) (any, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case Set[E]:
		return value, nil
	case map[E]struct{}:
		return Set[E](value), nil
	case []E:
		return NewSet(value...), nil
	case List[E]:
		return NewSet(value...), nil
	case Collection[E]:
		set := make(Set[E], value.Len())
		for item := range value.All() {
			set[item] = struct{}{}
		}
		return set, nil
	case []any:
		items, err := fromAny[E](t, value)
		if err != nil {
			return nil, err
		}
		return NewSet(items...), nil
	}
	return nil, mismatch(t, raw)
}

type collectionType[E any] struct{}

// CollectionOf returns the Type of an abstract [Collection]. The binder
// does not force a concrete shape: slices come back as [List] sharing
// the caller's backing array, sets and other collections come back
// unchanged, and a plain map[E]struct{} comes back as a set-shaped
// Collection over the caller's map.
func CollectionOf[E any]() Type { return collectionType[E]{} }

func (collectionType[E]) Shape() Shape { return ShapeCollection }
func (collectionType[E]) Elem() reflect.Type { return reflect.TypeFor[E]() }
func (t collectionType[E]) String() string { return "collection[" + t.Elem().String() + "]" }
func (t collectionType[E]) Coerce(raw any) (any, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case Collection[E]:
		return value, nil
	case []E:
		return List[E](value), nil
	case []any:
		items, err := fromAny[E](t, value)
		if err != nil {
			return nil, err
		}
		return List[E](items), nil
	}
	if keys, ok := asKeySet[E](raw); ok {
		return keys, nil
	}
	return nil, mismatch(t, raw)
}

type iterableType[E any] struct{}

// IterableOf returns the Type of an abstract iter.Seq. Everything
// [CollectionOf] accepts is accepted, plus sequence functions, which
// are passed through without being consumed.
func IterableOf[E any]() Type { return iterableType[E]{} }

func (iterableType[E]) Shape() Shape { return ShapeIterable }
func (iterableType[E]) Elem() reflect.Type { return reflect.TypeFor[E]() }
func (t iterableType[E]) String() string { return "iterable[" + t.Elem().String() + "]" }
func (t iterableType[E]) Coerce(raw any) (any, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case iter.Seq[E]:
		return value, nil
	case func(func(E) bool):
		return iter.Seq[E](value), nil
	case Collection[E]:
		return value.All(), nil
	case []E:
		return slices.Values(value), nil
	case []any:
		items, err := fromAny[E](t, value)
		if err != nil {
			return nil, err
		}
		return slices.Values(items), nil
	}
	if keys, ok := asKeySet[E](raw); ok {
		return keys.All(), nil
	}
	return nil, mismatch(t, raw)
}

// fromAny converts a []any whose items are all E into a []E.
func fromAny[E any](t Type, items []any) ([]E, error) {
	out := make([]E, len(items))
	for i, item := range items {
		typed, ok := item.(E)
		if !ok {
			return nil, &TypeMismatchError{
				Want: t.String(),
				Got:  fmt.Sprintf("%T at index %d", item, i),
			}
		}
		out[i] = typed
	}
	return out, nil
}
