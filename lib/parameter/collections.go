// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Collection is the capability read by parameters declared with
// [CollectionOf]: a finite, re-iterable group of elements with a known
// size. The binder returns either a [List] or a [Set], whichever shape
// the caller supplied; bodies that need ordering or membership can
// type-switch on the concrete value.
type Collection[E any] interface {
	Len() int
	All() iter.Seq[E]
}

// List is an ordered sequence that may contain duplicates.
type List[E any] []E

// Len returns the number of elements.
func (l List[E]) Len() int { return len(l) }

// All yields the elements in order.
func (l List[E]) All() iter.Seq[E] { return slices.Values(l) }

// Set is an unordered collection of distinct elements. Iteration order
// is unspecified.
type Set[E comparable] map[E]struct{}

// NewSet returns a Set holding the distinct values of items.
func NewSet[E comparable](items ...E) Set[E] {
	set := make(Set[E], len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Len returns the number of distinct elements.
func (s Set[E]) Len() int { return len(s) }

// Contains reports whether item is a member of the set.
func (s Set[E]) Contains(item E) bool {
	_, ok := s[item]
	return ok
}

// All yields every member once, in no particular order.
func (s Set[E]) All() iter.Seq[E] { return maps.Keys(s) }

// Values returns the members as a slice in no particular order.
func (s Set[E]) Values() []E { return slices.Collect(maps.Keys(s)) }

// keySet adapts a map[E]struct{} to [Collection] when E is only known
// to be any, so the map cannot be converted to a [Set]. It shares the
// caller's map.
type keySet[E any] struct {
	keys reflect.Value
}

// asKeySet returns raw as a keySet when it is a map keyed by E with
// struct{} values.
func asKeySet[E any](raw any) (keySet[E], bool) {
	value := reflect.ValueOf(raw)
	if value.Kind() != reflect.Map ||
		value.Type().Key() != reflect.TypeFor[E]() ||
		value.Type().Elem() != reflect.TypeFor[struct{}]() {
		return keySet[E]{}, false
	}
	return keySet[E]{keys: value}, true
}

func (k keySet[E]) Len() int { return k.keys.Len() }

func (k keySet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		members := k.keys.MapRange()
		for members.Next() {
			if !yield(members.Key().Interface().(E)) {
				return
			}
		}
	}
}

// Contains reports whether item is a key of the map.
func (k keySet[E]) Contains(item E) bool {
	return k.keys.MapIndex(reflect.ValueOf(&item).Elem()).IsValid()
}

func (k keySet[E]) plain() any { return Plain(k.keys.Interface()) }

func (k keySet[E]) clone() any {
	return keySet[E]{keys: reflect.ValueOf(cloneValue(k.keys.Interface()))}
}

// cloneValue returns a shallow copy of slice and map values so that a
// stored default never shares storage with its caller or with a bound
// invocation. Other values are returned unchanged.
func cloneValue(value any) any {
	if cloner, ok := value.(interface{ clone() any }); ok {
		return cloner.clone()
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Slice:
		if reflected.IsNil() {
			return value
		}
		copied := reflect.MakeSlice(reflected.Type(), reflected.Len(), reflected.Len())
		reflect.Copy(copied, reflected)
		return copied.Interface()
	case reflect.Map:
		if reflected.IsNil() {
			return value
		}
		copied := reflect.MakeMapWithSize(reflected.Type(), reflected.Len())
		members := reflected.MapRange()
		for members.Next() {
			copied.SetMapIndex(members.Key(), members.Value())
		}
		return copied.Interface()
	}
	return value
}
