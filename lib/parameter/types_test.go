// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
	"testing"
)

func TestScalar_Coerce(t *testing.T) {
	tests := []struct {
		name      string
		typ       Type
		raw       any
		want      any
		wantError bool
	}{
		{"string", Scalar[string](), "a", "a", false},
		{"int", Scalar[int](), 1, 1, false},
		{"float", Scalar[float64](), 0.5, 0.5, false},
		{"bool", Scalar[bool](), true, true, false},
		{"nil is absence", Scalar[int](), nil, nil, false},
		{"no int widening", Scalar[int64](), int32(7), nil, true},
		{"no int to float", Scalar[float64](), 1, nil, true},
		{"string for int", Scalar[int](), "1", nil, true},
		{"interface accepts implementation", Scalar[fmt.Stringer](), Shape(1), ShapeList, false},
		{"any accepts everything", Scalar[any](), []int{1}, nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.typ.Coerce(test.raw)
			if test.wantError {
				var mismatchErr *TypeMismatchError
				if !errors.As(err, &mismatchErr) {
					t.Fatalf("Coerce(%v): err = %v, want *TypeMismatchError", test.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Coerce(%v): %v", test.raw, err)
			}
			if test.name == "any accepts everything" {
				if _, ok := got.([]int); !ok {
					t.Errorf("Coerce = %T, want []int", got)
				}
				return
			}
			if got != test.want {
				t.Errorf("Coerce(%v) = %v, want %v", test.raw, got, test.want)
			}
		})
	}
}

func TestList_PreservesOrderAndDuplicates(t *testing.T) {
	input := []string{"a", "b", "a"}
	for _, raw := range []any{input, List[string](input), []any{"a", "b", "a"}} {
		got, err := ListOf[string]().Coerce(raw)
		if err != nil {
			t.Fatalf("Coerce(%T): %v", raw, err)
		}
		list, ok := got.([]string)
		if !ok {
			t.Fatalf("Coerce(%T) = %T, want []string", raw, got)
		}
		if !slices.Equal(list, input) {
			t.Errorf("Coerce(%T) = %v, want %v", raw, list, input)
		}
	}
}

func TestList_Rejects(t *testing.T) {
	for _, raw := range []any{"a", []int{1}, []any{"a", 2}, map[string]struct{}{"a": {}}} {
		_, err := ListOf[string]().Coerce(raw)
		var mismatchErr *TypeMismatchError
		if !errors.As(err, &mismatchErr) {
			t.Errorf("Coerce(%#v): err = %v, want *TypeMismatchError", raw, err)
		}
	}
}

func TestSet_Deduplicates(t *testing.T) {
	inputs := []any{
		[]string{"a", "b", "a"},
		List[string]{"b", "a"},
		NewSet("a", "b"),
		map[string]struct{}{"a": {}, "b": {}},
		[]any{"a", "b", "b"},
	}
	for _, raw := range inputs {
		got, err := SetOf[string]().Coerce(raw)
		if err != nil {
			t.Fatalf("Coerce(%T): %v", raw, err)
		}
		set, ok := got.(Set[string])
		if !ok {
			t.Fatalf("Coerce(%T) = %T, want Set[string]", raw, got)
		}
		values := set.Values()
		sort.Strings(values)
		if !slices.Equal(values, []string{"a", "b"}) {
			t.Errorf("Coerce(%T) members = %v, want [a b]", raw, values)
		}
		if !set.Contains("a") || set.Contains("c") {
			t.Errorf("Contains misreports membership for %v", values)
		}
	}
}

func TestCollection_ReturnsSuppliedShape(t *testing.T) {
	listInput := []string{"a", "b", "a"}
	got, err := CollectionOf[string]().Coerce(listInput)
	if err != nil {
		t.Fatalf("Coerce(list): %v", err)
	}
	list, ok := got.(List[string])
	if !ok {
		t.Fatalf("Coerce(list) = %T, want List[string]", got)
	}
	if !slices.Equal(slices.Collect(list.All()), listInput) {
		t.Errorf("collection = %v, want %v", list, listInput)
	}
	if &list[0] != &listInput[0] {
		t.Error("collection should share the caller's backing array")
	}

	setInput := NewSet("a", "b")
	got, err = CollectionOf[string]().Coerce(setInput)
	if err != nil {
		t.Fatalf("Coerce(set): %v", err)
	}
	if _, ok := got.(Set[string]); !ok {
		t.Errorf("Coerce(set) = %T, want Set[string]", got)
	}

	mapInput := map[string]struct{}{"a": {}, "b": {}}
	got, err = CollectionOf[string]().Coerce(mapInput)
	if err != nil {
		t.Fatalf("Coerce(map): %v", err)
	}
	members, ok := got.(Collection[string])
	if !ok {
		t.Fatalf("Coerce(map) = %T, want a Collection[string]", got)
	}
	collected := slices.Sorted(members.All())
	if members.Len() != 2 || !slices.Equal(collected, []string{"a", "b"}) {
		t.Errorf("Coerce(map) = %v (len %d), want [a b]", collected, members.Len())
	}
	if plain := Plain(got); !reflect.DeepEqual(plain, []any{"a", "b"}) {
		t.Errorf("Plain(map collection) = %#v, want [a b]", plain)
	}

	if _, err := CollectionOf[string]().Coerce(map[string]bool{"a": true}); err == nil {
		t.Error("Coerce(map[string]bool) succeeded, want error")
	}
	if _, err := CollectionOf[string]().Coerce("a"); err == nil {
		t.Error("Coerce(scalar) succeeded, want error")
	}
}

func TestIterable_AcceptsSequences(t *testing.T) {
	want := []string{"a", "b", "a"}
	var sequence iter.Seq[string] = slices.Values(want)
	inputs := []any{
		want,
		List[string](want),
		[]any{"a", "b", "a"},
		sequence,
		func(yield func(string) bool) {
			for _, item := range want {
				if !yield(item) {
					return
				}
			}
		},
	}

	for _, raw := range inputs {
		got, err := IterableOf[string]().Coerce(raw)
		if err != nil {
			t.Fatalf("Coerce(%T): %v", raw, err)
		}
		seq, ok := got.(iter.Seq[string])
		if !ok {
			t.Fatalf("Coerce(%T) = %T, want iter.Seq[string]", raw, got)
		}
		if collected := slices.Collect(seq); !slices.Equal(collected, want) {
			t.Errorf("Coerce(%T) yielded %v, want %v", raw, collected, want)
		}
	}

	for _, raw := range []any{NewSet("x"), map[string]struct{}{"x": {}}} {
		got, err := IterableOf[string]().Coerce(raw)
		if err != nil {
			t.Fatalf("Coerce(%T): %v", raw, err)
		}
		if collected := slices.Collect(got.(iter.Seq[string])); !slices.Equal(collected, []string{"x"}) {
			t.Errorf("Coerce(%T) yielded %v, want [x]", raw, collected)
		}
	}
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ       Type
		want      string
		wantShape Shape
	}{
		{Scalar[int](), "int", ShapeScalar},
		{ListOf[string](), "[]string", ShapeList},
		{SetOf[string](), "set[string]", ShapeSet},
		{CollectionOf[float64](), "collection[float64]", ShapeCollection},
		{IterableOf[bool](), "iterable[bool]", ShapeIterable},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
		if got := test.typ.Shape(); got != test.wantShape {
			t.Errorf("%s: Shape() = %v, want %v", test.want, got, test.wantShape)
		}
	}
	if ShapeScalar.IsCollection() || !ShapeIterable.IsCollection() {
		t.Error("IsCollection misclassifies shapes")
	}
	if got := Shape(42).String(); got != "Shape(42)" {
		t.Errorf("Shape(42).String() = %q", got)
	}
}
