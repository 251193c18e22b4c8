// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// run executes cmd once with args and fails the test on error.
func run[R any](t *testing.T, cmd *Command[R], args map[*parameter.Descriptor]any) R {
	t.Helper()
	result, err := cmd.Execute(context.Background(), tester(), args)
	if err != nil {
		t.Fatalf("Execute(%s): %v", cmd.Name(), err)
	}
	return result
}

func TestSet_DeduplicatesSlices(t *testing.T) {
	cmd := New[parameter.Set[string]]("tag")
	tags := Set[string](cmd, "tags").MustBuild()
	cmd.Handle(func(ctx context.Context, inv *Invocation) (parameter.Set[string], error) {
		return tags.Get(inv)
	})

	got := run(t, cmd, map[*parameter.Descriptor]any{tags.Descriptor(): []string{"a", "b", "a"}})
	if got.Len() != 2 || !got.Contains("a") || !got.Contains("b") {
		t.Errorf("set = %v, want {a, b}", got.Values())
	}

	got = run(t, cmd, map[*parameter.Descriptor]any{tags.Descriptor(): []any{"x", "x"}})
	if got.Len() != 1 || !got.Contains("x") {
		t.Errorf("set from []any = %v, want {x}", got.Values())
	}
}

func TestList_PreservesOrderAndDuplicates(t *testing.T) {
	cmd := New[[]int]("sum")
	values := List[int](cmd, "values").MustBuild()
	cmd.Handle(func(ctx context.Context, inv *Invocation) ([]int, error) {
		return values.Get(inv)
	})

	got := run(t, cmd, map[*parameter.Descriptor]any{values.Descriptor(): parameter.List[int]{3, 1, 3}})
	if want := []int{3, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}
}

func TestCollection_KeepsSuppliedShape(t *testing.T) {
	cmd := New[parameter.Collection[string]]("pick")
	items := Collection[string](cmd, "items").MustBuild()
	cmd.Handle(func(ctx context.Context, inv *Invocation) (parameter.Collection[string], error) {
		return items.Get(inv)
	})

	set := parameter.NewSet("a", "b")
	got := run(t, cmd, map[*parameter.Descriptor]any{items.Descriptor(): set})
	if _, ok := got.(parameter.Set[string]); !ok {
		t.Errorf("collection from set = %T, want parameter.Set[string]", got)
	}

	got = run(t, cmd, map[*parameter.Descriptor]any{items.Descriptor(): []string{"b", "a", "b"}})
	list, ok := got.(parameter.List[string])
	if !ok {
		t.Fatalf("collection from slice = %T, want parameter.List[string]", got)
	}
	if want := []string{"b", "a", "b"}; !slices.Equal(list, want) {
		t.Errorf("list = %v, want %v", list, want)
	}
}

func TestIterable_AcceptsSequencesAndCollections(t *testing.T) {
	cmd := New[[]string]("walk")
	items := Iterable[string](cmd, "items").MustBuild()
	cmd.Handle(func(ctx context.Context, inv *Invocation) ([]string, error) {
		sequence, err := items.Get(inv)
		if err != nil || sequence == nil {
			return nil, err
		}
		return slices.Collect(sequence), nil
	})

	inputs := []any{
		[]string{"a", "b"},
		parameter.List[string]{"a", "b"},
		slices.Values([]string{"a", "b"}),
		iter.Seq[string](func(yield func(string) bool) {
			_ = yield("a") && yield("b")
		}),
	}
	for _, input := range inputs {
		got := run(t, cmd, map[*parameter.Descriptor]any{items.Descriptor(): input})
		if want := []string{"a", "b"}; !slices.Equal(got, want) {
			t.Errorf("iterable from %T = %v, want %v", input, got, want)
		}
	}

	if got := run(t, cmd, nil); got != nil {
		t.Errorf("absent iterable = %v, want nil", got)
	}
}

func TestValue_InterfaceType(t *testing.T) {
	cmd := New[string]("fail")
	cause := Value[error](cmd, "cause").MustBuild()
	cmd.Handle(func(ctx context.Context, inv *Invocation) (string, error) {
		err := cause.MustGet(inv)
		if err == nil {
			return "none", nil
		}
		return err.Error(), nil
	})

	if got := run(t, cmd, map[*parameter.Descriptor]any{cause.Descriptor(): errors.New("disk full")}); got != "disk full" {
		t.Errorf("result = %q, want %q", got, "disk full")
	}
	if got := run(t, cmd, nil); got != "none" {
		t.Errorf("absent interface result = %q, want %q", got, "none")
	}
}

func TestBuild_DuplicateName(t *testing.T) {
	cmd := New[int]("dup")
	Value[string](cmd, "targetName").MustBuild()

	_, err := Value[int](cmd, "target-name").Build()
	var duplicate *parameter.DuplicateParameterError
	if !errors.As(err, &duplicate) {
		t.Fatalf("Build error = %v, want *parameter.DuplicateParameterError", err)
	}
	if CodeOf(err) != InvalidParameter {
		t.Errorf("CodeOf = %q, want %q", CodeOf(err), InvalidParameter)
	}
	if cmd.Parameters().Len() != 1 {
		t.Errorf("registry size = %d, want 1", cmd.Parameters().Len())
	}

	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.As(err, &duplicate) {
			t.Errorf("MustBuild panic = %v, want wrapped *parameter.DuplicateParameterError", recovered)
		}
	}()
	Value[int](cmd, "target_name").MustBuild()
}

func TestBuild_BadDefault(t *testing.T) {
	cmd := New[int]("bad")
	builder := &Builder[int]{declarer: cmd, name: "n", parameterType: parameter.Scalar[string]()}
	_, err := builder.Default(3).Build()
	var mismatch *parameter.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Build error = %v, want *parameter.TypeMismatchError", err)
	}
	if cmd.Parameters().Len() != 0 {
		t.Error("descriptor with a bad default was registered")
	}
}

func TestParameterMap(t *testing.T) {
	g := newGreeter()
	parameters := g.ParameterMap()
	if len(parameters) != 3 {
		t.Fatalf("ParameterMap size = %d, want 3", len(parameters))
	}
	if parameters["count"] != g.count.Descriptor() {
		t.Error("ParameterMap[count] is not the declared descriptor")
	}
	delete(parameters, "count")
	if _, ok := g.ParameterMap()["count"]; !ok {
		t.Error("ParameterMap exposes internal state")
	}
	if want := []string{"name", "count", "tags"}; !slices.Equal(g.Parameters().Names(), want) {
		t.Errorf("Names() = %v, want %v", g.Parameters().Names(), want)
	}
}
