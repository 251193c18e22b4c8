// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/parameter"
	"github.com/bureau-foundation/paramkit/lib/sender"
)

func TestDispatch(t *testing.T) {
	f := newFixture(t)
	caller := sender.NewStatic("ada", "command.echo", "command.config.set")

	result, err := f.tree.Dispatch(context.Background(), caller, []string{"echo"}, map[string]any{
		"words":  []string{"hi", "there"},
		"upper":  true,
		"repeat": 2,
	})
	if err != nil {
		t.Fatalf("Dispatch(echo): %v", err)
	}
	if result != "HI THERE HI THERE" {
		t.Errorf("echo result = %q, want %q", result, "HI THERE HI THERE")
	}

	// Aliases resolve, and the default for repeat applies.
	result, err = f.tree.Dispatch(context.Background(), caller, []string{"config", "put"}, map[string]any{
		"key":     "region",
		"value":   "eu",
		"targets": []string{"a", "b", "a"},
	})
	if err != nil {
		t.Fatalf("Dispatch(config put): %v", err)
	}
	if result != "region=eu" {
		t.Errorf("config put result = %q, want %q", result, "region=eu")
	}
}

func TestDispatch_CamelCaseNames(t *testing.T) {
	tree := New()
	deploy := command.New[bool]("deploy")
	dryRun := command.Value[bool](deploy, "dryRun").MustBuild()
	deploy.Handle(func(ctx context.Context, inv *command.Invocation) (bool, error) {
		return dryRun.Get(inv)
	})
	if err := tree.Add(deploy); err != nil {
		t.Fatalf("Add: %v", err)
	}

	for _, name := range []string{"dryRun", "dry-run", "dry_run"} {
		result, err := tree.Dispatch(context.Background(), sender.NewStatic("ada", "*"), []string{"deploy"}, map[string]any{name: true})
		if err != nil || result != true {
			t.Errorf("Dispatch with %q = %v, %v, want true", name, result, err)
		}
	}
}

func TestDispatch_PermissionDenied(t *testing.T) {
	f := newFixture(t)
	ran := false
	f.get.Handle(func(ctx context.Context, inv *command.Invocation) (string, error) {
		ran = true
		return "", nil
	})

	caller := sender.NewStatic("mallory", "command.echo")
	_, err := f.tree.Dispatch(context.Background(), caller, []string{"config", "get"}, nil)

	var denied *PermissionError
	if !errors.As(err, &denied) {
		t.Fatalf("Dispatch error = %v, want *PermissionError", err)
	}
	if denied.Permission != "command.config.get" || denied.Sender != "mallory" {
		t.Errorf("PermissionError = %+v", denied)
	}
	if command.CodeOf(err) != command.PermissionDenied {
		t.Errorf("CodeOf = %q, want %q", command.CodeOf(err), command.PermissionDenied)
	}
	if ran {
		t.Error("body ran without permission")
	}
}

func TestDispatch_Errors(t *testing.T) {
	f := newFixture(t)
	caller := sender.NewStatic("ada", "*")
	ctx := context.Background()

	tests := []struct {
		name  string
		words []string
		args  map[string]any
		want  command.ErrorCode
	}{
		{"unknown command", []string{"deploy"}, nil, command.NotACommand},
		{"group only", []string{"config"}, nil, command.IncompleteCommand},
		{"trailing words", []string{"echo", "hello"}, nil, command.NotACommand},
		{"unknown parameter", []string{"echo"}, map[string]any{"loud": true}, command.InvalidParameter},
		{"wrong type", []string{"echo"}, map[string]any{"repeat": "two"}, command.InvalidArgument},
		{"missing required", []string{"config", "set"}, map[string]any{"value": "v"}, command.RequiredParameter},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.tree.Dispatch(ctx, caller, test.words, test.args)
			if got := command.CodeOf(err); got != test.want {
				t.Errorf("CodeOf(%v) = %q, want %q", err, got, test.want)
			}
		})
	}

	_, err := f.tree.Dispatch(ctx, caller, []string{"echo"}, map[string]any{"zeta": 1, "alpha": 2})
	var foreign *command.ForeignParameterError
	if !errors.As(err, &foreign) {
		t.Fatalf("error = %v, want *command.ForeignParameterError", err)
	}
	if !slices.Equal(foreign.Parameters, []string{"alpha", "zeta"}) {
		t.Errorf("foreign parameters = %v, want [alpha zeta]", foreign.Parameters)
	}

	var mismatch *parameter.TypeMismatchError
	_, err = f.tree.Dispatch(ctx, caller, []string{"echo"}, map[string]any{"repeat": int64(2)})
	if !errors.As(err, &mismatch) {
		t.Errorf("int64 for an int parameter: error = %v, want *parameter.TypeMismatchError", err)
	}
}

func TestDispatch_DuplicateSpellings(t *testing.T) {
	tree := New()
	deploy := command.New[bool]("deploy")
	dryRun := command.Value[bool](deploy, "dryRun").MustBuild()
	ran := false
	deploy.Handle(func(ctx context.Context, inv *command.Invocation) (bool, error) {
		ran = true
		return dryRun.Get(inv)
	})
	if err := tree.Add(deploy); err != nil {
		t.Fatalf("Add: %v", err)
	}

	for range 5 {
		_, err := tree.Dispatch(context.Background(), sender.NewStatic("ada", "*"), []string{"deploy"},
			map[string]any{"dryRun": true, "dry-run": false})
		var duplicate *DuplicateArgumentError
		if !errors.As(err, &duplicate) {
			t.Fatalf("error = %v, want *DuplicateArgumentError", err)
		}
		if got := command.CodeOf(err); got != command.InvalidParameter {
			t.Errorf("CodeOf = %q, want %q", got, command.InvalidParameter)
		}
		if !slices.Equal(duplicate.Names, []string{"dry-run", "dryRun"}) {
			t.Errorf("names = %v, want [dry-run dryRun]", duplicate.Names)
		}
		if duplicate.Parameter != "dryRun" {
			t.Errorf("parameter = %q, want dryRun", duplicate.Parameter)
		}
	}
	if ran {
		t.Error("body ran with duplicate spellings")
	}
}

func TestDispatch_NilSender(t *testing.T) {
	f := newFixture(t)
	_, err := f.tree.Dispatch(context.Background(), nil, []string{"echo"}, nil)
	if !errors.Is(err, ErrNoSender) {
		t.Fatalf("error = %v, want ErrNoSender", err)
	}
	if got := command.CodeOf(err); got != command.IncompatibleSender {
		t.Errorf("CodeOf = %q, want %q", got, command.IncompatibleSender)
	}
}
