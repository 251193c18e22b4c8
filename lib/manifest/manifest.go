// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"reflect"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// Command is the exported form of one command.
type Command struct {
	Name        string      `json:"name" yaml:"name"`
	Path        []string    `json:"path" yaml:"path"`
	Aliases     []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Summary     string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Usage       string      `json:"usage" yaml:"usage"`
	Permission  string      `json:"permission" yaml:"permission"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Parameter is the exported form of one parameter descriptor.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Shape is "scalar", "list", "set", "collection", or "iterable".
	Shape string `json:"shape" yaml:"shape"`

	// Type is the Go type string, such as "int" or "set[string]".
	Type string `json:"type" yaml:"type"`

	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Flags       []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	// Suggestions is evaluated when the manifest is built.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Describe captures runner's metadata. Parameters appear in
// declaration order.
func Describe(runner command.Runner) Command {
	manifest := Command{
		Name:        runner.Name(),
		Path:        runner.Path(),
		Aliases:     runner.Aliases(),
		Summary:     runner.Summary(),
		Description: runner.Description(),
		Usage:       runner.Usage(),
		Permission:  runner.PermissionKey(),
	}
	for descriptor := range runner.Parameters().All() {
		manifest.Parameters = append(manifest.Parameters, describeParameter(descriptor))
	}
	return manifest
}

func describeParameter(d *parameter.Descriptor) Parameter {
	described := Parameter{
		Name:        d.Name(),
		DisplayName: d.DisplayName(),
		Shape:       d.Shape().String(),
		Type:        d.Type().String(),
		Required:    d.Required(),
		Description: d.Description(),
		Suggestions: d.Suggestions(),
	}
	for _, flag := range d.Flags() {
		described.Flags = append(described.Flags, string(flag))
	}
	if value, ok := d.Default(); ok {
		described.Default = portable(value)
	}
	return described
}

// portable converts a default value into something every encoder
// renders the same way: basic kinds pass through, collections become
// []any, and anything else is rendered as text.
func portable(value any) any {
	switch plain := parameter.Plain(value).(type) {
	case nil:
		return nil
	case []any:
		items := make([]any, len(plain))
		for i, item := range plain {
			items[i] = portableScalar(item)
		}
		return items
	default:
		return portableScalar(plain)
	}
}

func portableScalar(value any) any {
	if _, ok := value.(fmt.Stringer); ok {
		return fmt.Sprint(value)
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value
	}
	return fmt.Sprint(value)
}
