// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding"
	"reflect"
	"time"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// Schema is the subset of JSON Schema needed to describe a command's
// inputs.
type Schema struct {
	// Type is "object", "string", "boolean", "integer", "number", or
	// "array".
	Type string `json:"type" yaml:"type"`

	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any                `json:"default,omitempty" yaml:"default,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`

	// UniqueItems is set for set-shaped parameters.
	UniqueItems bool `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	// Examples lists the parameter's suggestions. Suggestions are
	// hints, not a closed set, so they never become an enum.
	Examples []string `json:"examples,omitempty" yaml:"examples,omitempty"`

	// Format is a hint such as "duration" for [time.Duration] values.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// AdditionalProperties is false on the top-level object: a
	// property the command does not declare is a foreign parameter.
	AdditionalProperties *bool `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

var (
	durationType        = reflect.TypeFor[time.Duration]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// InputSchema describes the parameters of registry as a JSON Schema
// object. Property order follows the registry; required parameters
// without a default are listed in Required.
func InputSchema(registry *parameter.Registry) *Schema {
	closed := false
	schema := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, registry.Len()),
		AdditionalProperties: &closed,
	}
	for descriptor := range registry.All() {
		property := parameterSchema(descriptor)
		schema.Properties[descriptor.Name()] = property
		if descriptor.Required() && property.Default == nil {
			schema.Required = append(schema.Required, descriptor.Name())
		}
	}
	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}
	return schema
}

func parameterSchema(d *parameter.Descriptor) *Schema {
	element := elementSchema(d.Type().Elem())
	element.Examples = d.Suggestions()

	schema := element
	if d.Shape().IsCollection() {
		schema = &Schema{
			Type:        "array",
			Items:       element,
			UniqueItems: d.Shape() == parameter.ShapeSet,
		}
	}
	schema.Description = d.Description()
	if value, ok := d.Default(); ok {
		schema.Default = portable(value)
	}
	return schema
}

// elementSchema maps a Go element type onto a JSON Schema type.
// Types with a text form are strings; anything else the command-line
// parser cannot produce is left as an unconstrained string.
func elementSchema(elem reflect.Type) *Schema {
	if elem == durationType {
		return &Schema{Type: "string", Format: "duration"}
	}
	if elem.Implements(textMarshalerType) || reflect.PointerTo(elem).Implements(textUnmarshalerType) {
		return &Schema{Type: "string"}
	}
	switch elem.Kind() {
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	default:
		return &Schema{Type: "string"}
	}
}
