// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Plain converts a bound or default value into plain data for export:
// slices and lists become []any in order, sets become []any sorted by
// their formatted text, sequence functions are drained into []any, and
// everything else is returned unchanged. Used by help text and
// manifests, never by binding.
func Plain(value any) any {
	if value == nil {
		return nil
	}
	if exporter, ok := value.(interface{ plain() any }); ok {
		return exporter.plain()
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Slice, reflect.Array:
		if reflected.Kind() == reflect.Slice && reflected.IsNil() {
			return []any{}
		}
		items := make([]any, reflected.Len())
		for i := range items {
			items[i] = reflected.Index(i).Interface()
		}
		return items

	case reflect.Map:
		if reflected.Type().Elem() != reflect.TypeFor[struct{}]() {
			return value
		}
		items := make([]any, 0, reflected.Len())
		for _, key := range reflected.MapKeys() {
			items = append(items, key.Interface())
		}
		slices.SortFunc(items, func(a, b any) int {
			return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
		})
		return items

	case reflect.Func:
		return drain(reflected)
	}

	return value
}

// drain collects the elements of a func(func(E) bool) sequence.
func drain(sequence reflect.Value) any {
	sequenceType := sequence.Type()
	if sequenceType.NumIn() != 1 || sequenceType.NumOut() != 0 {
		return nil
	}
	yieldType := sequenceType.In(0)
	if yieldType.Kind() != reflect.Func || yieldType.NumIn() != 1 ||
		yieldType.NumOut() != 1 || yieldType.Out(0).Kind() != reflect.Bool {
		return nil
	}

	items := []any{}
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		items = append(items, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true)}
	})
	sequence.Call([]reflect.Value{yield})
	return items
}

// FormatValue renders a value for usage lines: collections are joined
// with commas, nil renders as the empty string.
func FormatValue(value any) string {
	switch plain := Plain(value).(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(plain))
		for i, item := range plain {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(plain)
	}
}
