// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"slices"
	"strings"

	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// CompletionSuggestions returns candidates for the next argument of a
// partially typed invocation. named holds parameter names already
// given as --name, flags the single-character flags already given, and
// ordered the number of positional arguments typed so far. Parameters
// used by name or flag are skipped, the first ordered remaining ones
// are taken as filled positionally, and the next one contributes its
// suggestions. With includeFlags, the --name and -f spellings of every
// remaining parameter are offered too.
func (c *Command[R]) CompletionSuggestions(named []string, flags []rune, ordered int, includeFlags bool) []string {
	var unused []*parameter.Descriptor
	for descriptor := range c.parameters.All() {
		if slices.Contains(named, descriptor.Name()) {
			continue
		}
		if slices.ContainsFunc(descriptor.Flags(), func(flag rune) bool {
			return slices.Contains(flags, flag)
		}) {
			continue
		}
		unused = append(unused, descriptor)
	}
	unused = unused[min(max(ordered, 0), len(unused)):]

	var suggestions []string
	if len(unused) > 0 {
		suggestions = append(suggestions, unused[0].Suggestions()...)
	}
	if includeFlags {
		for _, descriptor := range unused {
			suggestions = append(suggestions, "--"+descriptor.Name())
			for _, flag := range descriptor.Flags() {
				suggestions = append(suggestions, "-"+string(flag))
			}
		}
	}

	slices.Sort(suggestions)
	return slices.Compact(suggestions)
}

// Usage returns a one-line synopsis: the command name followed by each
// parameter in declaration order. Required parameters are shown as
// <name>, defaulted ones as [name=value], and optional ones as [name].
// Collection shapes take a "..." suffix.
func (c *Command[R]) Usage() string {
	var builder strings.Builder
	builder.WriteString(c.name)
	for descriptor := range c.parameters.All() {
		builder.WriteByte(' ')
		builder.WriteString(usageToken(descriptor))
	}
	return builder.String()
}

func usageToken(d *parameter.Descriptor) string {
	name := d.Name()
	if d.Shape().IsCollection() {
		name += "..."
	}
	if value, ok := d.Default(); ok && value != nil {
		return "[" + name + "=" + parameter.FormatValue(value) + "]"
	}
	if d.Required() {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}
