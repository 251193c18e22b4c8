// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"reflect"
	"slices"
	"strings"

	"github.com/bureau-foundation/paramkit/lib/command"
	"github.com/bureau-foundation/paramkit/lib/parameter"
)

// Complete returns candidates for the word that follows words. Inside
// a group it offers subcommand names; once words name a command it
// offers that command's parameter suggestions and flag spellings. A
// trailing flag that still expects a value narrows the candidates to
// that parameter's suggestions.
func (t *Tree) Complete(words []string) []string {
	if len(words) == 0 {
		return t.Children(nil)
	}

	runner, rest, err := t.Lookup(words)
	if err != nil {
		if command.CodeOf(err) == command.IncompleteCommand && len(rest) == 0 {
			return t.Children(words)
		}
		return nil
	}

	var candidates []string
	if len(rest) == 0 {
		candidates = append(candidates, t.Children(words)...)
	}

	state := scanWords(runner.Parameters(), rest)
	if state.pending != nil {
		return state.pending.Suggestions()
	}
	candidates = append(candidates, runner.CompletionSuggestions(state.named, state.flags, state.ordered, true)...)
	slices.Sort(candidates)
	return slices.Compact(candidates)
}

type wordState struct {
	named   []string
	flags   []rune
	ordered int

	// pending is the parameter whose flag was the last word and still
	// needs a value.
	pending *parameter.Descriptor
}

// scanWords classifies typed words without converting them: --name
// and -f words mark a parameter as named, a flag for a non-boolean
// parameter consumes the following word, and every other word fills
// the next positional parameter.
func scanWords(registry *parameter.Registry, words []string) wordState {
	var state wordState
	byFlag := make(map[rune]*parameter.Descriptor)
	for descriptor := range registry.All() {
		if flags := descriptor.Flags(); len(flags) > 0 {
			byFlag[flags[0]] = descriptor
		}
	}

	onlyPositional := false
	for i := 0; i < len(words); i++ {
		word := words[i]
		state.pending = nil
		switch {
		case onlyPositional || word == "-" || !strings.HasPrefix(word, "-"):
			state.ordered++
		case word == "--":
			onlyPositional = true
		case strings.HasPrefix(word, "--"):
			name, _, inline := strings.Cut(word[2:], "=")
			state.named = append(state.named, name)
			descriptor, ok := registry.Get(name)
			if ok && !inline && !isSwitch(descriptor) {
				if i+1 < len(words) {
					i++
				} else {
					state.pending = descriptor
				}
			}
		default:
			shorthands := []rune(word[1:])
			for j, flag := range shorthands {
				state.flags = append(state.flags, flag)
				descriptor, ok := byFlag[flag]
				if !ok || isSwitch(descriptor) {
					continue
				}
				if j < len(shorthands)-1 {
					break
				}
				if i+1 < len(words) {
					i++
				} else {
					state.pending = descriptor
				}
			}
		}
	}
	return state
}

// isSwitch reports whether d is a boolean scalar, whose flag takes no
// value word.
func isSwitch(d *parameter.Descriptor) bool {
	return d.Shape() == parameter.ShapeScalar && d.Type().Elem().Kind() == reflect.Bool
}
