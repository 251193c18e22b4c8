// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"context"
	"slices"
	"strings"

	"github.com/bureau-foundation/paramkit/lib/command"
)

// Help is one line of a help listing.
type Help struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Summary string `json:"summary,omitempty"`
}

// String renders the entry the way it is sent to the sender.
func (h Help) String() string {
	if h.Summary == "" {
		return h.Usage
	}
	return h.Usage + "  " + h.Summary
}

// NewHelp returns a "help" command listing the commands of tree. Its
// optional "command" parameter restricts the listing to one command or
// group; the tree's names are offered as completions. Each entry is
// sent to the invoking sender as one line and returned.
//
// The help command is usually added to the tree it describes, in which
// case it lists itself.
func NewHelp(tree *Tree, options ...command.Option) *command.Command[[]Help] {
	options = append([]command.Option{
		command.WithSummary("Show available commands"),
		command.WithAliases("?"),
	}, options...)
	help := command.New[[]Help]("help", options...)

	path := command.Value[string](help, "command").
		Description("Command or group to describe").
		Suggestions(tree.Names).
		MustBuild()

	help.Handle(func(ctx context.Context, inv *command.Invocation) ([]Help, error) {
		prefix := strings.Fields(strings.ToLower(path.MustGet(inv)))

		var entries []Help
		for runner := range tree.All() {
			if !hasPrefix(runner.Path(), prefix) {
				continue
			}
			entries = append(entries, Help{
				Name:    runner.Name(),
				Usage:   runner.Usage(),
				Summary: runner.Summary(),
			})
		}
		if len(prefix) > 0 && len(entries) == 0 {
			return nil, &LookupError{Kind: command.NotACommand, Words: prefix}
		}

		if s := inv.Sender(); s != nil {
			for _, entry := range entries {
				s.SendMessage(entry.String())
			}
		}
		return entries, nil
	})
	return help
}

func hasPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	return slices.EqualFunc(path[:len(prefix)], prefix, strings.EqualFold)
}
