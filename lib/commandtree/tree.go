// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/bureau-foundation/paramkit/lib/command"
)

// ErrEmptyPath is returned by [Tree.Add] for a command with no name.
var ErrEmptyPath = errors.New("command has an empty path")

// DuplicateCommandError is returned when a path or alias is already
// taken.
type DuplicateCommandError struct {
	Path string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Path)
}

// Code returns [command.InvalidParameter].
func (e *DuplicateCommandError) Code() command.ErrorCode { return command.InvalidParameter }

// LookupError reports words that do not resolve to a command.
type LookupError struct {
	// Kind is [command.NotACommand] or [command.IncompleteCommand].
	Kind command.ErrorCode

	// Words is the path that failed to resolve.
	Words []string

	// Subcommands lists the children of the group an incomplete path
	// stopped at.
	Subcommands []string
}

func (e *LookupError) Error() string {
	path := strings.Join(e.Words, " ")
	if e.Kind == command.IncompleteCommand {
		return fmt.Sprintf("%q needs a subcommand (%s)", path, strings.Join(e.Subcommands, ", "))
	}
	return fmt.Sprintf("%q is not a command", path)
}

// Code returns the lookup failure kind.
func (e *LookupError) Code() command.ErrorCode { return e.Kind }

type node struct {
	word     string
	runner   command.Runner
	children *btree.Map[string, *node]
	aliases  map[string]*node
}

func newNode(word string) *node {
	return &node{
		word:     word,
		children: btree.NewMap[string, *node](0),
		aliases:  make(map[string]*node),
	}
}

func (n *node) child(word string) *node {
	word = strings.ToLower(word)
	if child, ok := n.children.Get(word); ok {
		return child
	}
	return n.aliases[word]
}

func (n *node) childNames() []string {
	names := make([]string, 0, n.children.Len())
	n.children.Scan(func(word string, _ *node) bool {
		names = append(names, word)
		return true
	})
	return names
}

// Tree is a set of commands indexed by path. It is safe for concurrent
// use.
type Tree struct {
	mu   sync.RWMutex
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: newNode("")}
}

// Add indexes runner under its path, creating intermediate groups as
// needed. Aliases are registered beside the last path word.
func (t *Tree) Add(runner command.Runner) error {
	path := runner.Path()
	if len(path) == 0 {
		return ErrEmptyPath
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	parent := t.root
	for _, word := range path[:len(path)-1] {
		word = strings.ToLower(word)
		next, ok := parent.children.Get(word)
		if !ok {
			next = newNode(word)
			parent.children.Set(word, next)
		}
		parent = next
	}

	leafWord := strings.ToLower(path[len(path)-1])
	leaf, ok := parent.children.Get(leafWord)
	switch {
	case ok && leaf.runner != nil:
		return &DuplicateCommandError{Path: runner.Name()}
	case !ok:
		if _, taken := parent.aliases[leafWord]; taken {
			return &DuplicateCommandError{Path: runner.Name()}
		}
		leaf = newNode(leafWord)
	}

	for _, alias := range runner.Aliases() {
		alias = strings.ToLower(alias)
		if parent.child(alias) != nil {
			return &DuplicateCommandError{Path: strings.TrimSpace(strings.Join(path[:len(path)-1], " ") + " " + alias)}
		}
	}

	leaf.runner = runner
	parent.children.Set(leafWord, leaf)
	for _, alias := range runner.Aliases() {
		parent.aliases[strings.ToLower(alias)] = leaf
	}
	return nil
}

// Lookup resolves the longest prefix of words naming a command and
// returns it with the words that follow. A path that ends inside a
// group returns a [*LookupError] of kind [command.IncompleteCommand];
// anything else unresolved is [command.NotACommand].
func (t *Tree) Lookup(words []string) (command.Runner, []string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	current := t.root
	var found command.Runner
	depth, matched := 0, 0
	for _, word := range words {
		next := current.child(word)
		if next == nil {
			break
		}
		current = next
		matched++
		if next.runner != nil {
			found = next.runner
			depth = matched
		}
	}

	if found != nil {
		return found, words[depth:], nil
	}
	if matched > 0 {
		return nil, words[matched:], &LookupError{
			Kind:        command.IncompleteCommand,
			Words:       words[:matched],
			Subcommands: current.childNames(),
		}
	}
	return nil, words, &LookupError{Kind: command.NotACommand, Words: words[:min(1, len(words))]}
}

// All yields every command depth first, siblings in sorted order. The
// walk runs over a snapshot taken when iteration starts.
func (t *Tree) All() iter.Seq[command.Runner] {
	return func(yield func(command.Runner) bool) {
		for _, runner := range t.Commands() {
			if !yield(runner) {
				return
			}
		}
	}
}

// Commands returns every command depth first, siblings in sorted
// order.
func (t *Tree) Commands() []command.Runner {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var runners []command.Runner
	var walk func(n *node)
	walk = func(n *node) {
		if n.runner != nil {
			runners = append(runners, n.runner)
		}
		n.children.Scan(func(_ string, child *node) bool {
			walk(child)
			return true
		})
	}
	walk(t.root)
	return runners
}

// Names returns the full name of every command, in [Tree.Commands]
// order.
func (t *Tree) Names() []string {
	runners := t.Commands()
	names := make([]string, len(runners))
	for i, runner := range runners {
		names[i] = runner.Name()
	}
	return names
}

// Children returns the names and aliases available after words, for
// completing a partially typed path. It returns nil when words do not
// lead to a node.
func (t *Tree) Children(words []string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	current := t.root
	for _, word := range words {
		if current = current.child(word); current == nil {
			return nil
		}
	}
	names := current.childNames()
	for alias := range current.aliases {
		names = append(names, alias)
	}
	slices.Sort(names)
	return names
}
