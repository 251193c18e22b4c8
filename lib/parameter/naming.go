// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package parameter

import (
	"strings"
	"unicode"
)

// ID returns the canonical parameter identifier for name: camelCase
// words split, lower-cased, and joined with "-". "paramOne" becomes
// "param-one" and "HTTPServer" becomes "http-server". Names already in
// kebab or snake case keep their word boundaries.
func ID(name string) string {
	return strings.Join(splitWords(name), "-")
}

// DisplayName returns the human-readable form of name, with words
// separated by single spaces ("paramOne" becomes "param one").
func DisplayName(name string) string {
	return strings.Join(splitWords(name), " ")
}

// splitWords breaks name at separators ('-', '_', whitespace) and at
// camelCase boundaries. An upper-case rune starts a new word when it
// follows a lower-case rune or digit, or when it ends an acronym (the
// "S" in "HTTPServer").
func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			previous := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(previous) || unicode.IsDigit(previous) ||
				(unicode.IsUpper(previous) && nextIsLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}
