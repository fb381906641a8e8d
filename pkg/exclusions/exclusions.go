// Package exclusions parses the user-supplied exclusion list into a set
// of feed identifiers held out of both sides of a reconciliation run.
package exclusions

import (
	"os"
	"strings"
)

// Set is an immutable set of excluded feed identifiers. It is built
// once per run and applied identically to both sides of the diff.
type Set map[string]struct{}

// Parse builds a Set from the given input. The input is either a
// literal comma/whitespace-separated list of identifiers or a path to a
// file containing such a list. A readable file takes precedence: if the
// path opens successfully its contents are parsed instead of the
// literal string. An unreadable path falls back to literal parsing.
// Empty input yields an empty set.
func Parse(input string) Set {
	if input == "" {
		return Set{}
	}

	if data, err := os.ReadFile(input); err == nil {
		return parseList(string(data))
	}

	return parseList(input)
}

// parseList splits a list on commas and whitespace.
func parseList(s string) Set {
	set := Set{}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Contains reports whether the identifier is excluded.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of excluded identifiers.
func (s Set) Len() int {
	return len(s)
}
