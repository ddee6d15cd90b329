// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package leet

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned when a substitution document cannot be turned
// into a Table.
var ErrInvalidTable = errors.New("invalid substitution table")

// Table maps a lowercase letter to its replacement characters.
// The zero value is an empty table.
type Table struct {
	subs map[rune][]rune
}

// Default returns the reference leetspeak table.
func Default() Table {
	return Table{subs: map[rune][]rune{
		'a': {'@', '4'},
		'e': {'3'},
		'i': {'1', '!'},
		'o': {'0'},
		's': {'$', '5'},
		't': {'7'},
	}}
}

// Replacements returns the characters that may replace r, in table order.
// A rune without an entry yields an empty slice.
func (t Table) Replacements(r rune) []rune {
	return slices.Clone(t.subs[r])
}

// Has reports whether r has at least one replacement.
func (t Table) Has(r rune) bool {
	return len(t.subs[r]) > 0
}

// Letters returns the configured letters in ascending order.
func (t Table) Letters() []rune {
	out := make([]rune, 0, len(t.subs))
	for r := range t.subs {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of configured letters.
func (t Table) Len() int { return len(t.subs) }

// FanOut returns how many replacements r has.
func (t Table) FanOut(r rune) int { return len(t.subs[r]) }

// With returns a copy of t where letter additionally maps to repl.
// Replacements already present for letter are not duplicated.
func (t Table) With(letter rune, repl ...rune) Table {
	next := make(map[rune][]rune, len(t.subs)+1)
	for k, v := range t.subs {
		next[k] = slices.Clone(v)
	}
	letter = unicode.ToLower(letter)
	for _, r := range repl {
		if !slices.Contains(next[letter], r) {
			next[letter] = append(next[letter], r)
		}
	}
	return Table{subs: next}
}

// String renders the table as "a=@4 e=3 ...".
func (t Table) String() string {
	var out []byte
	for i, r := range t.Letters() {
		if i > 0 {
			out = append(out, ' ')
		}
		out = utf8.AppendRune(out, r)
		out = append(out, '=')
		out = append(out, string(t.subs[r])...)
	}
	return string(out)
}

// Parse reads a YAML substitution document.
func Parse(data []byte) (Table, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	t := Table{subs: make(map[rune][]rune, len(raw))}
	for key, repls := range raw {
		letter, err := singleRune(key)
		if err != nil {
			return Table{}, fmt.Errorf("%w: key %q: %v", ErrInvalidTable, key, err)
		}
		letter = unicode.ToLower(letter)
		for _, s := range repls {
			r, err := singleRune(s)
			if err != nil {
				return Table{}, fmt.Errorf("%w: replacement %q for %q: %v", ErrInvalidTable, s, key, err)
			}
			if !slices.Contains(t.subs[letter], r) {
				t.subs[letter] = append(t.subs[letter], r)
			}
		}
	}
	return t, nil
}

// Load reads a YAML substitution document from path.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read substitution table: %w", err)
	}
	return Parse(data)
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("must be exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, errors.New("not valid UTF-8")
	}
	return r, nil
}
