// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package mutate

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/sets"
)

// Engine derives mutations of a single seed word from a substitution table.
// It keeps no state between calls and may be used concurrently.
type Engine struct {
	table leet.Table
}

// NewEngine returns an Engine using table.
func NewEngine(table leet.Table) *Engine {
	return &Engine{table: table}
}

// Table returns the substitution table in use.
func (e *Engine) Table() leet.Table { return e.table }

// lower returns the Unicode lowercase form of word. A cases.Caser carries
// state, so each call builds its own.
func lower(word string) string {
	return cases.Lower(language.Und).String(word)
}

// Variants returns word unchanged plus every single-position substitution of
// its lowercase form. The bare lowercase form is only present when it equals
// word or one of the substitutions.
func (e *Engine) Variants(word string) sets.Set[string] {
	out := sets.New(word)

	runes := []rune(lower(word))
	for i, c := range runes {
		for _, r := range e.table.Replacements(c) {
			variant := make([]rune, len(runes))
			copy(variant, runes)
			variant[i] = r
			out.Add(string(variant))
		}
	}
	return out
}

// ExpandWithYears returns word suffixed with each year in years.
// An empty or inverted range yields an empty set.
func (e *Engine) ExpandWithYears(word string, years YearRange) sets.Set[string] {
	out := make(sets.Set[string], years.Len())
	for yr := years.Start; yr < years.End; yr++ {
		out.Add(word + strconv.Itoa(yr))
	}
	return out
}

// Mutate returns every variant of word, alone and with every year suffix.
func (e *Engine) Mutate(word string, years YearRange) (sets.Set[string], error) {
	if err := years.Validate(); err != nil {
		return nil, err
	}
	out := make(sets.Set[string])
	e.MutateInto(out, word, years)
	return out, nil
}

// MutateInto adds the mutations of word to dst. Callers validate years first;
// an inverted range simply contributes no suffixed forms.
func (e *Engine) MutateInto(dst sets.Set[string], word string, years YearRange) {
	for v := range e.Variants(word) {
		dst.Add(v)
		dst.Union(e.ExpandWithYears(v, years))
	}
}
