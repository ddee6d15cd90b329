// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wordlist combines the mutations of several seed words into one
// deduplicated candidate set.
package wordlist

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/mutate"
	"github.com/toeirei/leetlist/internal/sets"
)

// Seed is one labelled piece of personal data, e.g. {"pet", "Rex"}.
// Labels are free-form; they only matter to the front end.
type Seed struct {
	Label string
	Value string
}

// Seeds is an ordered list of labelled inputs.
type Seeds []Seed

// Values returns the non-empty seed values in input order.
func (s Seeds) Values() []string {
	out := make([]string, 0, len(s))
	for _, seed := range s {
		if seed.Value != "" {
			out = append(out, seed.Value)
		}
	}
	return out
}

// Builder turns seed words into a candidate set.
type Builder struct {
	engine *mutate.Engine
}

// NewBuilder returns a Builder that mutates seeds with engine.
func NewBuilder(engine *mutate.Engine) *Builder {
	return &Builder{engine: engine}
}

// Engine returns the engine used for each seed.
func (b *Builder) Engine() *mutate.Engine { return b.engine }

// Build returns the union of the mutations of every non-empty seed.
// Seed order does not affect membership. An inverted year range fails the
// whole build with a *mutate.ConfigurationError.
func (b *Builder) Build(seeds []string, years mutate.YearRange) (sets.Set[string], error) {
	if err := years.Validate(); err != nil {
		return nil, err
	}
	out := make(sets.Set[string])
	for _, seed := range seeds {
		if seed == "" {
			continue
		}
		b.engine.MutateInto(out, seed, years)
	}
	return out, nil
}

// EstimateSize returns an upper bound on the candidates Build would produce
// for seeds, without building them. Duplicates across seeds are not removed.
func EstimateSize(seeds []string, table leet.Table, years mutate.YearRange) int {
	perVariant := 1 + years.Len()
	total := 0
	for _, seed := range seeds {
		if seed == "" {
			continue
		}
		variants := 1
		for _, r := range cases.Lower(language.Und).String(seed) {
			variants += table.FanOut(r)
		}
		total += variants * perVariant
	}
	return total
}
