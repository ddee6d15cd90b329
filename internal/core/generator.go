// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core is the facade shared by the CLI and the TUI: it turns seed
// words into a sorted wordlist, scores the password under analysis, writes
// the list to its destinations and keeps the run history.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/toeirei/leetlist/internal/export"
	"github.com/toeirei/leetlist/internal/history"
	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/logging"
	"github.com/toeirei/leetlist/internal/mutate"
	"github.com/toeirei/leetlist/internal/strength"
	"github.com/toeirei/leetlist/internal/wordlist"
)

// ErrTooManyCandidates is returned when the estimated wordlist size exceeds
// Request.MaxCandidates.
var ErrTooManyCandidates = errors.New("too many candidates")

// HistoryRecorder persists finished runs. *history.Store implements it.
type HistoryRecorder interface {
	Record(ctx context.Context, r history.Run) (history.Run, error)
}

// Request describes one generation.
type Request struct {
	Seeds wordlist.Seeds
	Years mutate.YearRange
	// MaxCandidates caps the estimated output size; 0 means no cap.
	MaxCandidates int
}

// Result is a generated wordlist.
type Result struct {
	Words []string // sorted
	Seeds int      // non-empty seeds used
	Years mutate.YearRange
}

// Len returns the number of candidates.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Words)
}

// Generator ties the builder, the scorer and the optional history together.
type Generator struct {
	builder *wordlist.Builder
	scorer  strength.Scorer
	history HistoryRecorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithScorer replaces the default zxcvbn scorer.
func WithScorer(s strength.Scorer) Option {
	return func(g *Generator) { g.scorer = s }
}

// WithHistory records every saved run in h.
func WithHistory(h HistoryRecorder) Option {
	return func(g *Generator) { g.history = h }
}

// NewGenerator returns a Generator using table for substitutions.
func NewGenerator(table leet.Table, opts ...Option) *Generator {
	g := &Generator{
		builder: wordlist.NewBuilder(mutate.NewEngine(table)),
		scorer:  strength.NewZxcvbn(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Table returns the substitution table in use.
func (g *Generator) Table() leet.Table { return g.builder.Engine().Table() }

// Generate builds the wordlist for req. The result is sorted.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Years.Validate(); err != nil {
		return nil, err
	}

	seeds := req.Seeds.Values()
	if req.MaxCandidates > 0 {
		if est := wordlist.EstimateSize(seeds, g.Table(), req.Years); est > req.MaxCandidates {
			return nil, fmt.Errorf("%w: about %s, limit is %s", ErrTooManyCandidates, HumanCount(est), HumanCount(req.MaxCandidates))
		}
	}

	set, err := g.builder.Build(seeds, req.Years)
	if err != nil {
		return nil, err
	}
	logging.Debugf("generated %d candidates from %d seeds, years %s", set.Len(), len(seeds), req.Years)
	return &Result{Words: set.Sorted(), Seeds: len(seeds), Years: req.Years}, nil
}

// Save writes res to every distinct, non-empty destination and returns the
// destinations written, as the user named them. Each one is recorded in the
// history; recording failures are logged, not returned.
func (g *Generator) Save(ctx context.Context, res *Result, dests []string, opts ...export.Option) ([]string, error) {
	if res == nil {
		return nil, errors.New("nothing to save")
	}
	targets, err := export.Unique(dests)
	if err != nil {
		return nil, err
	}
	written := make([]string, 0, len(targets))
	for _, d := range targets {
		written = append(written, d.String())
	}
	if len(written) == 0 {
		return nil, nil
	}
	if err := export.SaveAll(ctx, written, res.Words, opts...); err != nil {
		return nil, err
	}
	if g.history == nil {
		return written, nil
	}
	digest := history.Digest(res.Words)
	for _, dest := range written {
		_, err := g.history.Record(ctx, history.Run{
			Seeds:       res.Seeds,
			YearStart:   res.Years.Start,
			YearEnd:     res.Years.End,
			Candidates:  len(res.Words),
			Destination: dest,
			Digest:      digest,
		})
		if err != nil {
			logging.Warnf("could not record run for %s: %v", dest, err)
		}
	}
	return written, nil
}

// HumanCount formats n with thousands separators.
func HumanCount(n int) string {
	return humanize.Comma(int64(n))
}
