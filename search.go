// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Searcher finds terms in texts with one prebuilt finder and resolves overlaps.
//
// Searcher is safe for concurrent use, every search owns its result set.
type Searcher struct {
	finder      Finder
	terms       []string
	logger      *slog.Logger
	policy      Policy
	concurrency int
}

// NewSearcher validates options and prepares finder for terms.
//
// Finder source order: opts.Finder, then opts.Cache, then a new finder.
func NewSearcher(terms []string, opts SearchOptions) (*Searcher, error) {
	opts.applyDefaults()
	if err := opts.Policy.validate(); err != nil {
		return nil, err
	}

	s := &Searcher{
		finder:      opts.Finder,
		logger:      opts.Logger,
		policy:      opts.Policy,
		concurrency: opts.Concurrency,
	}

	if s.finder == nil {
		var (
			finder *AhoFinder
			hit    bool
		)
		if opts.Cache != nil {
			finder, hit = opts.Cache.Lookup(terms)
		} else {
			finder = NewFinder(terms)
		}

		opts.Logger.Debug("finder ready", "terms", finder.TermCount(), "cache_hit", hit)
		s.finder = finder
		s.terms = finder.Terms()
	}

	return s, nil
}

// Search finds terms in text and resolves overlaps by opts.Policy.
//
// Empty terms or empty text yield an empty result.
func Search(terms []string, text string, opts SearchOptions) ([]Match, error) {
	s, err := NewSearcher(terms, opts)
	if err != nil {
		return nil, err
	}

	return s.Search(text)
}

// Search scans text and returns stable matches in survivor insertion order.
//
// A finder candidate that does not match text aborts the search with
// ConsistencyError.
func (s *Searcher) Search(text string) ([]Match, error) {
	if s == nil {
		return nil, ErrNilSearcher
	}

	rs, err := NewResultSet(s.policy)
	if err != nil {
		return nil, err
	}

	candidates, dropped := 0, 0
	for end, value := range s.finder.Scan(text) {
		candidate := Match{
			Value: value,
			Start: end - len(value) + 1,
			End:   end,
		}

		if err := checkCandidate(text, candidate); err != nil {
			s.logger.Error("finder reported inconsistent match",
				"value", value, "start", candidate.Start, "end", candidate.End)
			return nil, err
		}

		candidates++
		dropped += rs.Add(candidate)
	}

	s.logger.Debug("search done",
		"policy", s.policy,
		"text_len", len(text),
		"candidates", candidates,
		"dropped", dropped,
		"kept", rs.Len())

	return rs.Matches(), nil
}

// SearchTexts searches independent texts in parallel with a shared finder.
//
// Results are index-aligned with texts. First error cancels pending texts.
func (s *Searcher) SearchTexts(ctx context.Context, texts []string) ([][]Match, error) {
	if s == nil {
		return nil, ErrNilSearcher
	}

	results := make([][]Match, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			matches, err := s.Search(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}

			results[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Policy returns searcher overlap policy.
func (s *Searcher) Policy() Policy {
	return s.policy
}

// Terms returns a copy of the normalized terms the searcher was built with.
// It returns nil when a custom finder was supplied.
func (s *Searcher) Terms() []string {
	if s.terms == nil {
		return nil
	}

	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

// Finder returns searcher finder.
func (s *Searcher) Finder() Finder {
	return s.finder
}

// checkCandidate verifies that candidate offsets address its value in text.
func checkCandidate(text string, candidate Match) error {
	if candidate.Start < 0 || candidate.End >= len(text) || candidate.Start > candidate.End {
		return &ConsistencyError{Candidate: candidate}
	}

	if actual := text[candidate.Start : candidate.End+1]; actual != candidate.Value {
		return &ConsistencyError{Candidate: candidate, Actual: actual}
	}

	return nil
}
