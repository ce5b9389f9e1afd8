// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"iter"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Finder reports every occurrence of its terms in text.
//
// Scan yields (end offset, value) pairs, end inclusive, in non-decreasing end
// offset order. Each Scan call starts a fresh pass over text.
type Finder interface {
	Scan(text string) iter.Seq2[int, string]
}

// AhoFinder is a Finder backed by an Aho-Corasick automaton.
//
// AhoFinder is read-only after construction and safe for concurrent Scan calls.
type AhoFinder struct {
	automaton aho.AhoCorasick
	terms     []string
}

// NewFinder builds an automaton over terms.
//
// Empty terms and duplicates are skipped, term order is preserved.
func NewFinder(terms []string) *AhoFinder {
	f := &AhoFinder{
		terms: MergeTerms(terms),
	}

	if len(f.terms) == 0 {
		return f
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch, // required for IterOverlapping
		DFA:       true,
	})
	f.automaton = builder.Build(f.terms)

	return f
}

// Scan yields every overlapping occurrence of finder terms in text.
func (f *AhoFinder) Scan(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if len(f.terms) == 0 || text == "" {
			return
		}

		it := f.automaton.IterOverlapping(text)
		for next := it.Next(); next != nil; next = it.Next() {
			if !yield(next.End()-1, f.terms[next.Pattern()]) {
				return
			}
		}
	}
}

// Terms returns a copy of finder terms in registration order.
func (f *AhoFinder) Terms() []string {
	out := make([]string, len(f.terms))
	copy(out, f.terms)
	return out
}

// TermCount returns the number of registered terms.
func (f *AhoFinder) TermCount() int {
	return len(f.terms)
}
