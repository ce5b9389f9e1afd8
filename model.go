// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"log/slog"
	"runtime"
	"strings"
)

// Policy selects which match survives in a cluster of overlapping matches.
type Policy string

const (
	// PolicyLongest keeps the longest match, earliest one on ties.
	PolicyLongest Policy = "longest"
	// PolicyShortest keeps the shortest match, earliest one on ties.
	PolicyShortest Policy = "shortest"
	// PolicyAll keeps every match.
	PolicyAll Policy = "all"
)

// Match is one occurrence of a search term in text.
type Match struct {
	// Value is the matched term, equal to text[Start:End+1].
	Value string `json:"value" yaml:"value"`
	// Start is the byte offset of the first matched byte.
	Start int `json:"start" yaml:"start"`
	// End is the byte offset of the last matched byte (inclusive).
	End int `json:"end" yaml:"end"`
}

// Len returns match length in bytes.
func (m Match) Len() int {
	return m.End - m.Start + 1
}

// SearchOptions controls search behavior.
type SearchOptions struct {
	// Finder is an optional prebuilt finder reused across calls.
	// When set, search terms passed to Search are ignored.
	Finder Finder `json:"-" yaml:"-"`
	// Cache is an optional finder cache consulted when Finder is nil.
	Cache *FinderCache `json:"-" yaml:"-"`
	// Logger receives debug and error records, nil discards them.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// Policy selects overlap survivors. Empty value defaults to PolicyLongest.
	Policy Policy `json:"policy,omitempty" yaml:"policy,omitempty"`
	// Concurrency limits parallel texts in Searcher.SearchTexts.
	// Zero or negative value defaults to GOMAXPROCS.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *SearchOptions) applyDefaults() {
	if opts.Policy == "" {
		opts.Policy = PolicyLongest
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
}

// ParsePolicy converts policy name to Policy.
//
// Names are matched case-insensitively after trimming spaces.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if err := p.validate(); err != nil {
		return "", err
	}

	return p, nil
}

// String returns policy name.
func (p Policy) String() string {
	return string(p)
}

// validate returns PolicyError for unsupported values.
func (p Policy) validate() error {
	switch p {
	case PolicyLongest, PolicyShortest, PolicyAll:
		return nil
	default:
		return &PolicyError{Policy: p}
	}
}
