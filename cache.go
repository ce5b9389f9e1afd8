// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// FinderCache stores built finders by ordered term list.
//
// FinderCache is safe for concurrent use and ready to use at its zero value.
// Concurrent requests for the same term list wait for one build.
type FinderCache struct {
	// entries stores finders by term list hash.
	entries map[uint64]*cachedFinder
	// mu guards entries access.
	mu sync.Mutex
}

// cachedFinder stores one finder and its source terms.
type cachedFinder struct {
	// finder is nil while loading.
	finder *AhoFinder
	// terms are the normalized terms used for hash collision checks.
	terms []string
	// loading reports whether finder is currently being built by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one build.
	wg sync.WaitGroup
}

// NewFinderCache creates an empty finder cache.
func NewFinderCache() *FinderCache {
	return &FinderCache{
		entries: make(map[uint64]*cachedFinder),
	}
}

// Finder returns cached or newly built finder for terms.
//
// Terms are normalized with MergeTerms before lookup, so order matters but
// duplicates and empty terms do not. A nil cache builds without caching.
func (c *FinderCache) Finder(terms []string) *AhoFinder {
	finder, _ := c.Lookup(terms)
	return finder
}

// Lookup is Finder that also reports whether the finder came from the cache.
func (c *FinderCache) Lookup(terms []string) (*AhoFinder, bool) {
	normalized := MergeTerms(terms)
	if c == nil {
		return NewFinder(normalized), false
	}

	key := termsKey(normalized)

	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[uint64]*cachedFinder)
	}

	cached, ok := c.entries[key]
	if ok {
		loading := cached.loading
		c.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		if slices.Equal(cached.terms, normalized) {
			return cached.finder, true
		}

		// Hash collision, build without caching.
		return NewFinder(normalized), false
	}

	cached = &cachedFinder{
		terms:   normalized,
		loading: true,
	}
	cached.wg.Add(1)
	c.entries[key] = cached
	c.mu.Unlock()

	finder := NewFinder(normalized)

	c.mu.Lock()
	cached.finder = finder
	cached.loading = false
	cached.wg.Done()
	c.mu.Unlock()

	return finder, false
}

// Len returns number of cached finders.
func (c *FinderCache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Purge drops all cached finders.
func (c *FinderCache) Purge() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// termsKey hashes ordered terms, each followed by a NUL separator.
func termsKey(terms []string) uint64 {
	d := xxhash.New()
	for _, term := range terms {
		_, _ = d.WriteString(term)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}
