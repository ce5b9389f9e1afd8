// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"fmt"
	"sort"
)

// Resolve collapses the cluster of matches overlapping matches[newIndex].
//
// Cluster rules:
//   - the anchor is the start offset of matches[newIndex]
//   - an entry overlaps when entry.End >= anchor and entry.Start <= anchor
//   - the cluster is the index range from the first overlapping entry through newIndex
//   - one cluster entry survives by policy, earliest index wins on ties
//
// Other entries keep their order. Resolve reuses the backing array of matches,
// callers must continue with the returned slice. PolicyAll and sets with fewer
// than two entries are returned unchanged.
func Resolve(matches []Match, newIndex int, policy Policy) ([]Match, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	if policy == PolicyAll || len(matches) <= 1 {
		return matches, nil
	}

	if newIndex < 0 || newIndex >= len(matches) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, newIndex, len(matches))
	}

	out, _ := collapseCluster(matches, 0, newIndex, policy)
	return out, nil
}

// ResolveAll replays candidates one by one through a fresh ResultSet.
func ResolveAll(candidates []Match, policy Policy) ([]Match, error) {
	rs, err := NewResultSet(policy)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		rs.Add(c)
	}

	return rs.Matches(), nil
}

// ResultSet accumulates candidates and keeps them stable under its policy.
//
// ResultSet is not safe for concurrent use.
type ResultSet struct {
	matches []Match
	policy  Policy
	// ordered reports whether entry end offsets are non-decreasing by index,
	// which holds while candidates arrive in finder order.
	ordered bool
}

// NewResultSet creates an empty result set for policy.
func NewResultSet(policy Policy) (*ResultSet, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	return &ResultSet{
		matches: make([]Match, 0, 16),
		policy:  policy,
		ordered: true,
	}, nil
}

// Add appends candidate and resolves its overlap cluster.
// It returns the number of entries dropped from the set.
func (rs *ResultSet) Add(candidate Match) int {
	if n := len(rs.matches); n > 0 && rs.matches[n-1].End > candidate.End {
		rs.ordered = false
	}

	rs.matches = append(rs.matches, candidate)
	if rs.policy == PolicyAll || len(rs.matches) <= 1 {
		return 0
	}

	newIndex := len(rs.matches) - 1
	lo := 0
	if rs.ordered {
		// Entries ending before the anchor can never overlap it.
		anchor := candidate.Start
		lo = sort.Search(newIndex, func(i int) bool {
			return rs.matches[i].End >= anchor
		})
	}

	var dropped int
	rs.matches, dropped = collapseCluster(rs.matches, lo, newIndex, rs.policy)
	return dropped
}

// Matches returns a copy of the current entries.
func (rs *ResultSet) Matches() []Match {
	out := make([]Match, len(rs.matches))
	copy(out, rs.matches)
	return out
}

// Len returns number of entries in the set.
func (rs *ResultSet) Len() int {
	return len(rs.matches)
}

// Policy returns the selection policy of the set.
func (rs *ResultSet) Policy() Policy {
	return rs.policy
}

// collapseCluster keeps one survivor of the cluster ending at newIndex.
// Search for the first overlapping entry starts at lo.
func collapseCluster(matches []Match, lo int, newIndex int, policy Policy) ([]Match, int) {
	anchor := matches[newIndex].Start

	first := newIndex
	for i := lo; i < newIndex; i++ {
		if matches[i].End >= anchor && matches[i].Start <= anchor {
			first = i
			break
		}
	}

	if first == newIndex {
		return matches, 0
	}

	keep := first
	for i := first + 1; i <= newIndex; i++ {
		l, best := matches[i].Len(), matches[keep].Len()
		if (policy == PolicyLongest && l > best) || (policy == PolicyShortest && l < best) {
			keep = i
		}
	}

	matches[first] = matches[keep]
	n := copy(matches[first+1:], matches[newIndex+1:])

	return matches[:first+1+n], newIndex - first
}
