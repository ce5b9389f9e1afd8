// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

// MergeTerms merges term slices preserving first-seen order.
//
// Empty terms and repeated terms are dropped.
func MergeTerms(termSets ...[]string) []string {
	total := 0
	for _, set := range termSets {
		total += len(set)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, set := range termSets {
		for _, term := range set {
			if term == "" {
				continue
			}

			if _, ok := seen[term]; ok {
				continue
			}

			seen[term] = struct{}{}
			out = append(out, term)
		}
	}

	return out
}
