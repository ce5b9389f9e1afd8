// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

/*
Package termmatch implements multi-term substring search with overlap resolution.

Every occurrence of every term is reported by an Aho-Corasick finder in order of
increasing end offset. Each occurrence is appended to a result set and the
cluster of matches overlapping it is collapsed to one survivor chosen by policy:

  - PolicyLongest keeps the longest match of the cluster
  - PolicyShortest keeps the shortest match of the cluster
  - PolicyAll keeps every match and never filters

Ties go to the match that entered the result set first.

Basic flow:
  - parse or load search terms (`ParseTerms` / `LoadTermsFile`)
  - build finder once (`NewFinder`) or use `NewSearcher`
  - search text (`Search` / `Searcher.Search`)
  - for independent texts in parallel use `Searcher.SearchTexts`

Offsets are byte offsets, Match.End is inclusive. Finders are read-only after
construction and can be shared between goroutines; result sets cannot.
*/
package termmatch
