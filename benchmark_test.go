// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

const (
	benchTermCount = 256
	benchTextSize  = 64 << 10
	benchTextCount = 32
)

var (
	benchMatchSink []Match
	benchCountSink int
)

func BenchmarkNewFinder(b *testing.B) {
	terms := benchmarkTerms(benchTermCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewFinder(terms)
		if f.TermCount() == 0 {
			b.Fatal("empty finder")
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, policy := range []Policy{PolicyLongest, PolicyShortest, PolicyAll} {
		b.Run(policy.String(), func(b *testing.B) {
			s, err := NewSearcher(benchmarkTerms(benchTermCount), SearchOptions{Policy: policy})
			if err != nil {
				b.Fatal(err)
			}

			text := benchmarkText(benchTextSize)

			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchMatchSink, err = s.Search(text)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkResultSetAdd(b *testing.B) {
	text := benchmarkText(benchTextSize)
	f := NewFinder(benchmarkTerms(benchTermCount))

	var candidates []Match
	for end, value := range f.Scan(text) {
		candidates = append(candidates, Match{Value: value, Start: end - len(value) + 1, End: end})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs, err := NewResultSet(PolicyLongest)
		if err != nil {
			b.Fatal(err)
		}

		for _, c := range candidates {
			rs.Add(c)
		}

		benchCountSink = rs.Len()
	}
}

func BenchmarkSearchTexts(b *testing.B) {
	s, err := NewSearcher(benchmarkTerms(benchTermCount), SearchOptions{})
	if err != nil {
		b.Fatal(err)
	}

	texts := make([]string, benchTextCount)
	for i := range texts {
		texts[i] = benchmarkText(benchTextSize / benchTextCount)
	}

	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := s.SearchTexts(ctx, texts)
		if err != nil {
			b.Fatal(err)
		}

		benchCountSink = len(out)
	}
}

// benchmarkTerms returns overlapping prefix families like "ab", "abc", "abcd".
func benchmarkTerms(n int) []string {
	const alphabet = "abcdefghij"

	terms := make([]string, 0, n)
	for i := 0; len(terms) < n; i++ {
		root := fmt.Sprintf("%c%c", alphabet[i%len(alphabet)], alphabet[(i/len(alphabet))%len(alphabet)])
		for l := 0; l < 4 && len(terms) < n; l++ {
			terms = append(terms, root+alphabet[:l])
		}
	}

	return terms
}

func benchmarkText(size int) string {
	const alphabet = "abcdefghij "

	var sb strings.Builder
	sb.Grow(size)
	for i := 0; sb.Len() < size; i++ {
		sb.WriteByte(alphabet[(i*7+i/3)%len(alphabet)])
	}

	return sb.String()
}
