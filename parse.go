// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseTerms parses search terms from reader, one term per line.
//
// Semantics:
// - blank lines and comments are ignored
// - trailing spaces are trimmed, a term ending in a space needs "\ "
//   (the line `name\ ` yields the term "name ")
// - "\#" escapes a leading comment token
// - duplicate terms keep their first occurrence
func ParseTerms(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	terms := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		terms = append(terms, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan terms: %w", err)
	}

	return MergeTerms(terms), nil
}

// ParseTermsString parses terms from string input.
func ParseTermsString(src string) ([]string, error) {
	return ParseTerms(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
