// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTermsFile reads and parses search terms from a file.
func LoadTermsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terms file: %w", err)
	}
	defer func() { _ = f.Close() }()

	terms, err := ParseTerms(f)
	if err != nil {
		return nil, fmt.Errorf("parse terms file: %w", err)
	}

	return terms, nil
}

// LoadTermsFiles reads and merges terms from files in the given order.
//
// Returned terms preserve file order and term order inside each file.
func LoadTermsFiles(paths ...string) ([]string, error) {
	sets := make([][]string, 0, len(paths))
	for _, path := range paths {
		terms, err := LoadTermsFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, terms)
	}

	return MergeTerms(sets...), nil
}

// LoadOptionsFile reads search options from a YAML file.
//
// Only serializable fields (policy, concurrency) are read. Policy is
// normalized and validated.
func LoadOptionsFile(path string) (SearchOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SearchOptions{}, fmt.Errorf("read options file: %w", err)
	}

	var opts SearchOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return SearchOptions{}, fmt.Errorf("decode options file: %w", err)
	}

	if opts.Policy != "" {
		opts.Policy, err = ParsePolicy(string(opts.Policy))
		if err != nil {
			return SearchOptions{}, fmt.Errorf("options file %s: %w", path, err)
		}
	}

	return opts, nil
}
