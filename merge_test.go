// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTerms(t *testing.T) {
	t.Parallel()

	a := []string{"foo", "bar"}
	b := []string{"baz", "foo", "", "qux"}

	merged := MergeTerms(a, nil, b)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, merged)

	// Ensure result does not alias input backing arrays.
	b[0] = "mutated"
	assert.Equal(t, "baz", merged[2])
}

func TestMergeTermsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MergeTerms())
	assert.Empty(t, MergeTerms(nil, []string{""}))
}
