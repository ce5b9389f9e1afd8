// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/termmatch

package termmatch

import (
	"errors"
	"fmt"
)

// Sentinel errors for termmatch operations.
var (
	// ErrInvalidPolicy indicates unsupported overlap selection policy.
	ErrInvalidPolicy = errors.New("invalid policy")
	// ErrConsistencyViolation indicates a finder reported a match that does not
	// correspond to the searched text.
	ErrConsistencyViolation = errors.New("consistency violation")
	// ErrIndexOutOfRange indicates resolve index outside of the result set.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNilSearcher indicates a nil Searcher receiver.
	ErrNilSearcher = errors.New("searcher is nil")
)

// PolicyError reports an unsupported policy value.
type PolicyError struct {
	Policy Policy
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf(`%s %q: supported values are "longest", "shortest" and "all"`,
		ErrInvalidPolicy, string(e.Policy))
}

// Unwrap returns ErrInvalidPolicy.
func (e *PolicyError) Unwrap() error {
	return ErrInvalidPolicy
}

// ConsistencyError reports a finder candidate whose value differs from the text it points to.
type ConsistencyError struct {
	// Candidate is the offending match as derived from finder output.
	Candidate Match
	// Actual is the text slice found at candidate offsets, empty when offsets are out of bounds.
	Actual string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: candidate %q at [%d,%d] but text holds %q",
		ErrConsistencyViolation, e.Candidate.Value, e.Candidate.Start, e.Candidate.End, e.Actual)
}

// Unwrap returns ErrConsistencyViolation.
func (e *ConsistencyError) Unwrap() error {
	return ErrConsistencyViolation
}
