// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operation kernels minimal by delegating nil/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package vector

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the vector reference is non-nil.
//
// Returns ErrNilVector if v == nil.
// Complexity: O(1).
func ValidateNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameLen ensures vectors a and b have equal length.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameLen(a, b *Vector) error {
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameLen — Composite: NotNil(a) → NotNil(b) → SameLen.
//
// Errors: combines ErrNilVector and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameLen(a, b *Vector) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateSameLen(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}

	return nil
}
