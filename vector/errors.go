// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrEmptyVector indicates that a vector of length zero was requested or
	// supplied where at least one element is required.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates that two vectors of different lengths
	// were combined in an elementwise or dot-product operation.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfBounds indicates that an element index is outside [0, Len).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrZeroMagnitude is returned by Normalize when the Euclidean norm of
	// the vector is exactly zero. Failing beats silently manufacturing
	// ±Inf/NaN components; callers who want that behavior can divide by
	// Magnitude themselves.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")
)
