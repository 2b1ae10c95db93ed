// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates that a construction protocol received an
	// element count inconsistent with the declared shape: a flat scalar list
	// whose length is not rows*cols, or a ragged nested-row input.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// of an element-wise kernel (Add/Sub/Hadamard with different shapes), or
	// column vectors of unequal length in FromColumns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleShapes indicates a matrix product A×B where
	// A.Cols() != B.Rows().
	ErrIncompatibleShapes = errors.New("matrix: incompatible shapes for product")
)
