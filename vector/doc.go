// SPDX-License-Identifier: MIT

// Package vector provides a dynamic, fixed-length vector of float64 values
// with elementwise and scalar operations.
//
// What & Why:
//
//	Vector is the one-dimensional counterpart of matrix.Dense: a flat
//	float64 slice with an immutable length, deep copies, and fail-fast
//	validation. Every elementwise operation requires operands of equal
//	length and returns ErrDimensionMismatch otherwise; nothing panics on
//	user input.
//
// Allocation discipline:
//
//	Each operation comes in two explicit variants. The plain form
//	(Add, Sub, Hadamard, Scale, Normalize) allocates a fresh result and
//	leaves the receiver untouched. The InPlace form mutates the receiver
//	and returns it, enabling chaining in hot loops without allocation:
//
//	    v.ScaleInPlace(2).AddInPlace(w)
//
// Errors:
//
//	All failures are sentinel errors (ErrDimensionMismatch,
//	ErrZeroMagnitude, ...) matched via errors.Is.
package vector
