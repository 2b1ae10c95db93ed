// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix of float64 values with
// multiple construction protocols, identity, element-wise kernels, matrix
// multiplication and matrix·vector products.
//
// What & Why:
//
//	Dense stores a height×width grid in one flat slice for cache
//	friendliness. Construction is explicit — named factories replace
//	argument-shape sniffing:
//
//	    FromRows([][]float64)           rows taken directly
//	    New(rows ...[]float64)          variadic row slices
//	    FromColumns(cols ...*Vector)    each vector is one column
//	    FromFlat(h, w, vals...)         row-major scalars, count must be h*w
//
//	All kernels perform strict fail-fast validation and return sentinel
//	errors (ErrShapeMismatch, ErrIncompatibleShapes, ...) matched via
//	errors.Is. Kernels never mutate their operands; results are freshly
//	allocated.
//
// Iteration:
//
//	Values() yields every element lazily in row-major order (row 0 left to
//	right, then row 1, ...). The sequence is finite and restartable:
//	ranging over it twice replays the full traversal.
//
// Determinism:
//
//	Fixed loop orders everywhere; identical inputs produce identical
//	results across runs.
package matrix
