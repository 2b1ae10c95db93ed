// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.

package transform

import "errors"

var (
	// ErrWrongSize indicates that a dense matrix passed to MatNFromDense or
	// ApplyVec does not have the fixed size the target type requires.
	ErrWrongSize = errors.New("transform: wrong size for fixed matrix")
)
