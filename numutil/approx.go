// SPDX-License-Identifier: MIT

// Package numutil: approximate float64 comparison.
package numutil

import "math"

// EqualApprox reports whether a and b differ by at most tol (absolute).
// NaN never compares equal to anything.
func EqualApprox(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// EqualSlices reports whether a and b have the same length and every pair
// of elements satisfies EqualApprox under tol.
func EqualSlices(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualApprox(a[i], b[i], tol) {
			return false
		}
	}

	return true
}
