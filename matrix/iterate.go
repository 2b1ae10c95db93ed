// SPDX-License-Identifier: MIT

// Package matrix: lazy row-major iteration over matrix elements.
package matrix

import "iter"

// Values returns a lazy sequence of all Rows()*Cols() elements in row-major
// order: row 0 left-to-right, then row 1, and so on.
//
// The sequence is finite and restartable — ranging over it a second time
// replays the full traversal from the start. Elements are read from the
// backing storage at yield time, so mutations between ranges are visible.
//
// Usage:
//
//	for v := range m.Values() {
//	    sum += v
//	}
//
// Complexity: O(r*c) per full traversal, O(1) space.
func (m *Dense) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for idx := 0; idx < len(m.data); idx++ { // flat walk == row-major order
			if !yield(m.data[idx]) {
				return // consumer stopped early
			}
		}
	}
}

// ValuesOf returns a lazy row-major sequence over any Matrix implementation.
// For *Dense prefer Values, which walks the flat storage directly.
// Out-of-range reads cannot occur: the traversal is bounded by Rows/Cols.
func ValuesOf(m Matrix) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		rows, cols := m.Rows(), m.Cols()
		for i := 0; i < rows; i++ { // fixed i→j order
			for j := 0; j < cols; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return // unreachable with a well-formed Matrix
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}
