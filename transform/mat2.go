// SPDX-License-Identifier: MIT

// Package transform: the 2×2 fixed matrix.
package transform

import (
	"fmt"
	"math"

	"github.com/mkalens/numera/matrix"
	"github.com/mkalens/numera/vector"
)

// Mat2 is a 2×2 matrix in row-major order:
//
//	[ m[0] m[1] ]
//	[ m[2] m[3] ]
type Mat2 [4]float64

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

// Scaling2 returns the diagonal scaling matrix diag(sx, sy).
func Scaling2(sx, sy float64) Mat2 {
	return Mat2{
		sx, 0,
		0, sy,
	}
}

// Rotation2 returns the rotation by theta radians. Positive theta rotates
// counter-clockwise (standard trigonometric convention, column vectors).
func Rotation2(theta float64) Mat2 {
	s, c := math.Sincos(theta)

	return Mat2{
		c, -s,
		s, c,
	}
}

// Mul returns the product m · a, fully unrolled. Neither operand is
// mutated; the result is a value, no heap allocation.
// Complexity: O(1), 8 multiplications.
func (m Mat2) Mul(a Mat2) Mat2 {
	return Mat2{
		m[0]*a[0] + m[1]*a[2], m[0]*a[1] + m[1]*a[3],
		m[2]*a[0] + m[3]*a[2], m[2]*a[1] + m[3]*a[3],
	}
}

// MulVec applies the matrix to a column vector: y = m · x.
// Allocation-free; suitable for per-frame hot paths.
func (m Mat2) MulVec(x [2]float64) [2]float64 {
	return [2]float64{
		m[0]*x[0] + m[1]*x[1],
		m[2]*x[0] + m[3]*x[1],
	}
}

// ApplyVec applies the matrix to a dynamic vector of length 2.
// Returns ErrWrongSize for any other length.
func (m Mat2) ApplyVec(x *vector.Vector) (*vector.Vector, error) {
	if x == nil {
		return nil, fmt.Errorf("Mat2.ApplyVec: %w", vector.ErrNilVector)
	}
	if x.Len() != 2 {
		return nil, fmt.Errorf("Mat2.ApplyVec: %w", ErrWrongSize)
	}
	xs := x.ToSlice()
	y := m.MulVec([2]float64{xs[0], xs[1]})

	return vector.New(y[0], y[1])
}

// Dense converts the fixed matrix into a 2×2 matrix.Dense, bridging into
// the generic kernels (matrix.Mul and friends) for mixed-type products.
func (m Mat2) Dense() *matrix.Dense {
	d, _ := matrix.FromFlat(2, 2, m[:]...) // shape is correct by construction

	return d
}

// Mat2FromDense extracts a Mat2 from a 2×2 dense matrix.
// Returns ErrWrongSize when the source is not 2×2.
func Mat2FromDense(d *matrix.Dense) (Mat2, error) {
	if d == nil {
		return Mat2{}, fmt.Errorf("Mat2FromDense: %w", matrix.ErrNilMatrix)
	}
	if d.Rows() != 2 || d.Cols() != 2 {
		return Mat2{}, fmt.Errorf("Mat2FromDense: %w", ErrWrongSize)
	}

	var m Mat2
	idx := 0
	for v := range d.Values() { // row-major walk matches the array layout
		m[idx] = v
		idx++
	}

	return m, nil
}
