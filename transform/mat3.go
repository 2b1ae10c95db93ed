// SPDX-License-Identifier: MIT

// Package transform: the 3×3 fixed matrix, used for 2-D homogeneous
// transforms (rotation, scaling, translation in the plane).
package transform

import (
	"fmt"
	"math"

	"github.com/mkalens/numera/matrix"
	"github.com/mkalens/numera/vector"
)

// Mat3 is a 3×3 matrix in row-major order:
//
//	[ m[0] m[1] m[2] ]
//	[ m[3] m[4] m[5] ]
//	[ m[6] m[7] m[8] ]
type Mat3 [9]float64

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Scaling3 returns the 2-D homogeneous scaling matrix diag(sx, sy, 1).
func Scaling3(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Rotation3 returns the 2-D rotation by theta radians embedded
// homogeneously. Positive theta rotates counter-clockwise.
func Rotation3(theta float64) Mat3 {
	s, c := math.Sincos(theta)

	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Translation3 returns the 2-D homogeneous translation by (tx, ty).
// With column vectors the offsets occupy the last column.
func Translation3(tx, ty float64) Mat3 {
	return Mat3{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

// Mul returns the product m · a, fully unrolled. Neither operand is
// mutated; the result is a value, no heap allocation.
// Complexity: O(1), 27 multiplications.
func (m Mat3) Mul(a Mat3) Mat3 {
	return Mat3{
		m[0]*a[0] + m[1]*a[3] + m[2]*a[6],
		m[0]*a[1] + m[1]*a[4] + m[2]*a[7],
		m[0]*a[2] + m[1]*a[5] + m[2]*a[8],

		m[3]*a[0] + m[4]*a[3] + m[5]*a[6],
		m[3]*a[1] + m[4]*a[4] + m[5]*a[7],
		m[3]*a[2] + m[4]*a[5] + m[5]*a[8],

		m[6]*a[0] + m[7]*a[3] + m[8]*a[6],
		m[6]*a[1] + m[7]*a[4] + m[8]*a[7],
		m[6]*a[2] + m[7]*a[5] + m[8]*a[8],
	}
}

// MulVec applies the matrix to a column vector: y = m · x.
// Allocation-free; suitable for per-frame hot paths.
func (m Mat3) MulVec(x [3]float64) [3]float64 {
	return [3]float64{
		m[0]*x[0] + m[1]*x[1] + m[2]*x[2],
		m[3]*x[0] + m[4]*x[1] + m[5]*x[2],
		m[6]*x[0] + m[7]*x[1] + m[8]*x[2],
	}
}

// ApplyVec applies the matrix to a dynamic vector of length 3.
// Returns ErrWrongSize for any other length.
func (m Mat3) ApplyVec(x *vector.Vector) (*vector.Vector, error) {
	if x == nil {
		return nil, fmt.Errorf("Mat3.ApplyVec: %w", vector.ErrNilVector)
	}
	if x.Len() != 3 {
		return nil, fmt.Errorf("Mat3.ApplyVec: %w", ErrWrongSize)
	}
	xs := x.ToSlice()
	y := m.MulVec([3]float64{xs[0], xs[1], xs[2]})

	return vector.New(y[0], y[1], y[2])
}

// Dense converts the fixed matrix into a 3×3 matrix.Dense, bridging into
// the generic kernels for mixed-type products.
func (m Mat3) Dense() *matrix.Dense {
	d, _ := matrix.FromFlat(3, 3, m[:]...) // shape is correct by construction

	return d
}

// Mat3FromDense extracts a Mat3 from a 3×3 dense matrix.
// Returns ErrWrongSize when the source is not 3×3.
func Mat3FromDense(d *matrix.Dense) (Mat3, error) {
	if d == nil {
		return Mat3{}, fmt.Errorf("Mat3FromDense: %w", matrix.ErrNilMatrix)
	}
	if d.Rows() != 3 || d.Cols() != 3 {
		return Mat3{}, fmt.Errorf("Mat3FromDense: %w", ErrWrongSize)
	}

	var m Mat3
	idx := 0
	for v := range d.Values() {
		m[idx] = v
		idx++
	}

	return m, nil
}
