// SPDX-License-Identifier: MIT

// Package transform: the 4×4 fixed matrix, used for 3-D homogeneous
// transforms and projection.
package transform

import (
	"fmt"
	"math"

	"github.com/mkalens/numera/matrix"
	"github.com/mkalens/numera/vector"
)

// Mat4 is a 4×4 matrix in row-major order:
//
//	[ m[0]  m[1]  m[2]  m[3]  ]
//	[ m[4]  m[5]  m[6]  m[7]  ]
//	[ m[8]  m[9]  m[10] m[11] ]
//	[ m[12] m[13] m[14] m[15] ]
type Mat4 [16]float64

// Identity4 returns the 4×4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling4 returns the 3-D homogeneous scaling matrix diag(sx, sy, sz, 1).
func Scaling4(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns the 3-D homogeneous translation by (tx, ty, tz).
// With column vectors the offsets occupy the last column.
func Translation4(tx, ty, tz float64) Mat4 {
	return Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// RotationX returns the rotation about the X axis by theta radians.
// Right-hand rule: positive theta rotates +Y toward +Z. The sine placement
// is identical on all three axes (one uniform convention; see package doc).
func RotationX(theta float64) Mat4 {
	s, c := math.Sincos(theta)

	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns the rotation about the Y axis by theta radians.
// Right-hand rule: positive theta rotates +Z toward +X.
func RotationY(theta float64) Mat4 {
	s, c := math.Sincos(theta)

	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns the rotation about the Z axis by theta radians.
// Right-hand rule: positive theta rotates +X toward +Y.
func RotationZ(theta float64) Mat4 {
	s, c := math.Sincos(theta)

	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotation4 returns the combined rotation Rz(z) · Ry(y) · Rx(x).
// The composition order is fixed: with column vectors the X rotation is
// applied first, then Y, then Z.
func Rotation4(x, y, z float64) Mat4 {
	return RotationZ(z).Mul(RotationY(y)).Mul(RotationX(x))
}

// Orthographic returns the orthographic projection mapping the axis-aligned
// box [left,right]×[bottom,top]×[-near,-far] (right-handed eye space,
// camera looking down -Z) onto the OpenGL clip cube [-1,1]³.
func Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// Perspective returns the perspective projection for a vertical field of
// view of fovy radians, the given aspect ratio (width/height), and the
// near/far clip distances (both positive, near < far).
//
// Right-handed eye space, column vectors, OpenGL clip cube: a point at
// z = -near lands on NDC z = -1, a point at z = -far on NDC z = +1.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// Mul returns the product m · a, fully unrolled. Neither operand is
// mutated; the result is a value, no heap allocation.
// Complexity: O(1), 64 multiplications.
func (m Mat4) Mul(a Mat4) Mat4 {
	return Mat4{
		m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12],
		m[0]*a[1] + m[1]*a[5] + m[2]*a[9] + m[3]*a[13],
		m[0]*a[2] + m[1]*a[6] + m[2]*a[10] + m[3]*a[14],
		m[0]*a[3] + m[1]*a[7] + m[2]*a[11] + m[3]*a[15],

		m[4]*a[0] + m[5]*a[4] + m[6]*a[8] + m[7]*a[12],
		m[4]*a[1] + m[5]*a[5] + m[6]*a[9] + m[7]*a[13],
		m[4]*a[2] + m[5]*a[6] + m[6]*a[10] + m[7]*a[14],
		m[4]*a[3] + m[5]*a[7] + m[6]*a[11] + m[7]*a[15],

		m[8]*a[0] + m[9]*a[4] + m[10]*a[8] + m[11]*a[12],
		m[8]*a[1] + m[9]*a[5] + m[10]*a[9] + m[11]*a[13],
		m[8]*a[2] + m[9]*a[6] + m[10]*a[10] + m[11]*a[14],
		m[8]*a[3] + m[9]*a[7] + m[10]*a[11] + m[11]*a[15],

		m[12]*a[0] + m[13]*a[4] + m[14]*a[8] + m[15]*a[12],
		m[12]*a[1] + m[13]*a[5] + m[14]*a[9] + m[15]*a[13],
		m[12]*a[2] + m[13]*a[6] + m[14]*a[10] + m[15]*a[14],
		m[12]*a[3] + m[13]*a[7] + m[14]*a[11] + m[15]*a[15],
	}
}

// MulVec applies the matrix to a homogeneous column vector: y = m · x.
// Allocation-free; suitable for per-frame hot paths.
func (m Mat4) MulVec(x [4]float64) [4]float64 {
	return [4]float64{
		m[0]*x[0] + m[1]*x[1] + m[2]*x[2] + m[3]*x[3],
		m[4]*x[0] + m[5]*x[1] + m[6]*x[2] + m[7]*x[3],
		m[8]*x[0] + m[9]*x[1] + m[10]*x[2] + m[11]*x[3],
		m[12]*x[0] + m[13]*x[1] + m[14]*x[2] + m[15]*x[3],
	}
}

// ApplyVec applies the matrix to a dynamic vector of length 4.
// Returns ErrWrongSize for any other length.
func (m Mat4) ApplyVec(x *vector.Vector) (*vector.Vector, error) {
	if x == nil {
		return nil, fmt.Errorf("Mat4.ApplyVec: %w", vector.ErrNilVector)
	}
	if x.Len() != 4 {
		return nil, fmt.Errorf("Mat4.ApplyVec: %w", ErrWrongSize)
	}
	xs := x.ToSlice()
	y := m.MulVec([4]float64{xs[0], xs[1], xs[2], xs[3]})

	return vector.New(y[0], y[1], y[2], y[3])
}

// Dense converts the fixed matrix into a 4×4 matrix.Dense, bridging into
// the generic kernels for mixed-type products.
func (m Mat4) Dense() *matrix.Dense {
	d, _ := matrix.FromFlat(4, 4, m[:]...) // shape is correct by construction

	return d
}

// Mat4FromDense extracts a Mat4 from a 4×4 dense matrix.
// Returns ErrWrongSize when the source is not 4×4.
func Mat4FromDense(d *matrix.Dense) (Mat4, error) {
	if d == nil {
		return Mat4{}, fmt.Errorf("Mat4FromDense: %w", matrix.ErrNilMatrix)
	}
	if d.Rows() != 4 || d.Cols() != 4 {
		return Mat4{}, fmt.Errorf("Mat4FromDense: %w", ErrWrongSize)
	}

	var m Mat4
	idx := 0
	for v := range d.Values() {
		m[idx] = v
		idx++
	}

	return m, nil
}
