// SPDX-License-Identifier: MIT

// Package transform provides fixed-size 2×2, 3×3 and 4×4 matrices with
// closed-form constructors for graphics transforms: identity, scaling,
// rotation, translation, orthographic and perspective projection.
//
// Conventions (applied consistently across every constructor):
//
//   - Row-major element order; Mat2/Mat3/Mat4 are plain value arrays.
//   - Column-vector convention: a point p transforms as M · p, so chained
//     transforms compose right-to-left — Mul(proj, view, model) order is
//     proj.Mul(view).Mul(model).
//   - Right-handed coordinate system. Positive rotation angles are
//     counter-clockwise: for Mat2/Mat3 in the plane (standard trigonometric
//     convention), for Mat4 per-axis rotations by the right-hand rule with
//     the same sine placement on all three axes.
//   - Projections target the OpenGL clip cube; a point at z = -near maps to
//     NDC z = -1.
//
// Same-size products use fully unrolled multiplications and never allocate;
// MulVec applies a matrix to a fixed-size array vector, also without
// allocation. For mixed-size or generic products, bridge into the dense
// world via Dense() and matrix.Mul, and back via Mat2FromDense /
// Mat3FromDense / Mat4FromDense.
package transform
