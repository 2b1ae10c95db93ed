// Package transform_test contains unit tests for the 4×4 fixed matrix:
// per-axis rotations, combined rotation order, translation, and the
// orthographic/perspective projections.
package transform_test

import (
	"math"
	"testing"

	"github.com/mkalens/numera/transform"
	"github.com/stretchr/testify/require"
)

// requireMat4InDelta asserts elementwise approximate equality of two Mat4.
func requireMat4InDelta(t *testing.T, want, got transform.Mat4) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}

// requireVec4InDelta asserts approximate equality of two homogeneous vectors.
func requireVec4InDelta(t *testing.T, want, got [4]float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

// TestIdentity4Mul verifies identity composition.
func TestIdentity4Mul(t *testing.T) {
	m := transform.Translation4(1, 2, 3).Mul(transform.Scaling4(2, 3, 4))
	id := transform.Identity4()

	require.Equal(t, m, id.Mul(m))
	require.Equal(t, m, m.Mul(id))
}

// TestRotationAxesRightHandRule verifies the right-hand-rule convention on
// every axis with quarter turns: X maps +Y→+Z, Y maps +Z→+X, Z maps +X→+Y.
func TestRotationAxesRightHandRule(t *testing.T) {
	q := math.Pi / 2

	requireVec4InDelta(t, [4]float64{0, 0, 1, 1},
		transform.RotationX(q).MulVec([4]float64{0, 1, 0, 1})) // +Y → +Z
	requireVec4InDelta(t, [4]float64{1, 0, 0, 1},
		transform.RotationY(q).MulVec([4]float64{0, 0, 1, 1})) // +Z → +X
	requireVec4InDelta(t, [4]float64{0, 1, 0, 1},
		transform.RotationZ(q).MulVec([4]float64{1, 0, 0, 1})) // +X → +Y
}

// TestRotationInverse4 verifies R(θ) · R(-θ) ≈ I on each axis.
func TestRotationInverse4(t *testing.T) {
	for _, theta := range []float64{0.3, -1.2, math.Pi} {
		requireMat4InDelta(t, transform.Identity4(),
			transform.RotationX(theta).Mul(transform.RotationX(-theta)))
		requireMat4InDelta(t, transform.Identity4(),
			transform.RotationY(theta).Mul(transform.RotationY(-theta)))
		requireMat4InDelta(t, transform.Identity4(),
			transform.RotationZ(theta).Mul(transform.RotationZ(-theta)))
	}
}

// TestRotation4CompositionOrder pins Rotation4(x,y,z) == Rz · Ry · Rx.
func TestRotation4CompositionOrder(t *testing.T) {
	x, y, z := 0.3, -0.7, 1.9

	want := transform.RotationZ(z).Mul(transform.RotationY(y)).Mul(transform.RotationX(x))
	requireMat4InDelta(t, want, transform.Rotation4(x, y, z))

	// The reversed order differs for generic angles — the order is load-bearing.
	reversed := transform.RotationX(x).Mul(transform.RotationY(y)).Mul(transform.RotationZ(z))
	require.NotEqual(t, want, reversed)
}

// TestTranslation4 verifies points translate and directions (w=0) do not.
func TestTranslation4(t *testing.T) {
	tr := transform.Translation4(1, 2, 3)

	require.Equal(t, [4]float64{2, 4, 6, 1}, tr.MulVec([4]float64{1, 2, 3, 1}))
	require.Equal(t, [4]float64{1, 2, 3, 0}, tr.MulVec([4]float64{1, 2, 3, 0}))
}

// TestOrthographicClipRange verifies near/far map onto NDC -1/+1 for a
// symmetric box.
func TestOrthographicClipRange(t *testing.T) {
	o := transform.Orthographic(-1, 1, -1, 1, 1, 3)

	nearPt := o.MulVec([4]float64{0, 0, -1, 1}) // z = -near
	require.InDelta(t, -1.0, nearPt[2], tol)
	require.Equal(t, 1.0, nearPt[3]) // orthographic keeps w == 1

	farPt := o.MulVec([4]float64{0, 0, -3, 1}) // z = -far
	require.InDelta(t, 1.0, farPt[2], tol)
}

// TestPerspectiveRegression pins the exact clip-space output for one
// literal input set: fovy=π/2, aspect=1, near=1, far=3.
func TestPerspectiveRegression(t *testing.T) {
	p := transform.Perspective(math.Pi/2, 1, 1, 3)

	// With f = 1/tan(π/4) = 1 the matrix is
	// [1 0  0  0; 0 1 0 0; 0 0 -2 -3; 0 0 -1 0].
	requireMat4InDelta(t, transform.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -2, -3,
		0, 0, -1, 0,
	}, p)

	// A homogeneous point on the near plane maps to clip (0, 0, -1, 1):
	// NDC z = -1 under the OpenGL convention.
	nearPt := p.MulVec([4]float64{0, 0, -1, 1})
	requireVec4InDelta(t, [4]float64{0, 0, -1, 1}, nearPt)

	// And the far plane lands on NDC z = +1 after the perspective divide.
	farPt := p.MulVec([4]float64{0, 0, -3, 1})
	require.InDelta(t, 3.0, farPt[2], tol)
	require.InDelta(t, 3.0, farPt[3], tol)
	require.InDelta(t, 1.0, farPt[2]/farPt[3], tol)
}

// TestMVPPipeline composes projection ∘ view ∘ model and spot-checks that
// a model-space point ends up where the chain of individual applications
// puts it.
func TestMVPPipeline(t *testing.T) {
	model := transform.Rotation4(0, 0, math.Pi/2)
	view := transform.Translation4(0, 0, -5)
	proj := transform.Perspective(math.Pi/2, 1, 1, 10)

	mvp := proj.Mul(view).Mul(model)

	pt := [4]float64{1, 0, 0, 1}
	step := proj.MulVec(view.MulVec(model.MulVec(pt)))
	requireVec4InDelta(t, step, mvp.MulVec(pt))
}
