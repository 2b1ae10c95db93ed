// SPDX-License-Identifier: MIT
// Package vector: elementwise and scalar operation kernels.
// All kernels use the central validators and return plain sentinels wrapped
// with an operation tag via opErrorf. Out-of-place kernels allocate exactly
// one result vector; InPlace kernels allocate nothing.

package vector

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot-product style reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDot       = "Dot"
	opScale     = "Scale"
	opNormalize = "Normalize"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = v + sign*o elementwise for sign ∈ {+1, -1}.
// Shared kernel for Add/Sub/AddInPlace/SubInPlace.
// When inPlace is true the receiver's storage is reused; otherwise a fresh
// vector is allocated and the receiver stays untouched.
func (v *Vector) addSub(o *Vector, sign float64, inPlace bool, opTag string) (*Vector, error) {
	// Validate both operands are non-nil and have identical lengths
	if err := ValidateBinarySameLen(v, o); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Select destination storage
	dst := v
	if !inPlace {
		dst = &Vector{data: make([]float64, len(v.data))}
	}

	// Single flat loop, deterministic 0..n-1 order
	for i := range v.data {
		dst.data[i] = v.data[i] + sign*o.data[i]
	}

	return dst, nil
}

// Magnitude returns the Euclidean norm sqrt(Σ v[i]²).
// No side effects; a zero-length vector cannot exist post-construction, so
// the result is always well defined (0 for the all-zero vector).
// Complexity: O(n), Space O(1).
func (v *Vector) Magnitude() float64 {
	sum := ZeroSum
	for _, x := range v.data { // fixed order for deterministic accumulation
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Dot returns the scalar dot product Σ v[i]*o[i].
//
// Inputs:
//   - o: vector of the same length as the receiver.
//
// Returns:
//   - float64: the accumulated product.
//
// Errors:
//   - ErrNilVector          (o is nil).
//   - ErrDimensionMismatch  (lengths differ).
//
// Complexity: O(n), Space O(1).
func (v *Vector) Dot(o *Vector) (float64, error) {
	// Validate operands
	if err := ValidateBinarySameLen(v, o); err != nil {
		return 0, opErrorf(opDot, err)
	}

	// Accumulate in fixed 0..n-1 order
	sum := ZeroSum
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// Hadamard returns a new vector with the elementwise (Hadamard) product
// v[i]*o[i]. The receiver is not mutated.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(n) space for the result.
func (v *Vector) Hadamard(o *Vector) (*Vector, error) {
	if err := ValidateBinarySameLen(v, o); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] * o.data[i]
	}

	return &Vector{data: out}, nil
}

// HadamardInPlace multiplies the receiver elementwise by o, mutating the
// receiver, and returns it for chaining.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(1) space.
func (v *Vector) HadamardInPlace(o *Vector) (*Vector, error) {
	if err := ValidateBinarySameLen(v, o); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	for i := range v.data {
		v.data[i] *= o.data[i]
	}

	return v, nil
}

// Add returns a new vector with the elementwise sum v + o.
// The receiver is not mutated.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(n) space.
func (v *Vector) Add(o *Vector) (*Vector, error) { return v.addSub(o, +1, false, opAdd) }

// AddInPlace adds o into the receiver elementwise and returns the receiver.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(1) space.
func (v *Vector) AddInPlace(o *Vector) (*Vector, error) { return v.addSub(o, +1, true, opAdd) }

// Sub returns a new vector with the elementwise difference v - o.
// The receiver is not mutated.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(n) space.
func (v *Vector) Sub(o *Vector) (*Vector, error) { return v.addSub(o, -1, false, opSub) }

// SubInPlace subtracts o from the receiver elementwise and returns the receiver.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n) time, O(1) space.
func (v *Vector) SubInPlace(o *Vector) (*Vector, error) { return v.addSub(o, -1, true, opSub) }

// Scale returns a new vector with every element multiplied by k.
// The receiver is not mutated. NaN/Inf factors propagate.
// Complexity: O(n) time, O(n) space.
func (v *Vector) Scale(k float64) *Vector {
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] * k
	}

	return &Vector{data: out}
}

// ScaleInPlace multiplies every element of the receiver by k and returns
// the receiver for chaining.
// Complexity: O(n) time, O(1) space.
func (v *Vector) ScaleInPlace(k float64) *Vector {
	for i := range v.data {
		v.data[i] *= k
	}

	return v
}

// Normalize returns a fresh unit-length vector v / ‖v‖.
// The receiver is not mutated.
//
// Errors:
//   - ErrZeroMagnitude when ‖v‖ == 0; the kernel fails instead of
//     propagating ±Inf/NaN components.
//
// Complexity: O(n) time, O(n) space.
func (v *Vector) Normalize() (*Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, opErrorf(opNormalize, ErrZeroMagnitude)
	}

	return v.Scale(1 / mag), nil
}

// NormalizeInPlace scales the receiver to unit length and returns it for
// chaining.
//
// Errors: ErrZeroMagnitude when ‖v‖ == 0 (the receiver is left untouched).
// Complexity: O(n) time, O(1) space.
func (v *Vector) NormalizeInPlace() (*Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, opErrorf(opNormalize, ErrZeroMagnitude)
	}

	return v.ScaleInPlace(1 / mag), nil
}
