// SPDX-License-Identifier: MIT
// Package vector: the Vector type, constructors and accessors.
// Vector is a flat float64 slice with an immutable length. Operations live
// in ops.go; validators live in validators.go.

package vector

import (
	"fmt"
	"strings"
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a fixed-length ordered sequence of float64 values.
// The length never changes after construction; values may be mutated via
// Set or the InPlace operation variants. The zero value is not usable;
// construct via New, FromSlice or Zero.
type Vector struct {
	data []float64 // flat backing storage, length fixed at construction
}

// New constructs a Vector from variadic values.
// Stage 1 (Validate): at least one value is required.
// Stage 2 (Prepare): copy values into owned storage.
// Stage 3 (Finalize): return the new Vector or ErrEmptyVector.
// Complexity: O(n) time and memory.
func New(vals ...float64) (*Vector, error) {
	// Validate non-empty input
	if len(vals) == 0 {
		return nil, vectorErrorf("New", ErrEmptyVector)
	}
	// Copy into owned storage; the caller keeps its slice
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Vector{data: data}, nil
}

// FromSlice constructs a Vector from an ordered sequence of values.
// The input slice is copied; later mutation of vals does not affect the
// vector (deep ownership, no shared backing storage).
// Complexity: O(n) time and memory.
func FromSlice(vals []float64) (*Vector, error) {
	if len(vals) == 0 {
		return nil, vectorErrorf("FromSlice", ErrEmptyVector)
	}
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Vector{data: data}, nil
}

// Zero constructs a Vector of length n with every element set to 0.
// Returns ErrEmptyVector when n <= 0.
// Complexity: O(n).
func Zero(n int) (*Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf("Zero", ErrEmptyVector)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector) Len() int {
	return len(v.data) // immutable after construction
}

// At retrieves the element at index i.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf("At", ErrIndexOutOfBounds)
	}

	return v.data[i], nil
}

// Set assigns value x at index i.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf("Set", ErrIndexOutOfBounds)
	}
	v.data[i] = x

	return nil
}

// ToSlice returns a copy of the underlying values.
// The returned slice is independent of the vector (mutating it does not
// affect the vector and vice versa).
// Complexity: O(n).
func (v *Vector) ToSlice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &Vector{data: data}
}

// Equal reports whether v and o have the same length and identical
// elements (exact float64 comparison; use numutil.EqualSlices for
// tolerance-based comparison).
// Complexity: O(n).
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data { // fixed 0..n-1 order
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, e.g. "[1, 2, 3]".
// Complexity: O(n) for string construction.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", x))
	}
	sb.WriteByte(']')

	return sb.String()
}
