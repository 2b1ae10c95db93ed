// Package vector_test contains unit tests for the Vector type and its
// constructors in the vector package.
package vector_test

import (
	"testing"

	"github.com/mkalens/numera/vector"
	"github.com/stretchr/testify/require"
)

// TestNewEmpty ensures that New and FromSlice reject empty input.
func TestNewEmpty(t *testing.T) {
	_, err := vector.New()                            // no values at all
	require.ErrorIs(t, err, vector.ErrEmptyVector)    // expect ErrEmptyVector
	_, err = vector.FromSlice(nil)                    // nil slice
	require.ErrorIs(t, err, vector.ErrEmptyVector)    // expect ErrEmptyVector
	_, err = vector.FromSlice([]float64{})            // empty slice
	require.ErrorIs(t, err, vector.ErrEmptyVector)    // expect ErrEmptyVector
	_, err = vector.Zero(0)                           // zero length
	require.ErrorIs(t, err, vector.ErrEmptyVector)    // expect ErrEmptyVector
	_, err = vector.Zero(-3)                          // negative length
	require.ErrorIs(t, err, vector.ErrEmptyVector)    // expect ErrEmptyVector
}

// TestNewVariadic verifies construction from variadic values.
func TestNewVariadic(t *testing.T) {
	v, err := vector.New(1, 2, 3)                    // three-element vector
	require.NoError(t, err)                          // construction succeeds
	require.Equal(t, 3, v.Len())                     // length matches
	require.Equal(t, []float64{1, 2, 3}, v.ToSlice()) // values preserved in order
}

// TestFromSliceCopies ensures FromSlice deep-copies its input.
func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2}
	v, err := vector.FromSlice(src) // construct from slice
	require.NoError(t, err)

	src[0] = 99 // mutate the caller's slice afterwards

	x, err := v.At(0)          // read back element 0
	require.NoError(t, err)    // read succeeds
	require.Equal(t, 1.0, x)   // vector kept its own copy
}

// TestAtSetBounds ensures At and Set return ErrIndexOutOfBounds on invalid indices.
func TestAtSetBounds(t *testing.T) {
	v, err := vector.New(1, 2)
	require.NoError(t, err)

	_, err = v.At(-1)                                  // negative index
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
	_, err = v.At(2)                                   // index == Len
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
	err = v.Set(5, 1.0)                                // far out of range
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
}

// TestToSliceIndependence ensures ToSlice returns a copy, not a view.
func TestToSliceIndependence(t *testing.T) {
	v, err := vector.New(1, 2)
	require.NoError(t, err)

	out := v.ToSlice()
	out[0] = 42 // mutate the exported slice

	x, err := v.At(0)        // original must be unchanged
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
}

// TestCloneIndependence ensures Clone returns a deep copy with no shared storage.
func TestCloneIndependence(t *testing.T) {
	v, err := vector.New(1, 2)
	require.NoError(t, err)

	c := v.Clone()          // deep copy
	require.True(t, v.Equal(c))
	require.NoError(t, c.Set(0, 7)) // mutate the clone only

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x) // original untouched
	require.False(t, v.Equal(c))
}

// TestStringOutput checks the debug representation.
func TestStringOutput(t *testing.T) {
	v, err := vector.New(1, 2.5, -3)
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5, -3]", v.String())
}
