// Package numutil_test: approximate comparison tests.
package numutil_test

import (
	"math"
	"testing"

	"github.com/mkalens/numera/numutil"
	"github.com/stretchr/testify/require"
)

// TestEqualApprox covers the tolerance boundary and NaN.
func TestEqualApprox(t *testing.T) {
	require.True(t, numutil.EqualApprox(1.0, 1.0, 0))
	require.True(t, numutil.EqualApprox(1.0, 1.0+1e-13, 1e-12))
	require.False(t, numutil.EqualApprox(1.0, 1.1, 1e-12))
	require.True(t, numutil.EqualApprox(1.0, 1.5, 0.5)) // boundary inclusive
	require.False(t, numutil.EqualApprox(math.NaN(), math.NaN(), 1))
}

// TestEqualSlices covers length mismatch and elementwise tolerance.
func TestEqualSlices(t *testing.T) {
	require.True(t, numutil.EqualSlices(nil, nil, 0))
	require.True(t, numutil.EqualSlices([]float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12))
	require.False(t, numutil.EqualSlices([]float64{1, 2}, []float64{1}, 1))
	require.False(t, numutil.EqualSlices([]float64{1, 2}, []float64{1, 3}, 1e-12))
}
