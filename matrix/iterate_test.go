// Package matrix_test contains unit tests for lazy row-major iteration.
package matrix_test

import (
	"testing"

	"github.com/mkalens/numera/matrix"
	"github.com/stretchr/testify/require"
)

// TestValuesRowMajorOrder verifies elements arrive row 0 left-to-right,
// then row 1, and so on.
func TestValuesRowMajorOrder(t *testing.T) {
	m, err := matrix.FromFlat(2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)

	var got []float64
	for v := range m.Values() {
		got = append(got, v)
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got) // exact row-major order
}

// TestValuesRestartable ensures ranging twice replays the full traversal.
func TestValuesRestartable(t *testing.T) {
	m, err := matrix.FromFlat(2, 2, 1, 2, 3, 4)
	require.NoError(t, err)

	seq := m.Values() // one sequence value, ranged twice
	var first, second []float64
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
	}
	require.Equal(t, first, second)           // identical replays
	require.Equal(t, []float64{1, 2, 3, 4}, first)
}

// TestValuesEarlyStop ensures breaking out of the range stops the sequence.
func TestValuesEarlyStop(t *testing.T) {
	m, err := matrix.FromFlat(2, 2, 1, 2, 3, 4)
	require.NoError(t, err)

	var got []float64
	for v := range m.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break // consumer stops early; yield must not be called again
		}
	}
	require.Equal(t, []float64{1, 2}, got)
}

// TestValuesOfGeneric verifies the interface-path iterator matches Values.
func TestValuesOfGeneric(t *testing.T) {
	m, err := matrix.FromFlat(2, 2, 9, 8, 7, 6)
	require.NoError(t, err)

	var fast, generic []float64
	for v := range m.Values() {
		fast = append(fast, v)
	}
	for v := range matrix.ValuesOf(m) {
		generic = append(generic, v)
	}
	require.Equal(t, fast, generic)
}
