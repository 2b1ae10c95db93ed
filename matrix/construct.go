// SPDX-License-Identifier: MIT

// Package matrix: construction protocols.
// Named factories replace argument-shape sniffing: each protocol has its own
// validated contract and its own sentinel on violation.
package matrix

import (
	"fmt"

	"github.com/mkalens/numera/vector"
)

// constructErrorf wraps an underlying error with factory context.
func constructErrorf(factory string, err error) error {
	return fmt.Errorf("%s: %w", factory, err)
}

// FromRows builds a Dense from a nested sequence of rows.
//
// Contract:
//   - at least one row, each row non-empty;
//   - every row has exactly len(rows[0]) elements, else ErrShapeMismatch.
//
// The input is deep-copied; later mutation of rows does not affect the matrix.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, constructErrorf("FromRows", ErrInvalidDimensions)
	}

	height, width := len(rows), len(rows[0])
	m, err := NewDense(height, width)
	if err != nil {
		return nil, constructErrorf("FromRows", err)
	}

	// Copy row by row, rejecting ragged input
	for i, row := range rows {
		if len(row) != width {
			return nil, constructErrorf(fmt.Sprintf("FromRows: row %d", i), ErrShapeMismatch)
		}
		copy(m.data[i*width:(i+1)*width], row)
	}

	return m, nil
}

// New builds a Dense from variadic row slices:
//
//	m, err := matrix.New(
//	    []float64{1, 2, 3},
//	    []float64{4, 5, 6},
//	)
//
// Same contract as FromRows; the two protocols differ only in how the rows
// are supplied (one nested container vs separate arguments).
// Complexity: O(r*c).
func New(rows ...[]float64) (*Dense, error) {
	return FromRows(rows)
}

// FromColumns builds a Dense from a sequence of vectors, each interpreted
// as one column: width = number of vectors, height = vector length.
//
// Contract:
//   - at least one vector, none nil (ErrNilMatrix family via vector.ErrNilVector);
//   - all vectors share the same length, else ErrDimensionMismatch.
//
// Complexity: O(r*c).
func FromColumns(cols ...*vector.Vector) (*Dense, error) {
	// Validate outer shape
	if len(cols) == 0 {
		return nil, constructErrorf("FromColumns", ErrInvalidDimensions)
	}
	if cols[0] == nil {
		return nil, constructErrorf("FromColumns: column 0", vector.ErrNilVector)
	}

	height, width := cols[0].Len(), len(cols)
	m, err := NewDense(height, width)
	if err != nil {
		return nil, constructErrorf("FromColumns", err)
	}

	// Write column by column; every vector must match the first's length
	var i, j int
	var x float64
	for j = 0; j < width; j++ {
		if cols[j] == nil {
			return nil, constructErrorf(fmt.Sprintf("FromColumns: column %d", j), vector.ErrNilVector)
		}
		if cols[j].Len() != height {
			return nil, constructErrorf(fmt.Sprintf("FromColumns: column %d", j), ErrDimensionMismatch)
		}
		for i = 0; i < height; i++ {
			x, err = cols[j].At(i)
			if err != nil {
				return nil, constructErrorf(fmt.Sprintf("FromColumns: column %d", j), err)
			}
			m.data[i*width+j] = x
		}
	}

	return m, nil
}

// FromFlat builds a Dense from two size integers followed by exactly
// rows*cols scalar values in row-major order.
//
// Contract:
//   - rows, cols > 0 (ErrInvalidDimensions);
//   - len(vals) == rows*cols, else ErrShapeMismatch.
//
// Complexity: O(r*c).
func FromFlat(rows, cols int, vals ...float64) (*Dense, error) {
	// Validate dimensions first so the count check is well defined
	if rows <= 0 || cols <= 0 {
		return nil, constructErrorf("FromFlat", ErrInvalidDimensions)
	}
	// The scalar count must match the declared shape exactly
	if len(vals) != rows*cols {
		return nil, constructErrorf("FromFlat", ErrShapeMismatch)
	}

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, constructErrorf("FromFlat", err)
	}
	copy(m.data, vals)

	return m, nil
}

// Identity returns the size×size matrix with 1 on the diagonal and 0
// elsewhere. Returns ErrInvalidDimensions for size <= 0.
// Complexity: O(size²).
func Identity(size int) (*Dense, error) {
	m, err := NewDense(size, size)
	if err != nil {
		return nil, constructErrorf("Identity", err)
	}
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1.0
	}

	return m, nil
}

// Row returns row i of the matrix as a fresh vector.
// Returns ErrIndexOutOfBounds for an invalid row index.
// Complexity: O(c).
func (m *Dense) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}

	return vector.FromSlice(m.data[i*m.c : (i+1)*m.c])
}

// Col returns column j of the matrix as a fresh vector.
// Returns ErrIndexOutOfBounds for an invalid column index.
// Complexity: O(r).
func (m *Dense) Col(j int) (*vector.Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return vector.FromSlice(out)
}
