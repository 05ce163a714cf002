package compute

// Vector is a fixed length sequence of float64.
type Vector []float64

// NewVector returns a zeroed vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	clone := make(Vector, len(v))
	copy(clone, v)
	return clone
}

// Matrix is a row-major sequence of rows.
type Matrix []Vector

// NewMatrix returns a zeroed rows x cols matrix whose rows share one backing array.
func NewMatrix(rows, cols int) Matrix {
	backing := make([]float64, rows*cols)
	matrix := make(Matrix, rows)
	for i := range matrix {
		matrix[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return matrix
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, 0 for a matrix without rows.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	clone := make(Matrix, len(m))
	for i, row := range m {
		clone[i] = row.Clone()
	}
	return clone
}

// flatten copies a rectangular matrix into a single row-major slice.
func (m Matrix) flatten() []float64 {
	rows, cols := m.Rows(), m.Cols()
	flat := make([]float64, rows*cols)
	for i, row := range m {
		copy(flat[i*cols:], row)
	}
	return flat
}

// matrixFromFlat wraps a row-major slice as a rows x cols matrix without copying.
func matrixFromFlat(flat []float64, rows, cols int) Matrix {
	matrix := make(Matrix, rows)
	for i := range matrix {
		matrix[i] = Vector(flat[i*cols : (i+1)*cols : (i+1)*cols])
	}
	return matrix
}
