package compute

import "github.com/cockroachdb/errors"

func validateSameLength(a, x Vector) error {
	if len(a) != len(x) {
		return errors.Wrapf(ErrDimensionMismatch, "vector lengths %d and %d", len(a), len(x))
	}
	return nil
}

// validateRows checks that every row of m has cols entries.
func validateRows(m Matrix, cols int) error {
	for i, row := range m {
		if len(row) != cols {
			return errors.Wrapf(ErrDimensionMismatch, "row %d has length %d, want %d", i, len(row), cols)
		}
	}
	return nil
}

func validateSquare(m Matrix) error {
	n := m.Rows()
	if n > 0 && m.Cols() != n {
		return errors.Wrapf(ErrNonSquare, "%dx%d", n, m.Cols())
	}
	return validateRows(m, n)
}
