package compute

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type gonumBackend struct {
	impl blas.Float64
}

// Gonum returns a backend running on gonum's BLAS implementation.
func Gonum() Backend {
	return &gonumBackend{impl: blas64.Implementation()}
}

func (*gonumBackend) Name() string {
	return BackendGonum
}

func (g *gonumBackend) Dot(a, x Vector) float64 {
	if len(a) == 0 {
		return 0
	}
	return g.impl.Ddot(len(a), a, 1, x, 1)
}

func (g *gonumBackend) MatVec(m Matrix, x Vector) Vector {
	rows, cols := m.Rows(), len(x)
	out := make(Vector, rows)
	if rows == 0 || cols == 0 {
		return out
	}
	general := blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: m.flatten()}
	blas64.Gemv(blas.NoTrans, 1, general, blas64.Vector{N: cols, Inc: 1, Data: x}, 0, blas64.Vector{N: rows, Inc: 1, Data: out})
	return out
}

func (g *gonumBackend) Square(m Matrix) Matrix {
	n := m.Rows()
	if n == 0 {
		return Matrix{}
	}
	a := blas64.General{Rows: n, Cols: n, Stride: n, Data: m.flatten()}
	c := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	// C = A * A
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, a, a, 0, c)
	return matrixFromFlat(c.Data, n, n)
}

func (g *gonumBackend) Quadratic(m Matrix, x Vector) float64 {
	return g.Dot(g.MatVec(m, x), x)
}
