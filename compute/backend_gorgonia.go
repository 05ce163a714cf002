package compute

import (
	_ "github.com/expki/go-dotbench/env"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

type gorgoniaBackend struct {
	fallback Backend
}

// Gorgonia returns a backend running on gorgonia tensors. The quadratic form
// is evaluated as an expression graph on a tape machine.
// Operands with fewer than two entries per axis go through the native loops.
func Gorgonia() Backend {
	return &gorgoniaBackend{fallback: Native()}
}

func (*gorgoniaBackend) Name() string {
	return BackendGorgonia
}

func (b *gorgoniaBackend) Dot(a, x Vector) float64 {
	if len(a) < 2 {
		return b.fallback.Dot(a, x)
	}
	result, err := newDenseVector(a).Inner(newDenseVector(x))
	if err != nil {
		fatal(err, "tensor inner product")
	}
	return result.(float64)
}

func (b *gorgoniaBackend) MatVec(m Matrix, x Vector) Vector {
	if m.Rows() < 2 || len(x) < 2 {
		return b.fallback.MatVec(m, x)
	}
	result, err := newDenseMatrix(m).MatVecMul(newDenseVector(x))
	if err != nil {
		fatal(err, "tensor matrix vector product")
	}
	return Vector(result.Data().([]float64))
}

func (b *gorgoniaBackend) Square(m Matrix) Matrix {
	n := m.Rows()
	if n < 2 {
		return b.fallback.Square(m)
	}
	dense := newDenseMatrix(m)
	result, err := dense.MatMul(dense)
	if err != nil {
		fatal(err, "tensor matrix product")
	}
	return matrixFromFlat(result.Data().([]float64), n, n)
}

func (b *gorgoniaBackend) Quadratic(m Matrix, x Vector) float64 {
	n := len(x)
	if n < 2 {
		return b.fallback.Quadratic(m, x)
	}
	g := gorgonia.NewGraph()

	// Operands
	matrixNode := gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithShape(n, n), gorgonia.WithValue(newDenseMatrix(m)), gorgonia.WithName("m"))
	vectorNode := gorgonia.NewVector(g, tensor.Float64, gorgonia.WithShape(n), gorgonia.WithValue(newDenseVector(x)), gorgonia.WithName("x"))

	// x . (M . x)
	product, err := gorgonia.Mul(matrixNode, vectorNode)
	if err != nil {
		fatal(err, "graph matrix vector product")
	}
	quadratic, err := gorgonia.Mul(product, vectorNode)
	if err != nil {
		fatal(err, "graph inner product")
	}

	// Execute the graph
	machine := gorgonia.NewTapeMachine(g)
	defer machine.Close()
	if err = machine.RunAll(); err != nil {
		fatal(err, "graph execution")
	}
	return quadratic.Value().Data().(float64)
}

// newDenseVector copies v into a rank 1 tensor so the caller's slice is never aliased.
func newDenseVector(v Vector) *tensor.Dense {
	return tensor.New(tensor.WithBacking([]float64(v.Clone())), tensor.WithShape(len(v)))
}

func newDenseMatrix(m Matrix) *tensor.Dense {
	return tensor.New(tensor.WithBacking(m.flatten()), tensor.WithShape(m.Rows(), m.Cols()))
}
