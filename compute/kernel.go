package compute

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/expki/go-dotbench/logger"
)

// Kernel evaluates the dense products on a Backend.
//
// Methods come in two layers. Dot and the Try* methods validate dimensions and
// return an error wrapping ErrDimensionMismatch or ErrNonSquare. XDotX,
// MatrixDotVec, MatrixDotMatrix and VecDotMatrixDotVec assume the caller has
// already established compatible dimensions: a violation is reported as an
// assertion failure at fatal level and the process terminates without a result.
type Kernel struct {
	backend Backend
	tracer  Tracer
}

type Option func(*Kernel)

// WithBackend selects the backend, the native loops by default.
func WithBackend(backend Backend) Option {
	return func(k *Kernel) {
		k.backend = backend
	}
}

// WithTracer installs a tracer for MatrixDotMatrix. While a tracer is set the
// square always runs on the native loops so each pair is observed in order.
func WithTracer(tracer Tracer) Option {
	return func(k *Kernel) {
		k.tracer = tracer
	}
}

func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{}
	for _, opt := range opts {
		opt(k)
	}
	if k.backend == nil {
		k.backend = Native()
	}
	return k
}

// Backend returns the backend the kernel runs on.
func (k *Kernel) Backend() Backend {
	return k.backend
}

// Dot returns the inner product of a and x.
func (k *Kernel) Dot(a, x Vector) (float64, error) {
	if err := validateSameLength(a, x); err != nil {
		return 0, err
	}
	return k.backend.Dot(a, x), nil
}

// TryMatrixDotVec returns y with y[i] = m[i] . x.
func (k *Kernel) TryMatrixDotVec(m Matrix, x Vector) (Vector, error) {
	if err := validateRows(m, len(x)); err != nil {
		return nil, err
	}
	return k.backend.MatVec(m, x), nil
}

// TryMatrixDotMatrix returns m x m.
func (k *Kernel) TryMatrixDotMatrix(m Matrix) (Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, err
	}
	if k.tracer != nil {
		return squareTraced(m, k.tracer), nil
	}
	return k.backend.Square(m), nil
}

// TryVecDotMatrixDotVec returns x . (m . x).
func (k *Kernel) TryVecDotMatrixDotVec(m Matrix, x Vector) (float64, error) {
	if err := validateRows(m, len(x)); err != nil {
		return 0, err
	}
	if m.Rows() != len(x) {
		return 0, errors.Wrapf(ErrNonSquare, "%dx%d", m.Rows(), len(x))
	}
	return k.backend.Quadratic(m, x), nil
}

// XDotX returns x . x.
func (k *Kernel) XDotX(x Vector) float64 {
	sum, err := k.Dot(x, x)
	if err != nil {
		fatal(err, "unreachable: x . x")
	}
	return sum
}

// MatrixDotVec returns y with y[i] = m[i] . x. Every row must have len(x) entries.
func (k *Kernel) MatrixDotVec(m Matrix, x Vector) Vector {
	out, err := k.TryMatrixDotVec(m, x)
	if err != nil {
		fatal(err, "error in dot product")
	}
	return out
}

// MatrixDotMatrix returns the square of m, which must be square.
func (k *Kernel) MatrixDotMatrix(m Matrix) Matrix {
	out, err := k.TryMatrixDotMatrix(m)
	if err != nil {
		fatal(err, "error in matrix product")
	}
	return out
}

// VecDotMatrixDotVec returns the quadratic form x . (m . x) for a square m of order len(x).
func (k *Kernel) VecDotMatrixDotVec(m Matrix, x Vector) float64 {
	sum, err := k.TryVecDotMatrixDotVec(m, x)
	if err != nil {
		fatal(err, "error in quadratic form")
	}
	return sum
}

// fatal logs err as an assertion failure and terminates.
func fatal(err error, format string, args ...interface{}) {
	err = errors.NewAssertionErrorWithWrappedErrf(err, format, args...)
	logger.Logger().Fatal("kernel invariant violated", zap.Error(err))
	// Custom fatal hooks may return.
	panic(err)
}

var defaultKernel = NewKernel()

// Dot returns the inner product of a and x on the native backend.
func Dot(a, x Vector) (float64, error) {
	return defaultKernel.Dot(a, x)
}

func TryMatrixDotVec(m Matrix, x Vector) (Vector, error) {
	return defaultKernel.TryMatrixDotVec(m, x)
}

func TryMatrixDotMatrix(m Matrix) (Matrix, error) {
	return defaultKernel.TryMatrixDotMatrix(m)
}

func TryVecDotMatrixDotVec(m Matrix, x Vector) (float64, error) {
	return defaultKernel.TryVecDotMatrixDotVec(m, x)
}

// XDotX returns x . x on the native backend.
func XDotX(x Vector) float64 {
	return defaultKernel.XDotX(x)
}

// MatrixDotVec returns m . x on the native backend, terminating on a dimension mismatch.
func MatrixDotVec(m Matrix, x Vector) Vector {
	return defaultKernel.MatrixDotVec(m, x)
}

// MatrixDotMatrix returns m x m on the native backend, terminating when m is not square.
func MatrixDotMatrix(m Matrix) Matrix {
	return defaultKernel.MatrixDotMatrix(m)
}

// VecDotMatrixDotVec returns x . (m . x) on the native backend, terminating on a dimension mismatch.
func VecDotMatrixDotVec(m Matrix, x Vector) float64 {
	return defaultKernel.VecDotMatrixDotVec(m, x)
}
