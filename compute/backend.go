package compute

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Backend executes the kernels on operands whose dimensions the Kernel has
// already validated: Dot gets equal lengths, MatVec gets len(x) columns in
// every row, Square and Quadratic get a square matrix of order len(x).
type Backend interface {
	Name() string
	Dot(a, x Vector) float64
	MatVec(m Matrix, x Vector) Vector
	Square(m Matrix) Matrix
	Quadratic(m Matrix, x Vector) float64
}

const (
	BackendNative   = "native"
	BackendGonum    = "gonum"
	BackendGorgonia = "gorgonia"
)

var backends = map[string]func() Backend{
	BackendNative:   func() Backend { return Native() },
	BackendGonum:    func() Backend { return Gonum() },
	BackendGorgonia: func() Backend { return Gorgonia() },
}

// BackendByName returns the backend registered under name.
func BackendByName(name string) (Backend, error) {
	create, ok := backends[name]
	if !ok {
		return nil, errors.Newf("unknown backend %q, expected one of %v", name, Backends())
	}
	return create(), nil
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
