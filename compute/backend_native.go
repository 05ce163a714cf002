package compute

type native struct{}

// Native returns the plain loop backend. Results are reproducible bit for bit.
func Native() Backend {
	return native{}
}

func (native) Name() string {
	return BackendNative
}

func (native) Dot(a, x Vector) (sum float64) {
	for i := range a {
		sum += a[i] * x[i]
	}
	return sum
}

func (b native) MatVec(m Matrix, x Vector) Vector {
	out := make(Vector, len(m))
	for i, row := range m {
		out[i] = b.Dot(row, x)
	}
	return out
}

func (b native) Square(m Matrix) Matrix {
	return squareTraced(m, nil)
}

func (b native) Quadratic(m Matrix, x Vector) float64 {
	return b.Dot(b.MatVec(m, x), x)
}

// squareTraced computes m x m walking i, then j, then k, reporting every pair to tracer when set.
func squareTraced(m Matrix, tracer Tracer) Matrix {
	n := len(m)
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				a, b := m[i][k], m[k][j]
				if tracer != nil {
					tracer.TracePair(i, j, a, b)
				}
				sum += a * b
			}
			out[i][j] = sum
		}
	}
	return out
}
