package compute

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkV Vector
	sinkM Matrix
)

func benchKernels(b *testing.B, run func(b *testing.B, kernel *Kernel, m Matrix, x Vector)) {
	for _, name := range Backends() {
		backend, err := BackendByName(name)
		if err != nil {
			b.Fatal(err)
		}
		kernel := NewKernel(WithBackend(backend))
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				rng := rand.New(rand.NewPCG(uint64(n), 1337))
				m := randomMatrix(rng, n, n)
				x := randomVector(rng, n)
				b.ReportAllocs()
				b.ResetTimer()
				run(b, kernel, m, x)
			})
		}
	}
}

func BenchmarkXDotX(b *testing.B) {
	benchKernels(b, func(b *testing.B, kernel *Kernel, _ Matrix, x Vector) {
		for i := 0; i < b.N; i++ {
			sinkF = kernel.XDotX(x)
		}
	})
}

func BenchmarkMatrixDotVec(b *testing.B) {
	benchKernels(b, func(b *testing.B, kernel *Kernel, m Matrix, x Vector) {
		for i := 0; i < b.N; i++ {
			sinkV = kernel.MatrixDotVec(m, x)
		}
	})
}

func BenchmarkMatrixDotMatrix(b *testing.B) {
	benchKernels(b, func(b *testing.B, kernel *Kernel, m Matrix, _ Vector) {
		for i := 0; i < b.N; i++ {
			sinkM = kernel.MatrixDotMatrix(m)
		}
	})
}

func BenchmarkVecDotMatrixDotVec(b *testing.B) {
	benchKernels(b, func(b *testing.B, kernel *Kernel, m Matrix, x Vector) {
		for i := 0; i < b.N; i++ {
			sinkF = kernel.VecDotMatrixDotVec(m, x)
		}
	})
}
