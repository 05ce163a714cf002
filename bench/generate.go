package bench

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/expki/go-dotbench/compute"
	"github.com/expki/go-dotbench/config"
)

// unitSteps is the number of equal steps the unit interval is split into, so
// that both ends of the closed range can be drawn.
const unitSteps = 1 << 53

// NewSource returns a PCG random source and the seed it was built from.
// A zero seed is replaced by one read from the operating system.
func NewSource(seed uint64) (rng *rand.Rand, used uint64) {
	if seed == 0 {
		raw := make([]byte, 8)
		_, err := crand.Read(raw)
		if err == nil {
			seed = binary.LittleEndian.Uint64(raw)
		} else {
			seed = uint64(time.Now().UnixNano())
		}
		if seed == 0 {
			seed = 1
		}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// uniform draws from the closed range [min, max].
func uniform(rng *rand.Rand, min, max float64) float64 {
	return scale(rng.Uint64N(unitSteps+1), min, max)
}

// scale maps step in [0, unitSteps] linearly onto [min, max].
func scale(step uint64, min, max float64) float64 {
	return min + float64(step)/unitSteps*(max-min)
}

// RandomVector returns dim values drawn uniformly from [VALUE_MIN, VALUE_MAX].
func RandomVector(rng *rand.Rand, dim int) compute.Vector {
	vector := compute.NewVector(dim)
	for i := range vector {
		vector[i] = uniform(rng, config.VALUE_MIN, config.VALUE_MAX)
	}
	return vector
}

// RandomMatrix returns a dim x dim matrix filled row by row like RandomVector.
// Row progress is drawn on progress when it is not nil.
func RandomMatrix(rng *rand.Rand, dim int, progress io.Writer) compute.Matrix {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(dim,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Generating matrix"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(10),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				io.WriteString(progress, "\n")
			}),
		)
	}
	matrix := compute.NewMatrix(dim, dim)
	for _, row := range matrix {
		for j := range row {
			row[j] = uniform(rng, config.VALUE_MIN, config.VALUE_MAX)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Close()
	}
	return matrix
}
