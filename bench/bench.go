// Package bench times the compute kernels on random data and prints the results.
package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"

	"github.com/expki/go-dotbench/compute"
	"github.com/expki/go-dotbench/config"
	"github.com/expki/go-dotbench/logger"
)

type runner struct {
	kernel *compute.Kernel
	vector compute.Vector
	matrix compute.Matrix
}

// Run generates a random vector and square matrix of cfg.Dimension and times
// every configured case cfg.Iterations times, writing the report to out.
// Progress bars go to stderr.
func Run(ctx context.Context, cfg config.Config, out io.Writer) (err error) {
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	backend, err := compute.BackendByName(cfg.Backend)
	if err != nil {
		return err
	}
	opts := []compute.Option{compute.WithBackend(backend)}
	if cfg.Trace {
		opts = append(opts, compute.WithTracer(compute.WriterTracer(out)))
	}

	rng, seed := NewSource(cfg.Seed)
	logger.Sugar().Infof("generating data: dimension %d, seed %d", cfg.Dimension, seed)
	var progress io.Writer
	if cfg.Progress {
		progress = os.Stderr
	}
	start := time.Now()
	r := &runner{kernel: compute.NewKernel(opts...)}
	r.vector = RandomVector(rng, cfg.Dimension)
	r.matrix = RandomMatrix(rng, cfg.Dimension, progress)
	logger.Sugar().Debugf("data generated (%dms)", time.Since(start).Milliseconds())

	fmt.Fprintln(out, "Benchmarking:")
	for _, benchCase := range cfg.Cases {
		var (
			report  string
			timings = make([]float64, 0, cfg.Iterations)
		)
		for iteration := 0; iteration < cfg.Iterations; iteration++ {
			if err = ctx.Err(); err != nil {
				logger.Sugar().Warnf("benchmark canceled during %s", benchCase)
				return err
			}
			line, seconds := r.measure(benchCase)
			if iteration == 0 {
				report = line
			}
			timings = append(timings, seconds)
			logger.Sugar().Debugf("%s run %d took %ss (backend %s)", benchCase, iteration+1, compute.FormatFloat(seconds), backend.Name())
		}
		fmt.Fprintf(out, "%s\nTime: %ss\n", report, compute.FormatFloat(timings[0]))
		if len(timings) > 1 {
			summary, err := summarize(timings)
			if err != nil {
				return errors.Wrapf(err, "summarize %s", benchCase)
			}
			fmt.Fprintln(out, summary)
		}
	}
	return nil
}

// measure runs one case and returns its report line and the elapsed seconds.
// Formatting happens after the clock is read.
func (r *runner) measure(benchCase config.Case) (line string, seconds float64) {
	start := time.Now()
	switch benchCase {
	case config.CaseXDotX:
		innerProduct := r.kernel.XDotX(r.vector)
		seconds = elapsedSeconds(start)
		line = "x . x : " + compute.FormatFloat(innerProduct)
	case config.CaseMatVec:
		result := r.kernel.MatrixDotVec(r.matrix, r.vector)
		seconds = elapsedSeconds(start)
		line = fmt.Sprintf("Vector length: %d", len(result))
	case config.CaseSquare:
		result := r.kernel.MatrixDotMatrix(r.matrix)
		seconds = elapsedSeconds(start)
		line = fmt.Sprintf("Matrix size: %dx%d", result.Rows(), result.Cols())
	case config.CaseQuadratic:
		quadratic := r.kernel.VecDotMatrixDotVec(r.matrix, r.vector)
		seconds = elapsedSeconds(start)
		line = "x . M . x : " + compute.FormatFloat(quadratic)
	default:
		logger.Sugar().Fatalf("unknown benchmark case %q", benchCase)
	}
	return line, seconds
}

// summarize renders mean, median and standard deviation of timings rounded to milliseconds.
func summarize(timings []float64) (string, error) {
	data := stats.Float64Data(timings)
	mean, err := data.Mean()
	if err != nil {
		return "", err
	}
	median, err := data.Median()
	if err != nil {
		return "", err
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return "", err
	}
	values := []float64{mean, median, stddev}
	for i, value := range values {
		if values[i], err = stats.Round(value, 3); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Runs: %d Mean: %ss Median: %ss StdDev: %ss",
		len(timings), compute.FormatFloat(values[0]), compute.FormatFloat(values[1]), compute.FormatFloat(values[2])), nil
}
