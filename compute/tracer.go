package compute

import (
	"io"
	"strconv"

	"go.uber.org/zap"
)

// Tracer observes every multiplied pair while a matrix is squared. TracePair is
// called with the output cell (i, j) and the factors a = m[i][k], b = m[k][j]
// before their product is accumulated.
type Tracer interface {
	TracePair(i, j int, a, b float64)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(i, j int, a, b float64)

func (f TracerFunc) TracePair(i, j int, a, b float64) {
	f(i, j, a, b)
}

// WriterTracer writes one "(i:<i>,j:<j>) a:<a> b:<b>" line per pair to w.
// Write errors are ignored.
func WriterTracer(w io.Writer) Tracer {
	var buf []byte
	return TracerFunc(func(i, j int, a, b float64) {
		buf = buf[:0]
		buf = append(buf, "(i:"...)
		buf = strconv.AppendInt(buf, int64(i), 10)
		buf = append(buf, ",j:"...)
		buf = strconv.AppendInt(buf, int64(j), 10)
		buf = append(buf, ") a:"...)
		buf = append(buf, FormatFloat(a)...)
		buf = append(buf, " b:"...)
		buf = append(buf, FormatFloat(b)...)
		buf = append(buf, '\n')
		_, _ = w.Write(buf)
	})
}

// LogTracer emits one debug entry per pair to l.
func LogTracer(l *zap.Logger) Tracer {
	return TracerFunc(func(i, j int, a, b float64) {
		if ce := l.Check(zap.DebugLevel, "matrix square pair"); ce != nil {
			ce.Write(zap.Int("i", i), zap.Int("j", j), zap.Float64("a", a), zap.Float64("b", b))
		}
	})
}
