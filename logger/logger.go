// Package logger holds the process wide zap logger.
package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(New(zap.NewAtomicLevelAt(zap.WarnLevel)))
}

// New creates a console logger writing to stderr at the given level.
// Stdout is left to benchmark results.
func New(level zap.AtomicLevel) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.DPanicLevel))
}

// Initialize replaces the process logger with a console logger at level.
func Initialize(level zap.AtomicLevel) {
	Replace(New(level))
}

// Replace installs l as the process logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	previous := current.Swap(l)
	return func() {
		current.Store(previous)
	}
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	return current.Load()
}

// Sugar returns the process logger wrapped in a SugaredLogger.
func Sugar() *zap.SugaredLogger {
	return current.Load().Sugar()
}

// Sync flushes any buffered log entries.
func Sync() error {
	return current.Load().Sync()
}
