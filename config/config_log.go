package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

func (l LogLevel) String() string {
	return string(l)
}

// Valid reports whether l is a known level or one of its aliases.
func (l LogLevel) Valid() bool {
	_, ok := l.level()
	return ok
}

func (l LogLevel) Zap() zap.AtomicLevel {
	level, ok := l.level()
	if !ok {
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zap.NewAtomicLevelAt(level)
}

func (l LogLevel) level() (zapcore.Level, bool) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug, "trace":
		return zap.DebugLevel, true
	case LogLevelInfo, "information", "notice":
		return zap.InfoLevel, true
	case LogLevelWarn, "warning", "":
		return zap.WarnLevel, true
	case LogLevelError:
		return zap.ErrorLevel, true
	case LogLevelFatal:
		return zap.FatalLevel, true
	default:
		return zap.InfoLevel, false
	}
}

// Set implements pflag.Value.
func (l *LogLevel) Set(value string) error {
	candidate := LogLevel(strings.ToLower(strings.TrimSpace(value)))
	if !candidate.Valid() {
		return errors.Newf("unknown log level %q", value)
	}
	*l = candidate
	return nil
}

// Type implements pflag.Value.
func (l *LogLevel) Type() string {
	return "level"
}
