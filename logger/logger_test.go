package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRestores(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	original := Logger()

	restore := Replace(zap.New(core))
	Sugar().Infof("replaced %d", 1)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "replaced 1", logs.All()[0].Message)

	restore()
	require.Same(t, original, Logger())
}

func TestReplaceNil(t *testing.T) {
	restore := Replace(nil)
	defer restore()
	require.NotNil(t, Logger())
	require.NotPanics(t, func() { Sugar().Errorf("dropped") })
}

func TestNewHonoursLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.ErrorLevel)
	l := New(level)
	require.Nil(t, l.Check(zapcore.InfoLevel, "hidden"))
	require.NotNil(t, l.Check(zapcore.ErrorLevel, "shown"))

	level.SetLevel(zap.DebugLevel)
	require.NotNil(t, l.Check(zapcore.DebugLevel, "now shown"))
}
