package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, Default(), config)
	require.Equal(t, 3000, config.Dimension)
	require.Equal(t, []Case{CaseXDotX, CaseMatVec}, config.Cases)
}

func TestParseConfigOverlay(t *testing.T) {
	config, err := ParseConfig([]byte(`{
		"dimension": 16,
		"seed": 7,
		"iterations": 3,
		"cases": ["square", "quadratic"],
		"backend": "gonum",
		"trace": true,
		"log_level": "debug"
	}`))
	require.NoError(t, err)
	require.Equal(t, 16, config.Dimension)
	require.Equal(t, uint64(7), config.Seed)
	require.Equal(t, 3, config.Iterations)
	require.Equal(t, []Case{CaseSquare, CaseQuadratic}, config.Cases)
	require.Equal(t, "gonum", config.Backend)
	require.True(t, config.Trace)
	require.False(t, config.Progress)
	require.Equal(t, LogLevelDebug, config.LogLevel)
}

func TestParseConfigInvalid(t *testing.T) {
	for name, raw := range map[string]string{
		"malformed":      `{"dimension":`,
		"zero dimension": `{"dimension": 0}`,
		"iterations":     `{"iterations": -1}`,
		"no cases":       `{"cases": []}`,
		"unknown case":   `{"cases": ["transpose"]}`,
		"empty backend":  `{"backend": " "}`,
		"log level":      `{"log_level": "loud"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestParseCases(t *testing.T) {
	cases, err := ParseCases(" XDotX, matvec,,quadratic ")
	require.NoError(t, err)
	require.Equal(t, []Case{CaseXDotX, CaseMatVec, CaseQuadratic}, cases)

	_, err = ParseCases("matvec,cholesky")
	require.ErrorContains(t, err, "cholesky")

	_, err = ParseCases(" , ")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	require.Equal(t, zap.DebugLevel, LogLevel("trace").Zap().Level())
	require.Equal(t, zap.InfoLevel, LogLevelInfo.Zap().Level())
	require.Equal(t, zap.WarnLevel, LogLevel("").Zap().Level())
	require.Equal(t, zap.ErrorLevel, LogLevelError.Zap().Level())
	require.Equal(t, zap.WarnLevel, LogLevel("loud").Zap().Level())

	var level LogLevel
	require.NoError(t, level.Set(" Warning "))
	require.Equal(t, LogLevel("warning"), level)
	require.Equal(t, zap.WarnLevel, level.Zap().Level())
	require.Error(t, level.Set("loud"))
	require.Equal(t, "level", level.Type())
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, CreateSample(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	config, err := ParseConfig(raw)
	require.NoError(t, err)
	require.Equal(t, Cases(), config.Cases)
	require.Equal(t, uint64(42), config.Seed)
	require.Equal(t, LogLevelInfo, config.LogLevel)
}

func TestCreateSampleUnwritable(t *testing.T) {
	err := CreateSample(filepath.Join(t.TempDir(), "missing", "sample.json"))
	require.ErrorContains(t, err, "could not write sample config file")
}
