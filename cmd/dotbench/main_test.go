package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expki/go-dotbench/config"
	"github.com/expki/go-dotbench/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(logger.Replace(logger.Logger()))
	command := makeDotbenchCommand()
	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestDimensionArgument(t *testing.T) {
	out, err := execute(t, "5", "--seed=3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Benchmarking:\nx . x : "), out)
	require.Contains(t, out, "\nVector length: 5\n")
}

func TestCasesFlag(t *testing.T) {
	out, err := execute(t, "2", "--cases=quadratic", "--backend=gonum", "--iterations=2")
	require.NoError(t, err)
	require.Contains(t, out, "x . M . x : ")
	require.Contains(t, out, "Runs: 2 ")
	require.NotContains(t, out, "Vector length")
}

func TestInvalidArguments(t *testing.T) {
	for name, args := range map[string][]string{
		"dimension":  {"many"},
		"negative":   {"--", "-3"},
		"extra args": {"3", "4"},
		"case":       {"3", "--cases=cholesky"},
		"backend":    {"3", "--backend=cuda"},
		"log level":  {"3", "--log-level=loud"},
		"iterations": {"3", "--iterations=0"},
		"config":     {"3", "--config=" + filepath.Join(t.TempDir(), "missing.json")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotbench.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dimension": 12, "iterations": 4, "backend": "gorgonia", "cases": ["square"]}`), 0600))

	command := makeDotbenchCommand()
	require.NoError(t, command.ParseFlags([]string{"--config=" + path, "--iterations=2", "--trace"}))

	var flags flagValues
	flags.configPath = path
	flags.iterations = 2
	flags.trace = true
	flags.logLevel = config.LogLevelWarn
	cfg, err := loadConfig(command.Flags(), flags, []string{"7"})
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Dimension)
	require.Equal(t, 2, cfg.Iterations)
	require.Equal(t, "gorgonia", cfg.Backend)
	require.Equal(t, []config.Case{config.CaseSquare}, cfg.Cases)
	require.True(t, cfg.Trace)
	require.False(t, cfg.Progress)
}

func TestSampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	out, err := execute(t, "sample", path)
	require.NoError(t, err)
	require.Contains(t, out, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = config.ParseConfig(raw)
	require.NoError(t, err)
}
