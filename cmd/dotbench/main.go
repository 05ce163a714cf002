package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/expki/go-dotbench/bench"
	"github.com/expki/go-dotbench/compute"
	"github.com/expki/go-dotbench/config"
	"github.com/expki/go-dotbench/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := makeDotbenchCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		logger.Sugar().Fatalf("dotbench: %v", err)
	}
}

// flagValues holds flag values until they are applied over the loaded config.
type flagValues struct {
	configPath string
	seed       uint64
	iterations int
	cases      string
	backend    string
	trace      bool
	progress   bool
	logLevel   config.LogLevel
}

func makeDotbenchCommand() *cobra.Command {
	var flags flagValues
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags(), flags, args)
		if err != nil {
			return err
		}
		logger.Initialize(cfg.LogLevel.Zap())
		return bench.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	}

	command := &cobra.Command{
		Use:   "dotbench [dimension]",
		Short: "dotbench times dense dot product kernels on random data.",
		Long: `dotbench generates a random vector and a random square matrix with entries in [-1, 1]
and times the dense kernels on them.

Typical usage:
    dotbench
        Time x . x and M . x on a 3000 dimensional problem.

    dotbench 500 --cases=xdotx,matvec,square,quadratic --backend=gonum --iterations=5
        Time every kernel five times on gonum's BLAS and print summary statistics.

    dotbench 3 --cases=square --trace
        Print every multiplied pair of the matrix square.
`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCmdFunc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindFlags(command.Flags(), &flags)
	command.AddCommand(makeSampleCommand())
	return command
}

func bindFlags(fs *pflag.FlagSet, flags *flagValues) {
	defaults := config.Default()
	flags.logLevel = defaults.LogLevel
	fs.StringVar(&flags.configPath, "config", "", "path of a JSON configuration file")
	fs.Uint64Var(&flags.seed, "seed", defaults.Seed, "random seed, 0 picks one")
	fs.IntVar(&flags.iterations, "iterations", defaults.Iterations, "number of times each case is timed")
	fs.StringVar(&flags.cases, "cases", joinCases(defaults.Cases), "comma separated cases to time ("+joinCases(config.Cases())+")")
	fs.StringVar(&flags.backend, "backend", defaults.Backend, "kernel backend, one of "+strings.Join(compute.Backends(), ","))
	fs.BoolVar(&flags.trace, "trace", defaults.Trace, "print every multiplied pair of the matrix square")
	fs.BoolVar(&flags.progress, "progress", defaults.Progress, "show a progress bar while generating the matrix")
	fs.Var(&flags.logLevel, "log-level", "log level (debug, info, warn, error, fatal)")
}

// loadConfig layers defaults, the config file, explicitly set flags and the dimension argument.
func loadConfig(fs *pflag.FlagSet, flags flagValues, args []string) (cfg config.Config, err error) {
	cfg = config.Default()
	if flags.configPath != "" {
		raw, err := os.ReadFile(flags.configPath)
		if err != nil {
			return cfg, errors.Wrap(err, "could not read config file")
		}
		cfg, err = config.ParseConfig(raw)
		if err != nil {
			return cfg, errors.Wrapf(err, "config file %s", flags.configPath)
		}
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if fs.Changed("iterations") {
		cfg.Iterations = flags.iterations
	}
	if fs.Changed("cases") {
		if cfg.Cases, err = config.ParseCases(flags.cases); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("backend") {
		cfg.Backend = flags.backend
	}
	if fs.Changed("trace") {
		cfg.Trace = flags.trace
	}
	if fs.Changed("progress") {
		cfg.Progress = flags.progress
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if len(args) > 0 {
		cfg.Dimension, err = strconv.Atoi(args[0])
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid dimension %q", args[0])
		}
	}
	return cfg, cfg.Validate()
}

func makeSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [path]",
		Short: "Write a sample configuration file",
		Long:  `Write a sample configuration file to path, ` + config.SAMPLE_PATH + ` by default.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.SAMPLE_PATH
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.CreateSample(path); err != nil {
				return err
			}
			cmd.Printf("sample configuration written to %s\n", path)
			return nil
		},
	}
}

func joinCases(cases []config.Case) string {
	names := make([]string, len(cases))
	for i, benchCase := range cases {
		names[i] = string(benchCase)
	}
	return strings.Join(names, ",")
}
