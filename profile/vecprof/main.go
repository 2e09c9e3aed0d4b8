// Profiling:
// go build ./profile/vecprof
// ./vecprof insert --mode cpu --elements 5000
// go tool pprof -http=":8000" -nodefraction=0.001 ./vecprof cpu.pprof

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	verbose    bool
	flags      Config
	logger     *zap.Logger
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "vecprof",
		Short: "Profile vector workloads",
		Long: `vecprof drives a container workload and records a pprof profile.

Settings come from DefaultConfig, then an optional YAML file given with
--config, then any flag set explicitly on the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	defaults := DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML workload file")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&o.flags.Rounds, "rounds", defaults.Rounds, "fresh vectors per run")
	pf.IntVar(&o.flags.Iters, "iters", defaults.Iters, "fill/drain cycles per vector")
	pf.IntVar(&o.flags.Elements, "elements", defaults.Elements, "elements per cycle")
	pf.StringVar(&o.flags.Mode, "mode", defaults.Mode, "profile mode: cpu, mem, allocs or none")
	pf.StringVar(&o.flags.Path, "path", defaults.Path, "directory receiving the profile")

	root.AddCommand(
		newWorkloadCmd(o, "append", "Append elements and clear, reusing capacity"),
		newWorkloadCmd(o, "insert", "Insert in the middle and erase from the front"),
		newWorkloadCmd(o, "resize", "Resize, reserve and shrink"),
	)
	return root
}

func newWorkloadCmd(o *options, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			if _, err := Run(cfg, name, o.logger); err != nil {
				o.logger.Error("workload failed", zap.String("workload", name), zap.Error(err))
				return err
			}
			return nil
		},
	}
}

// resolve layers explicitly set flags over the config file, or over the
// defaults when no file is given.
func (o *options) resolve(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("rounds") {
		cfg.Rounds = o.flags.Rounds
	}
	if flags.Changed("iters") {
		cfg.Iters = o.flags.Iters
	}
	if flags.Changed("elements") {
		cfg.Elements = o.flags.Elements
	}
	if flags.Changed("mode") {
		cfg.Mode = o.flags.Mode
	}
	if flags.Changed("path") {
		cfg.Path = o.flags.Path
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
