package main

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids3d/internal/observability"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
	logFile    string
	boids      int
	seed       uint64
	index      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "boids3d",
		Short:         "3D flocking simulation",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := observability.DefaultLoggerConfig()
			cfg.Level = opts.logLevel
			cfg.Format = opts.logFormat
			cfg.LogFile = opts.logFile
			observability.InitializeLogger(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "JSON or TOML config file (default: built-in defaults)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "console", "console or json")
	flags.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotating file")
	flags.IntVar(&opts.boids, "boids", -1, "override numBoids from the config")
	flags.Uint64Var(&opts.seed, "seed", 0, "override the seed from the config (0 keeps it)")
	flags.StringVar(&opts.index, "index", "", "override neighborIndex from the config (matrix or grid)")

	cmd.AddCommand(newRunCmd(opts), newBenchCmd(opts))
	return cmd
}

// loadConfig returns the config named by --config, or the defaults, with the
// command-line overrides applied.
func (o *rootOptions) loadConfig() (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if o.configFile != "" {
		loaded, err := simulation.LoadConfig(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.boids >= 0 {
		cfg.NumBoids = o.boids
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.index != "" {
		cfg.NeighborIndex = o.index
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	observability.GetLogger().Debug("config loaded",
		zap.String("file", o.configFile),
		zap.Int("boids", cfg.NumBoids),
		zap.String("index", cfg.NeighborIndex))
	return cfg, nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
