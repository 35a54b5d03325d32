package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-boids3d/internal/observability"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
)

const finalSnapshotTimeout = 30 * time.Second

type runOptions struct {
	ticks         int
	rate          float64
	knobs         []string
	scrambleEvery int
	showPanel     bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the flock inside the actor system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runFlock(ctx, cmd, root, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.ticks, "ticks", "n", 600, "number of ticks to run (0 runs until interrupted)")
	flags.Float64Var(&opts.rate, "rate", 60, "ticks per second (0 runs as fast as possible)")
	flags.StringArrayVarP(&opts.knobs, "knob", "k", nil, "set a live knob, e.g. --knob viewRadius=150 (repeatable)")
	flags.IntVar(&opts.scrambleEvery, "scramble-every", 0, "press scramble every N ticks (0 never)")
	flags.BoolVar(&opts.showPanel, "show-panel", false, "print the knob panel before starting")
	return cmd
}

func runFlock(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	logger := observability.GetLogger()
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(golog.New(actorLogLevel(root.logLevel), os.Stderr)),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(context.WithoutCancel(ctx)) }()

	runner, err := simulation.NewRunner(ctx, cfg, system, logger)
	if err != nil {
		return err
	}
	for _, k := range opts.knobs {
		if err := runner.Panel.Apply(k); err != nil {
			return fmt.Errorf("bad --knob: %w", err)
		}
	}
	if opts.showPanel {
		printf(cmd, "%s", runner.Panel)
	}

	var ticker <-chan time.Time
	if period := time.Duration(float64(time.Second) / opts.rate); opts.rate > 0 && period > 0 {
		t := time.NewTicker(period)
		defer t.Stop()
		ticker = t.C
	}

	lastReport := time.Now()
	step := 0
	for opts.ticks == 0 || step < opts.ticks {
		if ticker != nil {
			select {
			case <-ctx.Done():
			case <-ticker:
			}
		}
		if ctx.Err() != nil {
			logger.Info("interrupted", zap.Int("ticks_sent", step))
			break
		}
		if err := runner.Step(); err != nil {
			return err
		}
		step++
		if opts.scrambleEvery > 0 && step%opts.scrambleEvery == 0 {
			runner.Panel.Scramble()
		}
		if time.Since(lastReport) >= time.Second {
			latest := runner.Latest()
			logger.Info("progress",
				zap.Uint64("tick", latest.GetTick()),
				zap.Uint32("budget_breaks", latest.GetBudgetBreaks()),
				zap.Uint32("collisions", latest.GetCollisions()),
				zap.Duration("step_avg", runner.StepAverage()))
			lastReport = time.Now()
		}
	}

	snap, err := runner.Snapshot(context.WithoutCancel(ctx), finalSnapshotTimeout)
	if err != nil {
		return err
	}
	printf(cmd, "run %s: %d ticks, %d boids, %d budget breaks and %d collisions on the last tick\n",
		snap.GetRunId(), snap.GetTick(), len(snap.GetAgents()), snap.GetBudgetBreaks(), snap.GetCollisions())
	return nil
}

// actorLogLevel maps --log-level onto the actor system's logger, which carries the
// world's once-per-second tick report.
func actorLogLevel(level string) golog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return golog.DebugLevel
	case "warn", "warning":
		return golog.WarningLevel
	case "error":
		return golog.ErrorLevel
	}
	return golog.InfoLevel
}
