package main

import (
	"math"
	"time"

	"github.com/lao-tseu-is-alive/go-boids3d/internal/observability"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd(root *rootOptions) *cobra.Command {
	var ticks int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Advance the flock directly and report per-tick timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			world, _ := cfg.World()
			params, _ := cfg.Params()
			seed := cfg.Seed
			if seed == 0 {
				seed = 1
			}
			sim, err := flock.New(world, params, cfg.Knobs(), cfg.NumBoids, seed,
				flock.WithLogger(observability.GetLogger()))
			if err != nil {
				return err
			}

			var total time.Duration
			fastest := time.Duration(math.MaxInt64)
			slowest := time.Duration(0)
			neighbors := 0.0
			for range ticks {
				stats := sim.Advance()
				total += stats.Duration
				fastest = min(fastest, stats.Duration)
				slowest = max(slowest, stats.Duration)
				neighbors += stats.MeanNeighbors
			}
			if ticks == 0 {
				fastest = 0
			}
			mean := time.Duration(0)
			if ticks > 0 {
				mean = total / time.Duration(ticks)
				neighbors /= float64(ticks)
			}

			observability.GetLogger().Info("bench done",
				zap.String("run_id", sim.RunID()),
				zap.Stringer("index", params.Index),
				zap.Int("ticks", ticks),
				zap.Duration("mean", mean))
			printf(cmd, "%s index, %d boids, %d ticks: mean %v, min %v, max %v, %.1f neighbors per boid\n",
				params.Index, cfg.NumBoids, ticks, mean, fastest, slowest, neighbors)
			return nil
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 200, "number of ticks to time")
	return cmd
}
