package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"go.uber.org/zap"
)

// Runner drives a WorldActor step by step: every step sends the panel's knobs and a
// Tick, then picks up the latest snapshot if one is ready.
type Runner struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	sim        *flock.Simulation

	// UI Controls
	Panel *KnobPanel

	logger *zap.Logger

	// Timing instrumentation
	lastStepDuration time.Duration
	stepAvg          float64 // Rolling average in ms
}

// NewRunner builds the flock described by cfg and spawns its world actor, named after
// the run id, in system. A zero seed in cfg is replaced by one taken from the clock.
func NewRunner(ctx context.Context, cfg *Config, system actor.ActorSystem, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	world, err := cfg.World()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sim, err := flock.New(world, params, cfg.Knobs(), cfg.NumBoids, seed, flock.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create flock: %w", err)
	}

	// Buffer to avoid blocking
	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	worldPID, err := system.Spawn(ctx, "world-"+sim.RunID(), NewWorldActor(sim, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	r := &Runner{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{RunId: sim.RunID()}, // Avoid nil pointer
		sim:        sim,
		logger:     logger.With(zap.String("run_id", sim.RunID())),
	}
	r.Panel = NewKnobPanel(cfg, func() {
		if err := actor.Tell(ctx, worldPID, &pb.Scramble{}); err != nil {
			r.logger.Warn("scramble not delivered", zap.Error(err))
		}
	})
	r.logger.Info("runner ready",
		zap.Int("boids", cfg.NumBoids),
		zap.Uint64("seed", seed),
		zap.Stringer("index", params.Index))
	return r, nil
}

// Step sends the current knobs and one Tick. It does not wait for the tick to finish.
func (r *Runner) Step() error {
	start := time.Now()
	defer func() {
		r.lastStepDuration = time.Since(start)
		// Rolling average (exponential moving average)
		r.stepAvg = r.stepAvg*0.95 + float64(r.lastStepDuration)/float64(time.Millisecond)*0.05
	}()

	// Retrieve latest state (non-blocking)
	select {
	case snap := <-r.snapshotCh:
		r.lastState = snap
	default:
	}

	if err := actor.Tell(r.ctx, r.worldPID, r.Panel.UpdateConfig()); err != nil {
		return fmt.Errorf("failed to send knobs: %w", err)
	}
	if err := actor.Tell(r.ctx, r.worldPID, &pb.Tick{Steps: 1}); err != nil {
		return fmt.Errorf("failed to send tick: %w", err)
	}
	return nil
}

// Snapshot asks the world for its current state. Messages sent earlier by this runner
// are processed first. ctx may differ from the runner's own context, so a final snapshot
// can still be taken after the run was interrupted.
func (r *Runner) Snapshot(ctx context.Context, timeout time.Duration) (*pb.WorldSnapshot, error) {
	resp, err := actor.Ask(ctx, r.worldPID, &pb.GetSnapshot{}, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snap, ok := resp.(*pb.WorldSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", resp)
	}
	r.lastState = snap
	return snap, nil
}

// Latest returns the most recent snapshot received, possibly a few ticks old.
func (r *Runner) Latest() *pb.WorldSnapshot { return r.lastState }

// RunID identifies the flock driven by this runner.
func (r *Runner) RunID() string { return r.sim.RunID() }

// StepAverage returns the rolling average time spent in Step.
func (r *Runner) StepAverage() time.Duration {
	return time.Duration(r.stepAvg * float64(time.Millisecond))
}

// Stop shuts the world actor down.
func (r *Runner) Stop() error {
	return r.worldPID.Shutdown(r.ctx)
}
