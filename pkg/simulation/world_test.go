package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap/zaptest"
)

const askTimeout = 5 * time.Second

func newTestSystem(t *testing.T) (context.Context, actor.ActorSystem) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("BoidsTest",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return ctx, system
}

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.WorldSizeX, cfg.WorldSizeY, cfg.WorldSizeZ = 400, 300, 400
	cfg.NumBoids = 60
	cfg.Seed = 99
	cfg.Workers = 2
	return cfg
}

func TestWorldActor_TickAndSnapshot(t *testing.T) {
	ctx, system := newTestSystem(t)

	cfg := smallConfig()
	world, _ := cfg.World()
	params, _ := cfg.Params()
	sim, err := flock.New(world, params, cfg.Knobs(), cfg.NumBoids, cfg.Seed)
	require.NoError(t, err)

	snapshots := make(chan *pb.WorldSnapshot, 1)
	pid, err := system.Spawn(ctx, "world", NewWorldActor(sim, snapshots))
	require.NoError(t, err)

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Steps: 3}))
	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{}))

	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, askTimeout)
	require.NoError(t, err)
	snap, ok := resp.(*pb.WorldSnapshot)
	require.True(t, ok, "unexpected reply %T", resp)

	assert.Equal(t, uint64(4), snap.GetTick(), "a zero step count still advances once")
	assert.Equal(t, sim.RunID(), snap.GetRunId())
	require.Len(t, snap.GetAgents(), cfg.NumBoids)
	for _, a := range snap.GetAgents() {
		assert.True(t, world.Contains(VectorFromProto(a.GetPosition())))
		assert.LessOrEqual(t, VectorFromProto(a.GetVelocity()).Len(), cfg.MaxSpeed)
		assert.NotEmpty(t, a.GetColor())
	}

	// the first tick filled the channel, later ones were dropped
	select {
	case pushed := <-snapshots:
		assert.Equal(t, uint64(3), pushed.GetTick())
	case <-time.After(askTimeout):
		t.Fatal("no snapshot pushed")
	}
}

func TestWorldActor_UpdateConfigAndScramble(t *testing.T) {
	ctx, system := newTestSystem(t)

	cfg := smallConfig()
	world, _ := cfg.World()
	params, _ := cfg.Params()
	sim, err := flock.New(world, params, cfg.Knobs(), cfg.NumBoids, cfg.Seed)
	require.NoError(t, err)
	pid, err := system.Spawn(ctx, "world", NewWorldActor(sim, nil))
	require.NoError(t, err)

	before := sim.Agents()
	require.NoError(t, actor.Tell(ctx, pid, &pb.UpdateConfig{ViewRadius: 9999, PushScale: 0.5, AgentScale: 2}))
	require.NoError(t, actor.Tell(ctx, pid, &pb.Scramble{}))
	_, err = actor.Ask(ctx, pid, &pb.GetSnapshot{}, askTimeout)
	require.NoError(t, err)

	k := sim.Knobs()
	assert.Equal(t, flock.MaxViewRadius, k.ViewRadius, "knobs are clamped")
	assert.Equal(t, 0.5, k.PushScale)
	assert.False(t, k.CenterEnabled)
	assert.Equal(t, 2.0, k.AgentScale)

	after := sim.Agents()
	for i := range before {
		assert.Equal(t, before[i].Position, after[i].Position)
		assert.InDelta(t, params.NominalSpeed(), after[i].Speed(), 1e-9)
	}
}

func TestRunner(t *testing.T) {
	ctx, system := newTestSystem(t)

	cfg := smallConfig()
	r, err := NewRunner(ctx, cfg, system, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, r.RunID(), r.Latest().GetRunId())

	require.NoError(t, r.Panel.Set(KnobViewRadius, "150"))
	for range 5 {
		require.NoError(t, r.Step())
	}
	r.Panel.Scramble()

	snap, err := r.Snapshot(ctx, askTimeout)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), snap.GetTick())
	assert.Len(t, snap.GetAgents(), cfg.NumBoids)
	assert.Same(t, snap, r.Latest())
	assert.Equal(t, 150.0, r.sim.Knobs().ViewRadius)
	assert.Positive(t, r.StepAverage())

	require.NoError(t, r.Stop())
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	ctx, system := newTestSystem(t)

	cfg := smallConfig()
	cfg.MaxForceBudget = 0
	_, err := NewRunner(ctx, cfg, system, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = smallConfig()
	cfg.BoundaryX = "bounce"
	_, err = NewRunner(ctx, cfg, system, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = smallConfig()
	cfg.NeighborIndex = "octree"
	_, err = NewRunner(ctx, cfg, system, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunner_SnapshotAfterCancel(t *testing.T) {
	_, system := newTestSystem(t)

	ctx, cancel := context.WithCancel(context.Background())
	r, err := NewRunner(ctx, smallConfig(), system, nil)
	require.NoError(t, err)
	require.NoError(t, r.Step())
	cancel()

	snap, err := r.Snapshot(context.WithoutCancel(ctx), askTimeout)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.GetTick())
	assert.Equal(t, r.RunID(), snap.GetRunId())
}
