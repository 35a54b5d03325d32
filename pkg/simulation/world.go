package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the flock. Every message is handled in turn, so knob updates and
// scrambles always land between two ticks, never during one.
type WorldActor struct {
	sim *flock.Simulation
	// Communication with observers
	snapshotCh chan<- *pb.WorldSnapshot

	// --- Benchmark Stats ---
	msgRecvCount  int
	tickCount     int
	tickTime      time.Duration
	budgetBreaks  int
	droppedFrames int
	lastLogTime   time.Time
}

// NewWorldActor wraps sim. Snapshots are pushed to snapshotCh after every Tick when the
// receiver is ready; snapshotCh may be nil.
func NewWorldActor(sim *flock.Simulation, snapshotCh chan<- *pb.WorldSnapshot) *WorldActor {
	return &WorldActor{
		sim:         sim,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s holds %d boids", w.sim.RunID(), len(w.sim.Agents()))
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("World started")

	case *pb.Tick:
		w.msgRecvCount++
		steps := max(msg.GetSteps(), 1)
		for range steps {
			stats := w.sim.Advance()
			w.tickCount++
			w.tickTime += stats.Duration
			w.budgetBreaks += stats.BudgetBreaks
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *pb.UpdateConfig:
		w.msgRecvCount++
		w.sim.SetKnobs(KnobsFromProto(msg))

	case *pb.Scramble:
		w.msgRecvCount++
		w.sim.Scramble()
		ctx.Logger().Debugf("World %s scrambled at tick %d", w.sim.RunID(), w.sim.Tick())

	case *pb.GetSnapshot:
		w.msgRecvCount++
		ctx.Response(SnapshotOf(w.sim))

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) < time.Second {
		return
	}
	var meanTick float64
	if w.tickCount > 0 {
		meanTick = float64(w.tickTime.Microseconds()) / 1000.0 / float64(w.tickCount)
	}
	ctx.Logger().Infof("📊 TICKS: %d/sec (%.2f ms avg) | MSGS: %d | budget breaks: %d | dropped frames: %d",
		w.tickCount, meanTick, w.msgRecvCount, w.budgetBreaks, w.droppedFrames)
	w.msgRecvCount = 0
	w.tickCount = 0
	w.tickTime = 0
	w.budgetBreaks = 0
	w.droppedFrames = 0
	w.lastLogTime = time.Now()
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- SnapshotOf(w.sim):
	default:
		// observer busy, skip frame
		w.droppedFrames++
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s stopped after %d ticks", w.sim.RunID(), w.sim.Tick())
	return nil
}
