package flock

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats describes one tick.
type Stats struct {
	Tick          uint64
	BudgetBreaks  int // agents whose steering hit the force budget
	Collisions    int // neighbor pairs closer than their mean size
	MeanNeighbors float64
	Duration      time.Duration
}

// stepper holds the per-tick buffers: the pre-tick snapshot, the neighbor index built from
// it and one neighbor scratch slice per worker.
type stepper struct {
	index      NeighborIndex
	snapshot   []Agent
	collisions []int
	scratch    [][]Neighbor
}

func newStepper(kind IndexKind, n int) *stepper {
	return &stepper{index: newIndex(kind, n)}
}

// advance runs one tick over agents in place.
//
// Phase 1 copies the agents and builds the neighbor index from the copy. Phase 2 updates
// every agent from that copy only, so the order in which agents are visited (and the number
// of workers visiting them) does not change the result.
func (st *stepper) advance(agents []Agent, w World, p Params, k Knobs) Stats {
	start := time.Now()
	n := len(agents)

	for i := range agents {
		agents[i].Size = k.AgentScale
	}
	if cap(st.snapshot) < n {
		st.snapshot = make([]Agent, n)
		st.collisions = make([]int, n)
	}
	st.snapshot = st.snapshot[:n]
	st.collisions = st.collisions[:n]
	copy(st.snapshot, agents)
	st.index.Rebuild(st.snapshot, w, k.ViewRadius)

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, n))
	for len(st.scratch) < workers {
		st.scratch = append(st.scratch, nil)
	}

	if workers == 1 {
		st.updateRange(agents, 0, n, w, p, k, &st.scratch[0])
	} else {
		var g errgroup.Group
		chunk := (n + workers - 1) / workers
		for wk := 0; wk < workers; wk++ {
			lo := wk * chunk
			hi := min(lo+chunk, n)
			if lo >= hi {
				break
			}
			buf := &st.scratch[wk]
			g.Go(func() error {
				st.updateRange(agents, lo, hi, w, p, k, buf)
				return nil
			})
		}
		_ = g.Wait()
	}

	stats := Stats{Duration: time.Since(start)}
	total := 0
	for i := range agents {
		total += agents[i].Neighbors
		stats.Collisions += st.collisions[i]
		if agents[i].BudgetExhausted {
			stats.BudgetBreaks++
		}
	}
	if n > 0 {
		stats.MeanNeighbors = float64(total) / float64(n)
	}
	return stats
}

func (st *stepper) updateRange(agents []Agent, lo, hi int, w World, p Params, k Knobs, buf *[]Neighbor) {
	for i := lo; i < hi; i++ {
		me := st.snapshot[i]
		nb := st.index.Neighbors(i, k.ViewRadius, *buf)
		*buf = nb

		delta, exhausted := Prioritize(p.MaxForceBudget,
			Separation(nb, k.PushScale),
			CenterPull(me.Position, k.CenterEnabled, p.CenterScale),
			Alignment(nb, st.snapshot, p.MatchScale),
			Cohesion(p.Cohesion, nb, k.PullScale),
		)

		collisions := 0
		for _, other := range nb {
			if other.Index > i && other.Offset.Len() < (me.Size+st.snapshot[other.Index].Size)/2 {
				collisions++
			}
		}
		st.collisions[i] = collisions

		a := &agents[i]
		Step(a, delta, w, p.MaxSpeed)
		a.Neighbors = len(nb)
		a.BudgetExhausted = exhausted
	}
}

// Advance runs a single tick over agents in place with throwaway buffers.
// Simulation.Advance should be preferred when ticking repeatedly.
func Advance(agents []Agent, w World, p Params, k Knobs) Stats {
	return newStepper(p.Index, len(agents)).advance(agents, w, p, k)
}

// Simulation owns a population and everything needed to advance it tick after tick.
// Advance and Scramble serialize with each other; SetKnobs may be called at any time
// and takes effect at the start of the next tick.
type Simulation struct {
	mu      sync.Mutex
	runID   string
	world   World
	params  Params
	knobs   atomic.Pointer[Knobs]
	agents  []Agent
	stepper *stepper
	rng     *rand.Rand
	tick    uint64
	last    Stats
	logger  *zap.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for per-tick diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAgents replaces the random initial population. Indices are renumbered to match
// the slice positions.
func WithAgents(agents []Agent) Option {
	return func(s *Simulation) {
		s.agents = make([]Agent, len(agents))
		copy(s.agents, agents)
		for i := range s.agents {
			s.agents[i].Index = i
		}
	}
}

// New creates a simulation of count agents, randomly placed from seed.
func New(w World, p Params, k Knobs, count int, seed uint64, opts ...Option) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	for axis := 0; axis < 3; axis++ {
		if w.Extents.Axis(axis) <= 0 {
			return nil, fmt.Errorf("%w: world extent on axis %d must be positive", ErrInvalidParams, axis)
		}
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative population %d", ErrInvalidParams, count)
	}

	s := &Simulation{
		runID:  uuid.NewString(),
		world:  w,
		params: p,
		rng:    NewRand(seed),
		logger: zap.NewNop(),
	}
	s.knobs.Store(&k)
	for _, opt := range opts {
		opt(s)
	}
	if s.agents == nil {
		s.agents = CreatePopulation(count, w, s.rng, p.NominalSpeed(), k.AgentScale)
	}
	s.stepper = newStepper(p.Index, len(s.agents))

	s.logger.Info("simulation created",
		zap.String("run_id", s.runID),
		zap.Int("agents", len(s.agents)),
		zap.Stringer("index", p.Index),
		zap.Stringer("cohesion", p.Cohesion),
		zap.Uint64("seed", seed))
	return s, nil
}

// Advance runs one tick and returns its stats.
func (s *Simulation) Advance() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := *s.knobs.Load()
	stats := s.stepper.advance(s.agents, s.world, s.params, k)
	s.tick++
	stats.Tick = s.tick
	s.last = stats

	s.logger.Debug("tick",
		zap.Uint64("tick", stats.Tick),
		zap.Int("budget_breaks", stats.BudgetBreaks),
		zap.Int("collisions", stats.Collisions),
		zap.Float64("mean_neighbors", stats.MeanNeighbors),
		zap.Duration("took", stats.Duration))
	return stats
}

// Scramble gives every agent a fresh random direction at nominal speed.
func (s *Simulation) Scramble() {
	s.mu.Lock()
	defer s.mu.Unlock()
	Scramble(s.agents, s.rng, s.params.NominalSpeed())
	s.logger.Debug("scrambled", zap.Uint64("tick", s.tick))
}

// SetKnobs clamps k into range and publishes it for the next tick. NaN values keep
// the current setting.
func (s *Simulation) SetKnobs(k Knobs) {
	k = k.Clamp(*s.knobs.Load())
	s.knobs.Store(&k)
}

// Knobs returns the knobs the next tick will use.
func (s *Simulation) Knobs() Knobs {
	return *s.knobs.Load()
}

// Agents returns a copy of the current population.
func (s *Simulation) Agents() []Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// LastStats returns the stats of the latest tick.
func (s *Simulation) LastStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Simulation) World() World   { return s.world }
func (s *Simulation) Params() Params { return s.params }
func (s *Simulation) RunID() string  { return s.runID }
