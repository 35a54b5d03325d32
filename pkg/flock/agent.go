package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// Agent is a single boid.
// Index addresses the agent's row and column in the pairwise field and never changes.
type Agent struct {
	Index    int
	Position geometry.Vector3
	Velocity geometry.Vector3
	// Size is a radius used only by the collision diagnostic.
	Size float64

	// Written by the last tick, informational only.
	Neighbors       int
	BudgetExhausted bool
}

// Speed returns the magnitude of the agent's velocity.
func (a *Agent) Speed() float64 {
	return a.Velocity.Len()
}

// CreatePopulation places count agents uniformly at random inside the world and gives each
// of them a random direction at nominalSpeed.
func CreatePopulation(count int, w World, rng *rand.Rand, nominalSpeed, size float64) []Agent {
	agents := make([]Agent, count)
	for i := range agents {
		agents[i] = Agent{
			Index:    i,
			Position: randomPoint(w, rng),
			Velocity: randomDirection(rng).Mul(nominalSpeed),
			Size:     size,
		}
	}
	return agents
}

// Scramble reassigns every agent a fresh random direction at nominalSpeed.
// Positions are left untouched.
func Scramble(agents []Agent, rng *rand.Rand, nominalSpeed float64) {
	for i := range agents {
		agents[i].Velocity = randomDirection(rng).Mul(nominalSpeed)
	}
}

func randomPoint(w World, rng *rand.Rand) geometry.Vector3 {
	return geometry.Vector3{
		X: (rng.Float64() - 0.5) * w.Extents.X,
		Y: (rng.Float64() - 0.5) * w.Extents.Y,
		Z: (rng.Float64() - 0.5) * w.Extents.Z,
	}
}

// randomDirection returns a unit vector. Samples too close to the origin are drawn again
// so the normalization never degenerates.
func randomDirection(rng *rand.Rand) geometry.Vector3 {
	for {
		v := geometry.Vector3{
			X: rng.Float64() - 0.5,
			Y: rng.Float64() - 0.5,
			Z: rng.Float64() - 0.5,
		}
		if v.LenSqr() > 1e-12 {
			return v.Normalize()
		}
	}
}

// NewRand returns the deterministic generator used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
