package flock

import (
	"errors"
	"fmt"
	"math"
)

// Ranges of the live knobs.
const (
	MaxViewRadius = 500.0
	MinAgentScale = 0.1
	MaxAgentScale = 5.0
)

// ErrInvalidParams is wrapped by every validation error of Params and Knobs.
var ErrInvalidParams = errors.New("invalid flock parameters")

// Params are the settings fixed for the lifetime of a Simulation.
type Params struct {
	MatchScale     float64 // alignment weight, not user adjustable
	CenterScale    float64
	MinSpeed       float64
	MaxSpeed       float64
	MaxForceBudget float64
	Cohesion       CohesionRule
	Index          IndexKind
	Workers        int // <= 0 means one per CPU
	NeighborCap    int // neighbor count mapped to blue by NeighborColor
}

// DefaultParams returns the canonical settings.
func DefaultParams() Params {
	return Params{
		MatchScale:     0.1,
		CenterScale:    1.0,
		MinSpeed:       0.0,
		MaxSpeed:       3.0,
		MaxForceBudget: 1.0,
		Cohesion:       CohesionAverage,
		Index:          MatrixIndex,
		NeighborCap:    DefaultNeighborCap,
	}
}

// NominalSpeed is the cruising speed given to new and scrambled agents.
func (p Params) NominalSpeed() float64 {
	return (p.MinSpeed + p.MaxSpeed) / 2
}

// Validate checks p and returns an error wrapping ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case !within(p.MatchScale, 0, 1):
		return fmt.Errorf("%w: matchScale %v not in [0, 1]", ErrInvalidParams, p.MatchScale)
	case !within(p.CenterScale, 0, 1):
		return fmt.Errorf("%w: centerScale %v not in [0, 1]", ErrInvalidParams, p.CenterScale)
	case !(p.MinSpeed >= 0):
		return fmt.Errorf("%w: minSpeed %v is negative", ErrInvalidParams, p.MinSpeed)
	case !(p.MaxSpeed > 0 && p.MaxSpeed >= p.MinSpeed):
		return fmt.Errorf("%w: maxSpeed %v must be positive and >= minSpeed", ErrInvalidParams, p.MaxSpeed)
	case !(p.MaxForceBudget > 0):
		return fmt.Errorf("%w: maxForceBudget %v must be positive", ErrInvalidParams, p.MaxForceBudget)
	case p.NeighborCap < 0:
		return fmt.Errorf("%w: neighborCap %d is negative", ErrInvalidParams, p.NeighborCap)
	}
	return nil
}

// Knobs are the settings that may change between ticks. A Simulation reads them once at
// the start of every tick.
type Knobs struct {
	ViewRadius    float64
	PushScale     float64
	PullScale     float64
	CenterEnabled bool
	AgentScale    float64
}

// DefaultKnobs returns the initial knob positions.
func DefaultKnobs() Knobs {
	return Knobs{
		ViewRadius:    100,
		PushScale:     1.0,
		PullScale:     0.8,
		CenterEnabled: true,
		AgentScale:    1.2,
	}
}

// Validate checks every knob is inside its range. NaN is never in range.
func (k Knobs) Validate() error {
	switch {
	case !within(k.ViewRadius, 0, MaxViewRadius):
		return fmt.Errorf("%w: viewRadius %v not in [0, %v]", ErrInvalidParams, k.ViewRadius, MaxViewRadius)
	case !within(k.PushScale, 0, 1):
		return fmt.Errorf("%w: pushScale %v not in [0, 1]", ErrInvalidParams, k.PushScale)
	case !within(k.PullScale, 0, 1):
		return fmt.Errorf("%w: pullScale %v not in [0, 1]", ErrInvalidParams, k.PullScale)
	case !within(k.AgentScale, MinAgentScale, MaxAgentScale):
		return fmt.Errorf("%w: agentScale %v not in [%v, %v]", ErrInvalidParams, k.AgentScale, MinAgentScale, MaxAgentScale)
	}
	return nil
}

// Clamp forces every knob into its range. A NaN knob takes the value from fallback,
// which is expected to be valid already.
func (k Knobs) Clamp(fallback Knobs) Knobs {
	k.ViewRadius = clampOr(k.ViewRadius, 0, MaxViewRadius, fallback.ViewRadius)
	k.PushScale = clampOr(k.PushScale, 0, 1, fallback.PushScale)
	k.PullScale = clampOr(k.PullScale, 0, 1, fallback.PullScale)
	k.AgentScale = clampOr(k.AgentScale, MinAgentScale, MaxAgentScale, fallback.AgentScale)
	return k
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		v = fallback
	}
	return clamp(v, lo, hi)
}
