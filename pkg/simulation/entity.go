package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// VectorToProto converts a vector into its wire form.
func VectorToProto(v geometry.Vector3) *pb.Vector3 {
	return &pb.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// VectorFromProto converts back; a nil message is the zero vector.
func VectorFromProto(v *pb.Vector3) geometry.Vector3 {
	return geometry.Vector3{X: v.GetX(), Y: v.GetY(), Z: v.GetZ()}
}

// AgentToProto converts an agent into the state observers see, colored by its
// neighbor count.
func AgentToProto(a *flock.Agent, neighborCap int) *pb.AgentState {
	return &pb.AgentState{
		Index:     uint32(a.Index),
		Position:  VectorToProto(a.Position),
		Velocity:  VectorToProto(a.Velocity),
		Size:      a.Size,
		Neighbors: uint32(a.Neighbors),
		Color:     flock.NeighborColor(a.Neighbors, neighborCap),
	}
}

// AgentFromProto rebuilds an agent from its wire form. Per-tick diagnostics other than the
// neighbor count are not carried on the wire.
func AgentFromProto(p *pb.AgentState) flock.Agent {
	return flock.Agent{
		Index:     int(p.GetIndex()),
		Position:  VectorFromProto(p.GetPosition()),
		Velocity:  VectorFromProto(p.GetVelocity()),
		Size:      p.GetSize(),
		Neighbors: int(p.GetNeighbors()),
	}
}

// SnapshotOf captures the current state of sim.
func SnapshotOf(sim *flock.Simulation) *pb.WorldSnapshot {
	agents := sim.Agents()
	stats := sim.LastStats()
	neighborCap := sim.Params().NeighborCap

	snap := &pb.WorldSnapshot{
		Tick:         sim.Tick(),
		Agents:       make([]*pb.AgentState, len(agents)),
		BudgetBreaks: uint32(stats.BudgetBreaks),
		Collisions:   uint32(stats.Collisions),
		RunId:        sim.RunID(),
	}
	for i := range agents {
		snap.Agents[i] = AgentToProto(&agents[i], neighborCap)
	}
	return snap
}

// KnobsFromProto reads the knob values carried by an UpdateConfig message.
func KnobsFromProto(msg *pb.UpdateConfig) flock.Knobs {
	return flock.Knobs{
		ViewRadius:    msg.GetViewRadius(),
		PushScale:     msg.GetPushScale(),
		PullScale:     msg.GetPullScale(),
		CenterEnabled: msg.GetCenterEnabled(),
		AgentScale:    msg.GetAgentScale(),
	}
}

// KnobsToProto builds the UpdateConfig message for k.
func KnobsToProto(k flock.Knobs) *pb.UpdateConfig {
	return &pb.UpdateConfig{
		ViewRadius:    k.ViewRadius,
		PushScale:     k.PushScale,
		PullScale:     k.PullScale,
		CenterEnabled: k.CenterEnabled,
		AgentScale:    k.AgentScale,
	}
}
