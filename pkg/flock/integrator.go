package flock

import "github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"

// Step applies one steering delta to a: the velocity is nudged and capped at maxSpeed, the
// position advances by the new velocity and the world's boundary policy brings it back inside.
func Step(a *Agent, delta geometry.Vector3, w World, maxSpeed float64) {
	vel := clampSpeed(a.Velocity.Add(delta), maxSpeed)
	pos, vel := w.Resolve(a.Position.Add(vel), vel)
	a.Position = pos
	a.Velocity = vel
}

func clampSpeed(vel geometry.Vector3, maxSpeed float64) geometry.Vector3 {
	s := vel.Len()
	if s <= maxSpeed {
		return vel
	}
	vel = vel.Mul(maxSpeed / s)
	// rounding may leave the rescaled length a few ulps above the limit
	for vel.Len() > maxSpeed {
		vel = vel.Mul(1 - 1e-12)
	}
	return vel
}
