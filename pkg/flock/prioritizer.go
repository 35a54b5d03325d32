package flock

import "github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"

// Prioritize folds steering deltas into one, spending at most budget of total magnitude.
//
// Deltas are taken in order. While the running magnitude plus the next delta stays strictly
// below budget, the delta is added whole. The first delta that would reach or exceed it is
// scaled down to the remaining budget and nothing after it counts. The order of deltas is
// therefore their priority.
//
// exhausted reports whether the budget was reached this way.
func Prioritize(budget float64, deltas ...geometry.Vector3) (vec geometry.Vector3, exhausted bool) {
	if budget <= 0 {
		return geometry.Zero, len(deltas) > 0
	}
	total := 0.0
	for _, delta := range deltas {
		mag := delta.Len()
		if total+mag < budget {
			vec = vec.Add(delta)
			total += mag
			continue
		}
		if mag > 0 {
			vec = vec.Add(delta.Mul((budget - total) / mag))
		}
		return vec, true
	}
	return vec, false
}
