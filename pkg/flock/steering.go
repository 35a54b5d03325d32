package flock

import (
	"fmt"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// Truncate caps v to unit length: a longer vector becomes the unit vector in its direction.
func Truncate(v geometry.Vector3) geometry.Vector3 {
	if v.Len() > 1.0 {
		return v.Normalize()
	}
	return v
}

// Adjust applies inverse-square falloff, v * |v|^-2, so near things weigh more than far ones.
// The zero vector has no direction and maps to zero.
func Adjust(v geometry.Vector3) geometry.Vector3 {
	l2 := v.LenSqr()
	if l2 == 0 {
		return geometry.Zero
	}
	out := v.Mul(1 / l2)
	if !out.IsFinite() {
		// subnormal lengths overflow 1/l2
		return geometry.Zero
	}
	return out
}

// Separation pushes away from every neighbor, closer ones harder.
// It sums the adjusted vectors V(j, i) = -V(i, j).
func Separation(neighbors []Neighbor, pushScale float64) geometry.Vector3 {
	var sum geometry.Vector3
	for _, n := range neighbors {
		sum = sum.Add(Adjust(n.Offset.Neg()))
	}
	return Truncate(sum).Mul(pushScale)
}

// CohesionRule picks how the pull toward neighbors is computed.
type CohesionRule int

const (
	// CohesionAverage adjusts the average offset once: an adjusted average.
	CohesionAverage CohesionRule = iota
	// CohesionSum sums individually adjusted offsets: a sum of adjusted terms.
	CohesionSum
	// CohesionCentroid steers toward the neighbors' centroid without falloff,
	// so the pull grows with distance.
	CohesionCentroid
)

func (r CohesionRule) String() string {
	switch r {
	case CohesionAverage:
		return "average"
	case CohesionSum:
		return "sum"
	case CohesionCentroid:
		return "centroid"
	}
	return fmt.Sprintf("CohesionRule(%d)", int(r))
}

// ParseCohesionRule accepts "average", "sum" or "centroid".
func ParseCohesionRule(s string) (CohesionRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "":
		return CohesionAverage, nil
	case "sum":
		return CohesionSum, nil
	case "centroid":
		return CohesionCentroid, nil
	}
	return CohesionAverage, fmt.Errorf("unknown cohesion rule %q", s)
}

// Cohesion pulls toward the neighbors according to rule.
func Cohesion(rule CohesionRule, neighbors []Neighbor, pullScale float64) geometry.Vector3 {
	if len(neighbors) == 0 {
		return geometry.Zero
	}
	var vec geometry.Vector3
	switch rule {
	case CohesionSum:
		for _, n := range neighbors {
			vec = vec.Add(Adjust(n.Offset))
		}
	case CohesionCentroid:
		vec = averageOffset(neighbors)
	default:
		vec = Adjust(averageOffset(neighbors))
	}
	return Truncate(vec).Mul(pullScale)
}

func averageOffset(neighbors []Neighbor) geometry.Vector3 {
	var sum geometry.Vector3
	for _, n := range neighbors {
		sum = sum.Add(n.Offset)
	}
	return sum.Mul(1 / float64(len(neighbors)))
}

// Alignment matches the neighbors' average velocity. Velocities are read from snapshot,
// the pre-tick state indexed by agent index.
func Alignment(neighbors []Neighbor, snapshot []Agent, matchScale float64) geometry.Vector3 {
	if len(neighbors) == 0 {
		return geometry.Zero
	}
	var sum geometry.Vector3
	for _, n := range neighbors {
		sum = sum.Add(snapshot[n.Index].Velocity)
	}
	return Truncate(sum.Mul(1 / float64(len(neighbors)))).Mul(matchScale)
}

// CenterPull steers toward the world origin. Disabled, it is always zero.
func CenterPull(position geometry.Vector3, enabled bool, centerScale float64) geometry.Vector3 {
	if !enabled {
		return geometry.Zero
	}
	return Truncate(Adjust(position.Neg())).Mul(centerScale)
}
