package flock

import (
	"fmt"
	"math"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// BoundaryPolicy decides what happens when an agent crosses a face of the world box.
type BoundaryPolicy int

const (
	// Wrap teleports the coordinate to the opposite face (periodic axis).
	Wrap BoundaryPolicy = iota
	// Reflect mirrors the coordinate back inside and negates the velocity component.
	Reflect
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Reflect:
		return "reflect"
	}
	return fmt.Sprintf("BoundaryPolicy(%d)", int(p))
}

// ParseBoundaryPolicy accepts "wrap" or "reflect" (case-insensitive).
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "reflect":
		return Reflect, nil
	}
	return Wrap, fmt.Errorf("unknown boundary policy %q", s)
}

// World is the box centered at the origin in which agents live.
// Extents are full widths: a coordinate on axis a is valid in [-Extents[a]/2, +Extents[a]/2].
type World struct {
	Extents  geometry.Vector3
	Policies [3]BoundaryPolicy
}

// NewWorld builds a world with the same policy on every axis.
func NewWorld(sizeX, sizeY, sizeZ float64, policy BoundaryPolicy) World {
	return World{
		Extents:  geometry.Vector3{X: sizeX, Y: sizeY, Z: sizeZ},
		Policies: [3]BoundaryPolicy{policy, policy, policy},
	}
}

// Half returns the half-width of the given axis.
func (w World) Half(axis int) float64 {
	return w.Extents.Axis(axis) / 2
}

// Contains reports whether every coordinate of p lies inside the box (faces included).
func (w World) Contains(p geometry.Vector3) bool {
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		h := w.Half(axis)
		c := p.Axis(axis)
		if c < -h || c > h {
			return false
		}
	}
	return true
}

// Offset returns the shortest vector going from `from` to `to`.
// On Wrap axes the minimal-image convention applies: when the naive difference exceeds
// half the extent, the full extent is subtracted in the direction of the difference.
func (w World) Offset(from, to geometry.Vector3) geometry.Vector3 {
	d := to.Sub(from)
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		if w.Policies[axis] != Wrap {
			continue
		}
		e := w.Extents.Axis(axis)
		c := d.Axis(axis)
		if math.Abs(c) > e/2 {
			d = d.WithAxis(axis, c-math.Copysign(e, c))
		}
	}
	return d
}

// Resolve brings a prospective position back inside the box, axis by axis.
// A coordinate sitting exactly on a face is left alone. The returned velocity has the
// components of reflected axes negated when the number of folds is odd.
func (w World) Resolve(pos, vel geometry.Vector3) (geometry.Vector3, geometry.Vector3) {
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		e := w.Extents.Axis(axis)
		h := e / 2
		c := pos.Axis(axis)
		if c >= -h && c <= h {
			continue
		}
		switch w.Policies[axis] {
		case Wrap:
			pos = pos.WithAxis(axis, wrapCoord(c, e))
		case Reflect:
			folded, flip := reflectCoord(c, e)
			pos = pos.WithAxis(axis, folded)
			if flip {
				vel = vel.WithAxis(axis, -vel.Axis(axis))
			}
		}
	}
	return pos, vel
}

// wrapCoord maps c into [-e/2, e/2] periodically.
func wrapCoord(c, e float64) float64 {
	h := e / 2
	r := math.Mod(c+h, e)
	if r < 0 {
		r += e
	}
	return clamp(r-h, -h, h)
}

// reflectCoord folds c back into [-e/2, e/2] as if it bounced between the two faces,
// reporting whether the total number of bounces is odd.
func reflectCoord(c, e float64) (float64, bool) {
	h := e / 2
	u := c + h
	m := math.Floor(u / e)
	r := clamp(u-m*e, 0, e)
	odd := math.Mod(math.Abs(m), 2) == 1
	if odd {
		r = e - r
	}
	return clamp(r-h, -h, h), odd
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
