package flock

import (
	"cmp"
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// minCellSize keeps the grid from degenerating into millions of tiny cells when the
// view radius is close to zero.
const minCellSize = 10.0

type gridKey struct {
	x, y, z int
}

// Grid is a spatial hash over the world box. Cells are at least as wide as the query
// radius, so every neighbor of an agent lies in the 3×3×3 block of cells around it.
// On Wrap axes the block wraps around the world.
//
// Grid gives exactly the same answers as FieldIndex; it only skips measuring pairs that
// cannot be in range.
type Grid struct {
	world  World
	agents []Agent
	counts [3]int
	widths [3]float64
	cells  map[gridKey][]int
	keys   []gridKey
}

// NewGrid returns an empty grid; Rebuild sizes it.
func NewGrid() *Grid {
	return &Grid{cells: make(map[gridKey][]int)}
}

// Rebuild re-buckets all agents. agents must not be modified until the next Rebuild.
func (g *Grid) Rebuild(agents []Agent, w World, radius float64) {
	g.world = w
	g.agents = agents

	base := math.Max(radius, minCellSize) * (1 + 1e-6)
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		e := w.Extents.Axis(axis)
		n := int(math.Floor(e / base))
		if n < 1 {
			n = 1
		}
		g.counts[axis] = n
		g.widths[axis] = e / float64(n)
	}

	// Reset slices to length 0 but keep their capacity, so steady-state ticks
	// do not allocate.
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	if cap(g.keys) < len(agents) {
		g.keys = make([]gridKey, len(agents))
	}
	g.keys = g.keys[:len(agents)]

	for i := range agents {
		key := g.cellOf(agents[i].Position)
		g.keys[i] = key
		g.cells[key] = append(g.cells[key], i)
	}
}

func (g *Grid) cellOf(p geometry.Vector3) gridKey {
	var idx [3]int
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		h := g.world.Half(axis)
		k := int(math.Floor((p.Axis(axis) + h) / g.widths[axis]))
		idx[axis] = min(max(k, 0), g.counts[axis]-1)
	}
	return gridKey{x: idx[0], y: idx[1], z: idx[2]}
}

// Neighbors scans the 3×3×3 block around agent i.
func (g *Grid) Neighbors(i int, radius float64, dst []Neighbor) []Neighbor {
	dst = dst[:0]
	if radius < 0 || i < 0 || i >= len(g.agents) {
		return dst
	}
	me := g.agents[i].Position

	var block [27]gridKey
	n := g.block(g.keys[i], &block)
	for _, key := range block[:n] {
		for _, j := range g.cells[key] {
			if j == i {
				continue
			}
			v := g.world.Offset(me, g.agents[j].Position)
			if inRange(v, radius) {
				dst = append(dst, Neighbor{Index: j, Offset: v})
			}
		}
	}
	slices.SortFunc(dst, func(a, b Neighbor) int { return cmp.Compare(a.Index, b.Index) })
	return dst
}

// block writes the distinct cells around center into out and returns how many there are.
// Axes with fewer than three cells would otherwise visit the same cell twice.
func (g *Grid) block(center gridKey, out *[27]gridKey) int {
	c := [3]int{center.x, center.y, center.z}
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				var k [3]int
				ok := true
				for axis, d := range [3]int{dx, dy, dz} {
					v, valid := g.step(axis, c[axis]+d)
					if !valid {
						ok = false
						break
					}
					k[axis] = v
				}
				if !ok {
					continue
				}
				key := gridKey{x: k[0], y: k[1], z: k[2]}
				if !slices.Contains(out[:n], key) {
					out[n] = key
					n++
				}
			}
		}
	}
	return n
}

func (g *Grid) step(axis, k int) (int, bool) {
	count := g.counts[axis]
	if k >= 0 && k < count {
		return k, true
	}
	if g.world.Policies[axis] != Wrap {
		return 0, false
	}
	return ((k % count) + count) % count, true
}
