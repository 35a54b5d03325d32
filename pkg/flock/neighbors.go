package flock

import (
	"fmt"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// Neighbor is another agent seen from agent i.
// Offset is the relative vector V(i, Index), pointing from i to the neighbor.
type Neighbor struct {
	Index  int
	Offset geometry.Vector3
}

// NeighborIndex answers "who is within radius of agent i" for one tick.
//
// Rebuild runs in phase 1 and may write internal state. Neighbors runs in phase 2,
// concurrently for different i, and must only read. Results are in ascending Index order
// and never contain i itself.
type NeighborIndex interface {
	Rebuild(agents []Agent, w World, radius float64)
	Neighbors(i int, radius float64, dst []Neighbor) []Neighbor
}

// IndexKind selects a NeighborIndex implementation.
type IndexKind int

const (
	// MatrixIndex computes the full N×N pairwise field every tick.
	MatrixIndex IndexKind = iota
	// GridIndex buckets agents in a spatial hash and only measures nearby pairs.
	GridIndex
)

func (k IndexKind) String() string {
	switch k {
	case MatrixIndex:
		return "matrix"
	case GridIndex:
		return "grid"
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

// ParseIndexKind accepts "matrix" or "grid".
func ParseIndexKind(s string) (IndexKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matrix", "":
		return MatrixIndex, nil
	case "grid":
		return GridIndex, nil
	}
	return MatrixIndex, fmt.Errorf("unknown neighbor index %q", s)
}

func newIndex(kind IndexKind, n int) NeighborIndex {
	if kind == GridIndex {
		return NewGrid()
	}
	return &FieldIndex{Field: NewField(n)}
}

// FieldIndex answers neighbor queries from a full pairwise Field.
type FieldIndex struct {
	Field *Field
}

// Rebuild recomputes the field.
func (x *FieldIndex) Rebuild(agents []Agent, w World, _ float64) {
	x.Field.Compute(agents, w)
}

// Neighbors scans row i of the field.
func (x *FieldIndex) Neighbors(i int, radius float64, dst []Neighbor) []Neighbor {
	return NeighborsOf(x.Field, i, radius, dst)
}

// NeighborsOf returns every j != i with |V(i, j)| <= radius, in ascending j.
// The result is appended to dst[:0] so callers can recycle the slice.
func NeighborsOf(f *Field, i int, radius float64, dst []Neighbor) []Neighbor {
	dst = dst[:0]
	if radius < 0 {
		return dst
	}
	for j := 0; j < f.Size(); j++ {
		if j == i {
			continue
		}
		v := f.V(i, j)
		if inRange(v, radius) {
			dst = append(dst, Neighbor{Index: j, Offset: v})
		}
	}
	return dst
}

func inRange(v geometry.Vector3, radius float64) bool {
	return v.Len() <= radius
}
