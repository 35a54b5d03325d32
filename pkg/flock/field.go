package flock

import "github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"

// Field holds the relative vector from every agent to every other agent for one tick.
// V(i, j) is the shortest vector from agent i to agent j; the matrix is antisymmetric and its
// diagonal is zero. The backing buffer is reused from tick to tick.
type Field struct {
	n    int
	vecs []geometry.Vector3
}

// NewField allocates a field for n agents.
func NewField(n int) *Field {
	return &Field{n: n, vecs: make([]geometry.Vector3, n*n)}
}

// Size returns the number of agents the field was computed for.
func (f *Field) Size() int { return f.n }

// V returns the relative vector from agent i to agent j.
func (f *Field) V(i, j int) geometry.Vector3 {
	return f.vecs[i*f.n+j]
}

// Compute overwrites the field from the agents' current positions.
// Each unordered pair is computed once and mirrored, so V(j, i) == -V(i, j) exactly.
func (f *Field) Compute(agents []Agent, w World) {
	n := len(agents)
	if n != f.n {
		f.n = n
		if cap(f.vecs) < n*n {
			f.vecs = make([]geometry.Vector3, n*n)
		}
		f.vecs = f.vecs[:n*n]
	}
	for i := 0; i < n; i++ {
		f.vecs[i*n+i] = geometry.Zero
		for j := i + 1; j < n; j++ {
			d := w.Offset(agents[i].Position, agents[j].Position)
			f.vecs[i*n+j] = d
			f.vecs[j*n+i] = d.Neg()
		}
	}
}
